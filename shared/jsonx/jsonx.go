// Package jsonx keeps keys a struct does not model when a document is rewritten.
//
// The data file is edited by hand as well as through the API, so a member may carry a
// type the struct does not expect ("price": "" instead of a number). Unmarshal decodes
// such objects field by field instead of rejecting the whole object.
package jsonx

import (
	"bytes"
	"encoding/json"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// Extra holds raw members of a JSON object that no struct field took.
type Extra map[string]json.RawMessage

var null = []byte("null")

// MarshalWithExtra marshals v and adds the extra members that v leaves unset or empty.
func MarshalWithExtra(v any, extra Extra) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil || len(extra) == 0 {
		return data, err
	}

	members := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &members); err != nil {
		return nil, err
	}

	for key, raw := range extra {
		if current, ok := members[key]; !ok || isEmpty(current) {
			members[key] = raw
		}
	}

	return json.Marshal(members)
}

// Unmarshal decodes the JSON object in data into the struct v points to.
//
// Members the struct does not declare are returned in extra. A declared member whose
// value does not fit its field is converted when it is a quoted number or boolean.
// Otherwise the field keeps its zero value, the key is reported in mismatched and the
// raw value goes into extra, so MarshalWithExtra writes it back as long as the field
// stays empty.
func Unmarshal(data []byte, v any) (extra Extra, mismatched []string, err error) {
	if bytes.Equal(bytes.TrimSpace(data), null) {
		return nil, nil, nil
	}

	members := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &members); err != nil {
		return nil, nil, err
	}

	target := reflect.ValueOf(v).Elem()
	fields := fieldIndex(target.Type())

	for key, raw := range members {
		idx, ok := fields[key]
		if ok && decodeField(target.Field(idx), raw) {
			continue
		}

		if ok {
			mismatched = append(mismatched, key)
		}

		if extra == nil {
			extra = Extra{}
		}

		extra[key] = raw
	}

	sort.Strings(mismatched)

	return extra, mismatched, nil
}

func decodeField(field reflect.Value, raw json.RawMessage) bool {
	ptr := reflect.New(field.Type())
	if err := json.Unmarshal(raw, ptr.Interface()); err == nil {
		field.Set(ptr.Elem())

		return true
	}

	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		return false
	}

	return setText(field, strings.TrimSpace(text))
}

func setText(field reflect.Value, text string) bool {
	switch field.Kind() {
	case reflect.Pointer:
		elem := reflect.New(field.Type().Elem())
		if !setText(elem.Elem(), text) {
			return false
		}

		field.Set(elem)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil || field.OverflowInt(n) {
			return false
		}

		field.SetInt(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return false
		}

		field.SetFloat(f)
	case reflect.Bool:
		switch text {
		case "true":
			field.SetBool(true)
		case "false":
			field.SetBool(false)
		default:
			return false
		}
	default:
		return false
	}

	return true
}

func isEmpty(raw json.RawMessage) bool {
	switch string(bytes.TrimSpace(raw)) {
	case "null", `""`, "0", "false", "[]", "{}":
		return true
	default:
		return false
	}
}

func fieldIndex(t reflect.Type) map[string]int {
	names := map[string]int{}

	for i := range t.NumField() {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		tag := field.Tag.Get("json")
		if tag == "-" {
			continue
		}

		name, _, _ := strings.Cut(tag, ",")
		if name == "" {
			name = field.Name
		}

		names[name] = i
	}

	return names
}
