// Package timezone keeps the application clock in one configured location.
//
// Call Init once at startup with the loaded configuration; until then every helper
// works in UTC. Timestamps written into the data files go through Stamp so they all
// share the same ISO-8601 layout.
package timezone
