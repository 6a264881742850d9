package middleware

import (
	"crypto/subtle"
	"net/http"

	"halachi/config"
	"halachi/shared/constant"
	"halachi/transport/http/response"

	"github.com/rs/zerolog/log"
)

// Authorizer decides whether a presented admin secret grants access.
type Authorizer interface {
	Check(secret string) bool
}

type staticAuthorizer struct {
	secrets [][]byte
}

// NewStaticAuthorizer accepts any of the configured shared secrets.
func NewStaticAuthorizer(cfg *config.Config) Authorizer {
	secrets := make([][]byte, 0, len(cfg.App.Admin.Secrets))

	for _, secret := range cfg.App.Admin.Secrets {
		if secret != constant.Empty {
			secrets = append(secrets, []byte(secret))
		}
	}

	return &staticAuthorizer{secrets: secrets}
}

func (s *staticAuthorizer) Check(secret string) bool {
	if secret == constant.Empty {
		return false
	}

	presented := []byte(secret)
	granted := 0

	for _, candidate := range s.secrets {
		granted |= subtle.ConstantTimeCompare(presented, candidate)
	}

	return granted == 1
}

// Admin guards the admin routes with the shared secret.
type Admin interface {
	AdminGate(next http.Handler) http.Handler
}

type adminImpl struct {
	authorizer Authorizer
	header     string
	queryParam string
}

func NewAdminMiddleware(authorizer Authorizer, cfg *config.Config) Admin {
	return &adminImpl{
		authorizer: authorizer,
		header:     cfg.App.Admin.Header,
		queryParam: cfg.App.Admin.QueryParam,
	}
}

// AdminGate reads the secret from the header first, then from the query string.
func (a *adminImpl) AdminGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		secret := r.Header.Get(a.header)
		if secret == constant.Empty {
			secret = r.URL.Query().Get(a.queryParam)
		}

		if !a.authorizer.Check(secret) {
			log.Warn().Str("method", r.Method).Str("path", r.URL.Path).Msg("rejected admin request")

			response.WithUnauthorized(w)

			return
		}

		next.ServeHTTP(w, r)
	})
}
