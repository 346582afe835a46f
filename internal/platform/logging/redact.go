package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

var (
	jwtPattern       = regexp.MustCompile(`^eyJ[A-Za-z0-9_-]*\.eyJ[A-Za-z0-9_-]*\.[A-Za-z0-9_-]*$`)
	bearerPattern    = regexp.MustCompile(`(?i)^bearer\s+.+$`)
	basicAuthPattern = regexp.MustCompile(`(?i)^basic\s+.+$`)
)

// sensitiveFields are attribute keys whose values never reach a log sink.
var sensitiveFields = []string{
	"password",
	"secret",
	"token",
	"apiKey",
	"apikey",
	"api_key",
	"accessToken",
	"access_token",
	"refreshToken",
	"refresh_token",
	"credential",
	"credentials",
	"authorization",
	"auth",
	"bearer",
	"cookie",
	"set-cookie",
	"session",
	"privateKey",
	"private_key",
}

// DefaultRedactOptions returns the masq options applied to every handler.
//
// Extend them with project-specific rules:
//
//	opts := append(logging.DefaultRedactOptions(), masq.WithFieldName("pin"))
func DefaultRedactOptions() []masq.Option {
	opts := make([]masq.Option, 0, len(sensitiveFields)+5)
	for _, name := range sensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}

	return append(opts,
		masq.WithFieldPrefix("secret"),
		masq.WithFieldPrefix("private"),
		masq.WithRegex(jwtPattern),
		masq.WithRegex(bearerPattern),
		masq.WithRegex(basicAuthPattern),
	)
}

// NewReplaceAttr builds a slog ReplaceAttr func that redacts secrets using
// DefaultRedactOptions plus any extra options.
func NewReplaceAttr(opts ...masq.Option) func(groups []string, a slog.Attr) slog.Attr {
	return masq.New(append(DefaultRedactOptions(), opts...)...)
}
