package logging

import (
	"log/slog"
	"strings"
)

// Redacted replaces the value of any key that can carry a secret.
const Redacted = "[REDACTED]"

var secretKeys = map[string]struct{}{
	"password":           {},
	"password_generated": {},
	"secret_key":         {},
	"access_key":         {},
}

// redact returns args with the values of secret keys masked. args is
// left untouched; a copy is made only when something is masked. An
// slog.Attr occupies one position, as in slog.
func redact(args []any) []any {
	var out []any
	mask := func(i int, v any) {
		if out == nil {
			out = append([]any(nil), args...)
		}
		out[i] = v
	}

	for i := 0; i < len(args); {
		switch a := args[i].(type) {
		case slog.Attr:
			if isSecret(a.Key) {
				mask(i, slog.String(a.Key, Redacted))
			}
			i++
		case string:
			if i+1 < len(args) && isSecret(a) {
				mask(i+1, Redacted)
			}
			i += 2
		default:
			i++
		}
	}

	if out == nil {
		return args
	}
	return out
}

func isSecret(key string) bool {
	_, ok := secretKeys[strings.ToLower(key)]
	return ok
}
