// Package i18n resolves UI text for the supported locales and owns the
// active-locale preference.
package i18n

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Locale is a supported UI language tag.
type Locale string

const (
	Russian Locale = "ru"
	English Locale = "en"
)

// DefaultLocale is used when neither a preference nor the environment
// names a supported language.
const DefaultLocale = Russian

var ErrUnsupportedLocale = errors.New("unsupported locale")

var supported = []Locale{Russian, English}

var matcher = language.NewMatcher([]language.Tag{
	language.Russian,
	language.English,
})

// Supported lists the available locales in display order.
func Supported() []Locale {
	out := make([]Locale, len(supported))
	copy(out, supported)
	return out
}

// IsSupported reports whether loc has a catalog.
func IsSupported(loc Locale) bool {
	_, ok := catalog[loc]
	return ok
}

// ParseLocale maps a language tag such as "en", "en-GB" or the POSIX form
// "ru_RU.UTF-8" onto a supported Locale.
func ParseLocale(s string) (Locale, error) {
	raw := s
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	s = strings.ReplaceAll(strings.TrimSpace(s), "_", "-")
	if s == "" {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLocale, raw)
	}

	tag, err := language.Parse(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLocale, raw)
	}

	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLocale, raw)
	}
	return supported[idx], nil
}

// Resolve returns the text for key in loc, or key itself when the catalog
// has no entry. It never fails.
func Resolve(loc Locale, key string) string {
	if text, ok := catalog[loc][key]; ok && text != "" {
		return text
	}
	return key
}
