package i18n

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/dmitrijs2005/securedocs/internal/common"
)

// PreferenceStore is the durable storage for user preferences.
type PreferenceStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Localizer holds the active locale. SetActiveLocale is the only code path
// that writes the persisted locale preference.
type Localizer struct {
	mu          sync.RWMutex
	active      Locale
	store       PreferenceStore
	subscribers map[int]func(Locale)
	nextID      int

	getenv func(string) string
}

func NewLocalizer(store PreferenceStore) *Localizer {
	return &Localizer{
		active:      DefaultLocale,
		store:       store,
		subscribers: make(map[int]func(Locale)),
		getenv:      os.Getenv,
	}
}

// Load picks the start-up locale without persisting it. Precedence:
// override (e.g. a command-line flag), stored preference, LC_ALL / LANG,
// DefaultLocale. An unusable stored value is ignored.
func (l *Localizer) Load(ctx context.Context, override string) error {
	loc := DefaultLocale

	switch {
	case override != "":
		parsed, err := ParseLocale(override)
		if err != nil {
			return err
		}
		loc = parsed
	default:
		if stored, ok := l.stored(ctx); ok {
			loc = stored
		} else if env, ok := l.fromEnv(); ok {
			loc = env
		}
	}

	l.mu.Lock()
	l.active = loc
	l.mu.Unlock()
	l.notify(loc)
	return nil
}

func (l *Localizer) stored(ctx context.Context) (Locale, bool) {
	if l.store == nil {
		return "", false
	}
	b, err := l.store.Get(ctx, common.LocalePreferenceKey)
	if err != nil || len(b) == 0 {
		return "", false
	}
	loc := Locale(b)
	if !IsSupported(loc) {
		return "", false
	}
	return loc, true
}

func (l *Localizer) fromEnv() (Locale, bool) {
	for _, name := range []string{"LC_ALL", "LANG"} {
		if v := l.getenv(name); v != "" {
			if loc, err := ParseLocale(v); err == nil {
				return loc, true
			}
		}
	}
	return "", false
}

// Active returns the current locale.
func (l *Localizer) Active() Locale {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.active
}

// T resolves key against the active locale.
func (l *Localizer) T(key string) string {
	return Resolve(l.Active(), key)
}

// SetActiveLocale persists loc, makes it active and re-renders every
// subscriber. The active locale is left unchanged when persisting fails.
func (l *Localizer) SetActiveLocale(ctx context.Context, loc Locale) error {
	if !IsSupported(loc) {
		return fmt.Errorf("%w: %q", ErrUnsupportedLocale, loc)
	}

	if l.store != nil {
		if err := l.store.Set(ctx, common.LocalePreferenceKey, []byte(loc)); err != nil {
			return fmt.Errorf("saving locale preference: %w", err)
		}
	}

	l.mu.Lock()
	l.active = loc
	l.mu.Unlock()

	l.notify(loc)
	return nil
}

// Subscribe registers fn to run after every locale change. The returned
// function removes the subscription.
func (l *Localizer) Subscribe(fn func(Locale)) func() {
	l.mu.Lock()
	id := l.nextID
	l.nextID++
	l.subscribers[id] = fn
	l.mu.Unlock()

	return func() {
		l.mu.Lock()
		delete(l.subscribers, id)
		l.mu.Unlock()
	}
}

func (l *Localizer) notify(loc Locale) {
	l.mu.RLock()
	fns := make([]func(Locale), 0, len(l.subscribers))
	for _, fn := range l.subscribers {
		fns = append(fns, fn)
	}
	l.mu.RUnlock()

	for _, fn := range fns {
		fn(loc)
	}
}
