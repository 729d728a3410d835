package i18n

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/securedocs/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	data   map[string][]byte
	setErr error
	sets   int
}

func newMemStore() *memStore { return &memStore{data: map[string][]byte{}} }

func (m *memStore) Get(_ context.Context, key string) ([]byte, error) {
	return m.data[key], nil
}

func (m *memStore) Set(_ context.Context, key string, value []byte) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.sets++
	m.data[key] = value
	return nil
}

func newTestLocalizer(store PreferenceStore, env map[string]string) *Localizer {
	l := NewLocalizer(store)
	l.getenv = func(k string) string { return env[k] }
	return l
}

func TestLocalizer_SetActiveLocale_PersistsAndNotifies(t *testing.T) {
	store := newMemStore()
	l := newTestLocalizer(store, nil)

	var seen []Locale
	l.Subscribe(func(loc Locale) { seen = append(seen, loc) })

	require.NoError(t, l.SetActiveLocale(context.Background(), English))

	assert.Equal(t, English, l.Active())
	assert.Equal(t, []byte("en"), store.data[common.LocalePreferenceKey])
	assert.Equal(t, []Locale{English}, seen)
	assert.Equal(t, "Encrypt", l.T("tab_encrypt"))
}

func TestLocalizer_SetActiveLocale_Unsupported(t *testing.T) {
	store := newMemStore()
	l := newTestLocalizer(store, nil)

	err := l.SetActiveLocale(context.Background(), Locale("fr"))
	require.ErrorIs(t, err, ErrUnsupportedLocale)
	assert.Equal(t, DefaultLocale, l.Active())
	assert.Zero(t, store.sets)
}

func TestLocalizer_SetActiveLocale_StoreFailureKeepsLocale(t *testing.T) {
	store := newMemStore()
	store.setErr = errors.New("disk full")
	l := newTestLocalizer(store, nil)

	err := l.SetActiveLocale(context.Background(), English)
	require.Error(t, err)
	assert.Equal(t, Russian, l.Active())
}

func TestLocalizer_Unsubscribe(t *testing.T) {
	l := newTestLocalizer(newMemStore(), nil)
	calls := 0
	unsubscribe := l.Subscribe(func(Locale) { calls++ })
	unsubscribe()

	require.NoError(t, l.SetActiveLocale(context.Background(), English))
	assert.Zero(t, calls)
}

func TestLocalizer_Load_Precedence(t *testing.T) {
	ctx := context.Background()

	t.Run("override wins and is not persisted", func(t *testing.T) {
		store := newMemStore()
		store.data[common.LocalePreferenceKey] = []byte("ru")
		l := newTestLocalizer(store, map[string]string{"LANG": "ru_RU.UTF-8"})

		require.NoError(t, l.Load(ctx, "en"))
		assert.Equal(t, English, l.Active())
		assert.Equal(t, []byte("ru"), store.data[common.LocalePreferenceKey])
	})

	t.Run("stored preference before environment", func(t *testing.T) {
		store := newMemStore()
		store.data[common.LocalePreferenceKey] = []byte("en")
		l := newTestLocalizer(store, map[string]string{"LANG": "ru_RU.UTF-8"})

		require.NoError(t, l.Load(ctx, ""))
		assert.Equal(t, English, l.Active())
	})

	t.Run("environment when nothing stored", func(t *testing.T) {
		l := newTestLocalizer(newMemStore(), map[string]string{"LANG": "en_US.UTF-8"})

		require.NoError(t, l.Load(ctx, ""))
		assert.Equal(t, English, l.Active())
	})

	t.Run("garbage stored value falls through to default", func(t *testing.T) {
		store := newMemStore()
		store.data[common.LocalePreferenceKey] = []byte("klingon")
		l := newTestLocalizer(store, map[string]string{"LANG": "C"})

		require.NoError(t, l.Load(ctx, ""))
		assert.Equal(t, DefaultLocale, l.Active())
	})

	t.Run("bad override is an error", func(t *testing.T) {
		l := newTestLocalizer(newMemStore(), nil)
		require.ErrorIs(t, l.Load(ctx, "xx"), ErrUnsupportedLocale)
	})
}
