package systems

import (
	"errors"
	"testing"
	"time"

	cfg "github.com/automoto/coffeeon/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type brokenStore struct{}

func (brokenStore) LoadItem(string) ([]byte, error) { return nil, errors.New("disk gone") }
func (brokenStore) SaveItem(string, []byte) error   { return errors.New("disk gone") }

func TestSessionFlagLifecycle(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	f := NewSessionFlag(NewMemoryStore(), 30*time.Minute)
	f.now = func() time.Time { return now }

	assert.False(t, f.Shown())
	f.MarkShown()
	assert.True(t, f.Shown())

	now = now.Add(29 * time.Minute)
	assert.True(t, f.Shown(), "still the same session")

	now = now.Add(2 * time.Minute)
	assert.False(t, f.Shown(), "session expired")
}

func TestSessionFlagWithoutTTLNeverExpires(t *testing.T) {
	f := NewSessionFlag(NewMemoryStore(), 0)
	f.MarkShown()
	f.now = func() time.Time { return time.Now().Add(1000 * time.Hour) }
	assert.True(t, f.Shown())
}

func TestSessionFlagToleratesBrokenStore(t *testing.T) {
	f := NewSessionFlag(brokenStore{}, time.Minute)
	f.MarkShown()
	assert.False(t, f.Shown())

	s := NewMemoryStore()
	require.NoError(t, s.SaveItem(introItem, []byte("{not json")))
	assert.False(t, NewSessionFlag(s, time.Minute).Shown())
}

func TestPreferencesRoundTrip(t *testing.T) {
	prev := Store()
	defer SetStore(prev)
	defer func() { cfg.CurrentLang = cfg.LangENG }()

	SetStore(NewMemoryStore())
	assert.Nil(t, LoadPreferences())

	require.NoError(t, SavePreferences(SavedPreferences{Lang: "AR"}))
	p := LoadPreferences()
	require.NotNil(t, p)
	ApplySavedPreferences(p)
	assert.Equal(t, cfg.LangAR, cfg.CurrentLang)
}

func TestIntroFlagIsMockable(t *testing.T) {
	var flag IntroFlag = DefaultIntroFlag()
	assert.NotNil(t, flag)
}
