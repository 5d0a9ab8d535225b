package systems

import (
	"encoding/json"
	"sync"
	"time"

	cfg "github.com/automoto/coffeeon/config"
	"github.com/quasilyte/gdata"
	"github.com/rs/zerolog/log"
)

// ItemStore is the key/value surface of gdata.Manager
type ItemStore interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// IntroFlag records whether the loading intro already played this session
type IntroFlag interface {
	Shown() bool
	MarkShown()
}

// SavedPreferences represents the preferences stored on disk
type SavedPreferences struct {
	Lang string `json:"lang"`
}

type savedIntro struct {
	ShownAt time.Time `json:"shownAt"`
}

const (
	introItem = "intro"
	prefsItem = "preferences"
)

var (
	storeMu sync.RWMutex
	store   ItemStore = NewMemoryStore()
)

// InitPersistence opens the gdata store. On failure the in-memory store
// stays in place so the intro flag still works for this process.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "coffeeon",
	})
	if err != nil {
		log.Warn().Err(err).Str("component", "persistence").Msg("could not initialize persistence")
		return err
	}
	SetStore(m)
	return nil
}

// SetStore replaces the process-wide store
func SetStore(s ItemStore) {
	storeMu.Lock()
	store = s
	storeMu.Unlock()
}

// Store returns the process-wide store
func Store() ItemStore {
	storeMu.RLock()
	defer storeMu.RUnlock()
	return store
}

// SessionFlag is an IntroFlag that expires ttl after it was set
type SessionFlag struct {
	store ItemStore
	ttl   time.Duration
	now   func() time.Time
}

// NewSessionFlag creates a flag stored in s
func NewSessionFlag(s ItemStore, ttl time.Duration) *SessionFlag {
	return &SessionFlag{store: s, ttl: ttl, now: time.Now}
}

// DefaultIntroFlag uses the process-wide store and the configured TTL
func DefaultIntroFlag() *SessionFlag {
	return NewSessionFlag(Store(), cfg.Loading.SessionTTL)
}

// Shown implements IntroFlag
func (f *SessionFlag) Shown() bool {
	data, err := f.store.LoadItem(introItem)
	if err != nil {
		log.Warn().Err(err).Str("component", "persistence").Msg("could not load intro flag")
		return false
	}
	if len(data) == 0 {
		return false
	}
	var saved savedIntro
	if err := json.Unmarshal(data, &saved); err != nil {
		log.Warn().Err(err).Str("component", "persistence").Msg("could not parse intro flag")
		return false
	}
	if f.ttl <= 0 {
		return true
	}
	return f.now().Sub(saved.ShownAt) < f.ttl
}

// MarkShown implements IntroFlag
func (f *SessionFlag) MarkShown() {
	data, err := json.Marshal(savedIntro{ShownAt: f.now()})
	if err != nil {
		log.Warn().Err(err).Str("component", "persistence").Msg("could not serialize intro flag")
		return
	}
	if err := f.store.SaveItem(introItem, data); err != nil {
		log.Warn().Err(err).Str("component", "persistence").Msg("could not save intro flag")
	}
}

// LoadPreferences loads preferences from the store; nil means none saved
func LoadPreferences() *SavedPreferences {
	data, err := Store().LoadItem(prefsItem)
	if err != nil {
		log.Warn().Err(err).Str("component", "persistence").Msg("could not load preferences")
		return nil
	}
	if len(data) == 0 {
		return nil
	}
	var p SavedPreferences
	if err := json.Unmarshal(data, &p); err != nil {
		log.Warn().Err(err).Str("component", "persistence").Msg("could not parse preferences")
		return nil
	}
	return &p
}

// SavePreferences saves preferences to the store
func SavePreferences(p SavedPreferences) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	if err := Store().SaveItem(prefsItem, data); err != nil {
		log.Warn().Err(err).Str("component", "persistence").Msg("could not save preferences")
		return err
	}
	return nil
}

// ApplySavedPreferences restores the language choice
func ApplySavedPreferences(p *SavedPreferences) {
	if p == nil {
		return
	}
	if p.Lang == cfg.LangAR.String() {
		cfg.CurrentLang = cfg.LangAR
	} else {
		cfg.CurrentLang = cfg.LangENG
	}
}

// MemoryStore is an ItemStore that lives for the process
type MemoryStore struct {
	mu    sync.Mutex
	items map[string][]byte
}

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string][]byte)}
}

// LoadItem implements ItemStore; a missing key yields nil data
func (m *MemoryStore) LoadItem(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]byte(nil), m.items[key]...), nil
}

// SaveItem implements ItemStore
func (m *MemoryStore) SaveItem(key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = append([]byte(nil), data...)
	return nil
}
