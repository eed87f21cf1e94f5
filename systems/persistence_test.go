package systems

import (
	"errors"
	"testing"

	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	items   map[string][]byte
	saveErr error
}

func newMemStore() *memStore {
	return &memStore{items: make(map[string][]byte)}
}

func (m *memStore) LoadItem(key string) ([]byte, error) {
	return m.items[key], nil
}

func (m *memStore) SaveItem(key string, data []byte) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.items[key] = data
	return nil
}

func withStore(t *testing.T, s ItemStore) {
	t.Helper()
	prev := store
	SetStore(s)
	t.Cleanup(func() { SetStore(prev) })
}

func TestSettingsRoundTrip(t *testing.T) {
	withStore(t, newMemStore())

	loaded, err := LoadSettings()
	require.NoError(t, err)
	assert.Nil(t, loaded, "nothing saved yet")

	s := DefaultSettings()
	s.InputMode = cfg.InputModeTouch
	s.Controller.AttackMode = cfg.AttackFixed
	s.Controller.ResumeLast = true
	s.Controller.MirrorLeft = false
	s.Fullscreen = true
	require.NoError(t, SaveSettings(ToSaved(&s)))

	loaded, err = LoadSettings()
	require.NoError(t, err)
	require.NotNil(t, loaded)

	restored := DefaultSettings()
	ApplySaved(&restored, loaded)
	assert.Equal(t, cfg.InputModeTouch, restored.InputMode)
	assert.Equal(t, cfg.AttackFixed, restored.Controller.AttackMode)
	assert.True(t, restored.Controller.ResumeLast)
	assert.False(t, restored.Controller.MirrorLeft)
	assert.True(t, restored.Fullscreen)
	assert.Equal(t, cfg.Controller.AttackSet, restored.Controller.AttackSet, "attack set is not persisted")
}

func TestApplySavedKeepsValidValues(t *testing.T) {
	s := DefaultSettings()
	ApplySaved(&s, &SavedSettings{InputMode: 42, AttackMode: -1, MirrorLeft: true})
	assert.Equal(t, cfg.InputModeAuto, s.InputMode)
	assert.Equal(t, cfg.AttackRandom, s.Controller.AttackMode)

	before := s
	ApplySaved(&s, nil)
	assert.Equal(t, before, s)
}

func TestLoadSettingsCorrupt(t *testing.T) {
	m := newMemStore()
	m.items[settingsItem] = []byte("{not json")
	withStore(t, m)

	_, err := LoadSettings()
	assert.Error(t, err)
}

func TestPersistenceDisabled(t *testing.T) {
	withStore(t, nil)
	loaded, err := LoadSettings()
	assert.NoError(t, err)
	assert.Nil(t, loaded)
	assert.NoError(t, SaveSettings(&SavedSettings{}))
}

func TestUpdatePersistenceSavesWhenDirty(t *testing.T) {
	m := newMemStore()
	withStore(t, m)
	w := newTestWorld(t, testStage(), 1280, 720)

	UpdatePersistence(w.ecs)
	assert.Empty(t, m.items, "clean settings are not written")

	s := GetOrCreateSettings(w.ecs)
	ToggleResumeLast(s)
	s.Dirty = true
	UpdatePersistence(w.ecs)
	assert.False(t, s.Dirty)

	loaded, err := LoadSettings()
	require.NoError(t, err)
	assert.True(t, loaded.ResumeLast)
}

func TestUpdatePersistenceSaveError(t *testing.T) {
	m := newMemStore()
	m.saveErr = errors.New("disk full")
	withStore(t, m)
	w := newTestWorld(t, testStage(), 1280, 720)

	s := GetOrCreateSettings(w.ecs)
	s.Dirty = true
	assert.NotPanics(t, func() { UpdatePersistence(w.ecs) })
	assert.False(t, s.Dirty)
}

func TestToSaved(t *testing.T) {
	s := &components.SettingsData{
		InputMode:  cfg.InputModeKeyboard,
		Controller: cfg.ControllerSettings{AttackMode: cfg.AttackFixed, MirrorLeft: true},
		Debug:      true,
	}
	assert.Equal(t, &SavedSettings{
		InputMode:  int(cfg.InputModeKeyboard),
		AttackMode: int(cfg.AttackFixed),
		MirrorLeft: true,
		Debug:      true,
	}, ToSaved(s))
}
