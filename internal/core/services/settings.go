package services

import (
	"fmt"
	"strconv"

	"github.com/custodia-labs/keycalc/internal/core/domain"
	"github.com/custodia-labs/keycalc/internal/core/ports/driven"
	"github.com/custodia-labs/keycalc/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyMaxInputLength = "engine.max_input_length"
	keyShowKeypad     = "tui.show_keypad"
	keyShowState      = "tui.show_state"
	keyLogVerbose     = "log.verbose"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings, filling defaults for unset keys.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	settings := s.load()
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	return settings, nil
}

// load reads stored settings without validating them, so Set can
// overwrite a bad stored value.
func (s *SettingsService) load() *domain.AppSettings {
	defaults := domain.DefaultAppSettings()

	return &domain.AppSettings{
		Engine: domain.EngineSettings{
			MaxInputLength: s.getInt(keyMaxInputLength, defaults.Engine.MaxInputLength),
		},
		TUI: domain.TUISettings{
			ShowKeypad: s.getBool(keyShowKeypad, defaults.TUI.ShowKeypad),
			ShowState:  s.getBool(keyShowState, defaults.TUI.ShowState),
		},
		Log: domain.LogSettings{
			Verbose: s.getBool(keyLogVerbose, defaults.Log.Verbose),
		},
	}
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	if err := s.configStore.Set(keyMaxInputLength, settings.Engine.MaxInputLength); err != nil {
		return fmt.Errorf("save %s: %w", keyMaxInputLength, err)
	}
	if err := s.configStore.Set(keyShowKeypad, settings.TUI.ShowKeypad); err != nil {
		return fmt.Errorf("save %s: %w", keyShowKeypad, err)
	}
	if err := s.configStore.Set(keyShowState, settings.TUI.ShowState); err != nil {
		return fmt.Errorf("save %s: %w", keyShowState, err)
	}
	if err := s.configStore.Set(keyLogVerbose, settings.Log.Verbose); err != nil {
		return fmt.Errorf("save %s: %w", keyLogVerbose, err)
	}
	return nil
}

// Set parses value for key and persists the result.
func (s *SettingsService) Set(key, value string) error {
	settings := s.load()

	switch key {
	case keyMaxInputLength:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be an integer", domain.ErrInvalidSetting, key)
		}
		settings.Engine.MaxInputLength = n
	case keyShowKeypad, keyShowState, keyLogVerbose:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be true or false", domain.ErrInvalidSetting, key)
		}
		switch key {
		case keyShowKeypad:
			settings.TUI.ShowKeypad = b
		case keyShowState:
			settings.TUI.ShowState = b
		default:
			settings.Log.Verbose = b
		}
	default:
		return fmt.Errorf("%w: unknown key %q", domain.ErrInvalidSetting, key)
	}

	return s.Save(settings)
}

// Keys returns the supported config keys.
func (s *SettingsService) Keys() []string {
	return []string{keyMaxInputLength, keyShowKeypad, keyShowState, keyLogVerbose}
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Path returns the config file path.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

// NewEngine builds an engine configured from settings.
func (s *SettingsService) NewEngine() (*Engine, error) {
	settings, err := s.Get()
	if err != nil {
		return nil, err
	}
	return NewEngine(WithMaxInputLength(settings.Engine.MaxInputLength)), nil
}

func (s *SettingsService) getInt(key string, def int) int {
	if _, ok := s.configStore.Get(key); !ok {
		return def
	}
	return s.configStore.GetInt(key)
}

func (s *SettingsService) getBool(key string, def bool) bool {
	if _, ok := s.configStore.Get(key); !ok {
		return def
	}
	return s.configStore.GetBool(key)
}
