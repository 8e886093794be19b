package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/keycalc/internal/adapters/driven/config/file"
	"github.com/custodia-labs/keycalc/internal/core/domain"
)

func TestResolveConfigDir(t *testing.T) {
	t.Run("flag wins", func(t *testing.T) {
		t.Setenv(configDirEnv, "/from/env")

		dir, err := resolveConfigDir("/from/flag")

		require.NoError(t, err)
		assert.Equal(t, "/from/flag", dir)
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv(configDirEnv, "/from/env")

		dir, err := resolveConfigDir("")

		require.NoError(t, err)
		assert.Equal(t, "/from/env", dir)
	})

	t.Run("default", func(t *testing.T) {
		t.Setenv(configDirEnv, "")

		dir, err := resolveConfigDir("")
		require.NoError(t, err)

		want, err := file.DefaultConfigDir()
		require.NoError(t, err)
		assert.Equal(t, want, dir)
	})
}

func TestBootstrap(t *testing.T) {
	dir := t.TempDir()

	svc, err := bootstrap(dir)

	require.NoError(t, err)
	require.NotNil(t, svc)
	assert.Equal(t, filepath.Join(dir, file.ConfigFileName), svc.Settings.Path())

	calc, err := svc.NewCalculator()
	require.NoError(t, err)
	calc.InputDigit("4")
	assert.Equal(t, "4", calc.Display())

	id := svc.Sessions.Create()
	assert.Equal(t, 1, svc.Sessions.Count())
	require.NoError(t, svc.Sessions.Close(id))
}

func TestBootstrap_AppliesMaxInputLength(t *testing.T) {
	dir := t.TempDir()
	svc, err := bootstrap(dir)
	require.NoError(t, err)
	require.NoError(t, svc.Settings.Set("engine.max_input_length", "2"))

	svc, err = bootstrap(dir)
	require.NoError(t, err)
	calc, err := svc.NewCalculator()
	require.NoError(t, err)

	for _, d := range []string{"1", "2", "3"} {
		calc.InputDigit(d)
	}
	assert.Equal(t, "12", calc.Display())
}

func TestBootstrap_InvalidStoredSettingsFallBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	store, err := file.NewConfigStore(nil, dir)
	require.NoError(t, err)
	require.NoError(t, store.Set("engine.max_input_length", 0))

	var buf bytes.Buffer
	stderr = &buf
	t.Cleanup(func() { stderr = os.Stderr })

	svc, err := bootstrap(dir)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "engine.max_input_length")

	calc, err := svc.NewCalculator()
	require.NoError(t, err)
	for i := 0; i < domain.DefaultMaxInputLength+3; i++ {
		calc.InputDigit("1")
	}
	assert.Len(t, calc.Display(), domain.DefaultMaxInputLength)

	defaults := svc.Settings.GetDefaults()
	require.NoError(t, svc.Settings.Save(&defaults))
	settings, err := svc.Settings.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultMaxInputLength, settings.Engine.MaxInputLength)
}
