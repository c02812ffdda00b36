package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/timetable-go/pkg/timetable"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "timetable.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	opts := cfg.Options(nil)
	assert.Equal(t, timetable.DefaultOptions(), opts)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
default_start_time: "10:00"
default_hours: 6
log_level: debug
pretty: true
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "10:00", cfg.DefaultStartTime)
	assert.Equal(t, 6, cfg.DefaultHours)
	assert.True(t, cfg.Pretty)
	assert.False(t, cfg.AllowEmpty)
	assert.Equal(t, logrus.DebugLevel, cfg.Logger().GetLevel())
}

func TestLoadInvalid(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "default_hours: [1"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "default_hours: 20"))
	assert.ErrorIs(t, err, timetable.ErrInvalidOptions)

	_, err = Load(writeConfig(t, "log_level: loud"))
	assert.Error(t, err)
}
