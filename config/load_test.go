package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/error-wtf/segmented-calculation-suite/domain/core"
)

func TestNewRun_Defaults(t *testing.T) {
	run := NewRun()
	assert.False(t, core.ID(run.ID).IsEmpty())
	assert.Equal(t, Version, run.Version)
	assert.Equal(t, XiModeAuto, run.XiMode)
	assert.Equal(t, RedshiftStandard, run.RedshiftMode)
	assert.Equal(t, DefaultConstants(), run.Constants)
	assert.Equal(t, DefaultParams(), run.Params)
	assert.Greater(t, run.WorkerLimit(), 0)
}

func TestLoadRun_MissingFileKeepsDefaults(t *testing.T) {
	run, err := LoadRun(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultParams(), run.Params)
}

func TestLoadRun_OverlayAppliesPartially(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.toml")
	overlay := `
xi_mode = "strong"
redshift_mode = "geom_hint"
workers = 3

[params]
blend_lo = 1.7
`
	require.NoError(t, os.WriteFile(path, []byte(overlay), 0o644))

	run, err := LoadRun(path)
	require.NoError(t, err)
	assert.Equal(t, XiModeStrong, run.XiMode)
	assert.Equal(t, RedshiftGeomHint, run.RedshiftMode)
	assert.Equal(t, 3, run.Workers)
	assert.Equal(t, 1.7, run.Params.BlendLo)
	// Untouched keys keep their defaults.
	assert.Equal(t, DefaultParams().BlendHi, run.Params.BlendHi)
	assert.Equal(t, DefaultParams().DeltaAlpha, run.Params.DeltaAlpha)
}

func TestLoadRun_UnknownModeFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.toml")
	require.NoError(t, os.WriteFile(path, []byte(`xi_mode = "ultra"`), 0o644))

	_, err := LoadRun(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrUnknownXiMode)
}

func TestParseModes(t *testing.T) {
	for s, want := range map[string]XiMode{"": XiModeAuto, "auto": XiModeAuto, "weak": XiModeWeak, "strong": XiModeStrong} {
		got, err := ParseXiMode(s)
		require.NoError(t, err, s)
		assert.Equal(t, want, got, s)
	}
	_, err := ParseXiMode("blend")
	assert.ErrorIs(t, err, core.ErrUnknownXiMode)

	for s, want := range map[string]RedshiftMode{"": RedshiftStandard, "standard": RedshiftStandard, "geom_hint": RedshiftGeomHint} {
		got, err := ParseRedshiftMode(s)
		require.NoError(t, err, s)
		assert.Equal(t, want, got, s)
	}
	_, err = ParseRedshiftMode("hybrid")
	assert.ErrorIs(t, err, core.ErrUnknownRedshiftMode)
}

func TestFromEnv_UsesOverlayPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.toml")
	require.NoError(t, os.WriteFile(path, []byte(`workers = 7`), 0o644))
	t.Setenv(EnvConfigPath, path)

	run, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, 7, run.Workers)
}
