package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tomatokenizer-web/LOGOSproject-sub002/internal/ability"
)

func TestDefault_IsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestParse_EmptyObjectKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`{}`))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestParse_Overrides(t *testing.T) {
	cfg, err := Parse([]byte(`{
		"ability": {"quad_points": 61, "quad_spread": 3.0},
		"scheduler": {"target_retention": 0.85},
		"selection_strategy": "kl",
		"session_size": 12,
		"new_item_ratio": 0.5
	}`))
	require.NoError(t, err)

	require.Equal(t, 61, cfg.Ability.QuadPoints)
	require.Equal(t, 3.0, cfg.Ability.QuadSpread)
	require.Equal(t, 0.85, cfg.Scheduler.TargetRetention)
	require.Equal(t, ability.KLDivergence, cfg.Strategy)
	require.Equal(t, 12, cfg.SessionSize)
	require.Equal(t, 0.5, cfg.NewItemRatio)

	// Untouched sections keep defaults.
	require.Equal(t, Default().Calibration, cfg.Calibration)
}

func TestParse_SchemaRejections(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"unknown top-level key", `{"sesion_size": 10}`},
		{"wrong type", `{"session_size": "ten"}`},
		{"ratio above one", `{"new_item_ratio": 1.5}`},
		{"unknown strategy", `{"selection_strategy": "oracle"}`},
		{"retention at one", `{"scheduler": {"target_retention": 1.0}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.raw))
			require.ErrorIs(t, err, ErrSchemaViolation)
		})
	}
}

func TestParse_InvalidJSON(t *testing.T) {
	_, err := Parse([]byte(`{`))
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrSchemaViolation)
}

func TestParse_BadBandWeights(t *testing.T) {
	// Structurally valid but not normalized: caught by semantic validation.
	_, err := Parse([]byte(`{
		"priority": {"weights": {
			"beginner":     {"frequency": 0.9, "relational": 0.9, "contextual": 0.9},
			"intermediate": {"frequency": 0.4, "relational": 0.35, "contextual": 0.25},
			"advanced":     {"frequency": 0.2, "relational": 0.35, "contextual": 0.45}
		}}
	}`))
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrSchemaViolation)
}

func TestValidate(t *testing.T) {
	t.Run("zero session size", func(t *testing.T) {
		cfg := Default()
		cfg.SessionSize = 0
		require.ErrorIs(t, cfg.Validate(), ErrBadSessionSize)
	})
	t.Run("negative ratio", func(t *testing.T) {
		cfg := Default()
		cfg.NewItemRatio = -0.1
		require.ErrorIs(t, cfg.Validate(), ErrBadNewItemRatio)
	})
	t.Run("zero strategy", func(t *testing.T) {
		cfg := Default()
		cfg.Strategy = 0
		require.ErrorIs(t, cfg.Validate(), ability.ErrUnknownStrategy)
	})
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"session_size": 7}`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 7, cfg.SessionSize)

	_, err = Load(filepath.Join(dir, "missing.json"))
	require.True(t, errors.Is(err, os.ErrNotExist))
}
