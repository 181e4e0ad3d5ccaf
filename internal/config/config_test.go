package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	require.Equal(t, DefaultMaxCallDepth, cfg.MaxCallDepth)
	require.False(t, cfg.Deterministic)
	require.Zero(t, cfg.Seed)
}

func TestDecodeAppliesDefaultsForOmittedFields(t *testing.T) {
	cfg, err := Decode(strings.NewReader("deterministic: true\nseed: 7\n"))
	require.NoError(t, err)
	require.Equal(t, DefaultMaxCallDepth, cfg.MaxCallDepth)
	require.True(t, cfg.Deterministic)
	require.Equal(t, int64(7), cfg.Seed)
}

func TestDecodeEmptyDocumentReturnsDefault(t *testing.T) {
	cfg, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestDecodeRejectsUnknownFields(t *testing.T) {
	_, err := Decode(strings.NewReader("maxCallDepth: 100\nbogusField: true\n"))
	require.Error(t, err)
}

func TestDecodeRejectsNonPositiveMaxCallDepth(t *testing.T) {
	_, err := Decode(strings.NewReader("maxCallDepth: 0\n"))
	require.Error(t, err)
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
}
