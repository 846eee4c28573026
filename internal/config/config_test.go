package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewParsesPositionalInputPath(t *testing.T) {
	cfg, err := New("chc-check-test", []string{"-v", "-color", "foo.hc"})
	require.NoError(t, err)
	require.Equal(t, "foo.hc", cfg.InputPath)
	require.True(t, cfg.Verbose)
	require.True(t, cfg.Color)
	require.Empty(t, cfg.SolutionPath)
}

func TestNewParsesSolutionFlag(t *testing.T) {
	cfg, err := New("chc-check-test", []string{"-sol", "foo.sol", "foo.hc"})
	require.NoError(t, err)
	require.Equal(t, "foo.sol", cfg.SolutionPath)
	require.Equal(t, "foo.hc", cfg.InputPath)
	require.False(t, cfg.Verbose)
	require.False(t, cfg.Color)
}

func TestNewWithNoInputPathLeavesItEmpty(t *testing.T) {
	cfg, err := New("chc-check-test", nil)
	require.NoError(t, err)
	require.Empty(t, cfg.InputPath)
}

func TestNewRejectsUnknownFlag(t *testing.T) {
	_, err := New("chc-check-test", []string{"-bogus"})
	require.Error(t, err)
}
