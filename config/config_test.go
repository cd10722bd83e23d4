package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAppliesDefaultsWithNoFlagsOrFile(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(nil))

	cfg, err := Load("", fs)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadHonorsCLIFlagOverDefault(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--multicast-scouting=false", "--mode=client"}))

	cfg, err := Load("", fs)
	require.NoError(t, err)
	assert.False(t, cfg.MulticastScouting)
	assert.Equal(t, ModeClient, cfg.Mode)
}

func TestLoadHonorsEnvVar(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(nil))

	t.Setenv("ZENOH_ADD_TIMESTAMP", "true")

	cfg, err := Load("", fs)
	require.NoError(t, err)
	assert.True(t, cfg.AddTimestamp)
}

func TestValidateRejectsUnknownMode(t *testing.T) {
	cfg := Default()
	cfg.Mode = "bogus"
	assert.Error(t, Validate(cfg))
}

func TestValidateRejectsNonPositiveScoutingTimeout(t *testing.T) {
	cfg := Default()
	cfg.ScoutingTimeout = 0
	assert.Error(t, Validate(cfg))
}

func TestLoadSkipsMissingConfigFile(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(nil))

	_, err := Load("/nonexistent/path/zenohd.yaml", fs)
	assert.NoError(t, err)
}
