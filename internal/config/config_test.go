package config_test

import (
	"testing"

	"github.com/netsensor/idcode/internal/config"
	"github.com/stretchr/testify/require"
)

func TestFromEnvironmentAppliesOverrides(t *testing.T) {
	cfg := config.FromEnvironment("/opt/pb", "/repo", "/tmp/scratch")
	require.Equal(t, "/opt/pb", cfg.PBEncoderPath)
	require.Equal(t, "/repo", cfg.ProjectDir)
	require.Equal(t, "/tmp/scratch", cfg.TempDir)
	require.NotEmpty(t, cfg.Hostname)
}

func TestFromEnvironmentFallsBackToEnv(t *testing.T) {
	t.Setenv("PBLIB_DIR", "/env/pb")
	t.Setenv("PROJECT_DIR", "/env/repo")
	cfg := config.FromEnvironment("", "", "")
	require.Equal(t, "/env/pb", cfg.PBEncoderPath)
	require.Equal(t, "/env/repo", cfg.ProjectDir)
	require.NotEmpty(t, cfg.TempDir)
}
