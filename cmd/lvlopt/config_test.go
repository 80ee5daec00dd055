package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlopt/simplex"
)

// TestLoadConfigDefaults: no file, no environment — the documented defaults.
func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	require.Equal(t, 30*time.Second, cfg.Solver.TimeLimit)
	require.Equal(t, 1e-7, cfg.Solver.Eps)
	require.Equal(t, 100000, cfg.Solver.MaxNodes)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, "text", cfg.Log.Format)
	require.Equal(t, 80, cfg.Output.Width)
}

// TestLoadConfigEnvOverride: LVLOPT_* variables override defaults.
func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("LVLOPT_SOLVER_MAX_NODES", "5000")
	t.Setenv("LVLOPT_SOLVER_TIME_LIMIT", "5s")
	t.Setenv("LVLOPT_LOG_FORMAT", "json")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	require.Equal(t, 5000, cfg.Solver.MaxNodes)
	require.Equal(t, 5*time.Second, cfg.Solver.TimeLimit)
	require.Equal(t, "json", cfg.Log.Format)
}

// TestLoadConfigFromFile: file values override defaults, untouched keys keep
// theirs; an unparsable file fails.
func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("solver:\n  max_nodes: 7\noutput:\n  width: 100\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 7, cfg.Solver.MaxNodes)
	require.Equal(t, 100, cfg.Output.Width)
	require.Equal(t, "info", cfg.Log.Level)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("solver: ["), 0o644))
	_, err = LoadConfig(bad)
	require.Error(t, err)
}

// TestLoadConfigMissingFileFallsBack: an absent file yields the defaults.
func TestLoadConfigMissingFileFallsBack(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, 100000, cfg.Solver.MaxNodes)
}

// TestLoadConfigRejectsBadValues: range screening catches values the solver
// option constructors would panic on.
func TestLoadConfigRejectsBadValues(t *testing.T) {
	cases := []struct {
		key, val, frag string
	}{
		{"LVLOPT_SOLVER_EPS", "2", "solver.eps"},
		{"LVLOPT_SOLVER_EPS", "0", "solver.eps"},
		{"LVLOPT_SOLVER_MAX_NODES", "-1", "solver.max_nodes"},
		{"LVLOPT_SOLVER_TIME_LIMIT", "-3s", "solver.time_limit"},
		{"LVLOPT_OUTPUT_WIDTH", "10", "output.width"},
	}
	for _, tc := range cases {
		t.Run(tc.key+"="+tc.val, func(t *testing.T) {
			t.Setenv(tc.key, tc.val)
			_, err := LoadConfig("")
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.frag)
		})
	}
}

// TestSolverOptionsScreened: a validated config never trips the option
// constructors.
func TestSolverOptionsScreened(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	require.NotPanics(t, func() { simplex.New(cfg.SolverOptions()...) })
}
