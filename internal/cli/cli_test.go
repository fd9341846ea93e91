package cli_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/reoring/statlog/internal/cli"
)

func TestLevel(t *testing.T) {
	t.Parallel()

	tests := map[int]slog.Level{
		0: slog.LevelWarn,
		1: slog.LevelInfo,
		2: slog.LevelDebug,
		5: slog.LevelDebug,
	}
	for in, want := range tests {
		require.Equal(t, want, cli.Level(in), "level for -v count %d", in)
	}
}

func TestInitViperConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("out-dir: from-file\njobs: 3\n"), 0o600))
	t.Setenv("STATLOGTEST_PACKAGE", "fromenv")

	cmd := &cobra.Command{Use: "statlogtest"}
	cli.InstallConfigFlag(cmd)
	require.NoError(t, cmd.ParseFlags([]string{"--config", cfg}))

	vip := viper.New()
	require.NoError(t, cli.InitViperConfig("statlogtest", cmd, vip))

	require.Equal(t, "from-file", vip.GetString("out-dir"))
	require.Equal(t, 3, vip.GetInt("jobs"))
	require.Equal(t, "fromenv", vip.GetString("package"))
}

func TestInitViperConfig_InvalidFile(t *testing.T) {
	t.Parallel()

	cfg := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("jobs: [\n"), 0o600))

	cmd := &cobra.Command{Use: "statlogtest"}
	cli.InstallConfigFlag(cmd)
	require.NoError(t, cmd.ParseFlags([]string{"--config", cfg}))

	require.Error(t, cli.InitViperConfig("statlogtest", cmd, viper.New()))
}
