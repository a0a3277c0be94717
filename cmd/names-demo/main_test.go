package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// resetCommands restores every flag to its default between Execute calls
func resetCommands(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	reset := func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	}
	for _, cmd := range []*cobra.Command{rootCmd, statusCmd, basicsCmd, versionCmd} {
		cmd.Flags().VisitAll(reset)
		cmd.PersistentFlags().VisitAll(reset)
	}
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
}

func execute(t *testing.T, args ...string) error {
	t.Helper()
	resetCommands(t)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestRootNeedleStartingWithDash(t *testing.T) {
	tests := []struct {
		name   string
		needle string
	}{
		{"short flag lookalike", "-Moses"},
		{"single dash letter", "-x"},
		{"long flag lookalike", "--verbose"},
		{"help lookalike", "-h"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dataFile := filepath.Join(t.TempDir(), "text-data", "names.txt")

			if err := execute(t, "--data-file", dataFile, dataFile, tt.needle); err != nil {
				t.Fatalf("Execute() error = %v", err)
			}

			got, err := os.ReadFile(dataFile)
			if err != nil {
				t.Fatalf("demonstration did not run: %v", err)
			}
			if string(got) != "Moses\nChristopher\nCarrotPi\nSteve" {
				t.Errorf("data file = %q", got)
			}
		})
	}
}

func TestLoadConfigFlagBindings(t *testing.T) {
	resetCommands(t)
	dataFile := filepath.Join(t.TempDir(), "names.txt")

	if err := rootCmd.ParseFlags([]string{"--data-file", dataFile, "--label", ">>", "-i", "-v"}); err != nil {
		t.Fatalf("ParseFlags() error = %v", err)
	}
	cfg, err := loadConfig(rootCmd)
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}

	if cfg.DataFile() != dataFile {
		t.Errorf("DataFile() = %v, want %v", cfg.DataFile(), dataFile)
	}
	if cfg.Label() != ">>" {
		t.Errorf("Label() = %v, want >>", cfg.Label())
	}
	if !cfg.Interactive() {
		t.Error("Interactive() = false, want true")
	}
	if cfg.LogLevel() != "debug" {
		t.Errorf("LogLevel() = %v, want debug", cfg.LogLevel())
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	resetCommands(t)

	if err := rootCmd.ParseFlags(nil); err != nil {
		t.Fatalf("ParseFlags() error = %v", err)
	}
	cfg, err := loadConfig(rootCmd)
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.DataFile() != "text-data/names.txt" || cfg.Label() != "line-by-line:" || cfg.Interactive() {
		t.Errorf("loadConfig() defaults = %q %q %v", cfg.DataFile(), cfg.Label(), cfg.Interactive())
	}
}

func TestMissingExplicitConfigFails(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.conf")

	err := execute(t, "--config", missing)
	if err == nil {
		t.Fatal("Execute() error = nil, want error for missing config file")
	}
	if !strings.Contains(err.Error(), "failed to load configuration") {
		t.Errorf("Execute() error = %v, want configuration error", err)
	}
}

func TestRootSearchMissingFileFails(t *testing.T) {
	dir := t.TempDir()
	dataFile := filepath.Join(dir, "names.txt")
	missing := filepath.Join(dir, "missing.txt")

	err := execute(t, "--data-file", dataFile, missing, "Moses")
	if err == nil || !strings.Contains(err.Error(), missing) {
		t.Errorf("Execute() error = %v, want error naming %s", err, missing)
	}
}

func TestSubcommandNameAsPath(t *testing.T) {
	for _, name := range []string{"status", "basics", "version"} {
		t.Run(name, func(t *testing.T) {
			err := execute(t, name, "Moses")
			if err == nil {
				t.Fatal("Execute() error = nil, want argument error")
			}
			if !strings.Contains(err.Error(), "./"+name) {
				t.Errorf("Execute() error = %q, want hint about ./%s", err, name)
			}
		})
	}
}

func TestStatusWithoutArgs(t *testing.T) {
	dataFile := filepath.Join(t.TempDir(), "names.txt")

	if err := execute(t, "status", "--data-file", dataFile); err != nil {
		t.Errorf("Execute() error = %v", err)
	}
}
