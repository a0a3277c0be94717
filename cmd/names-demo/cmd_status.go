package main

import (
	"os"

	"github.com/dustin/go-humanize"
	"github.com/mosescb/names-demo/internal/cli"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show data file status",
	Long:  `Display the data file's size, line count and BLAKE3 digest without modifying it.`,
	Args:  subcommandArgs,
	RunE:  showStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func showStatus(cmd *cobra.Command, args []string) error {
	ctx, err := newWorkflowContext(cmd)
	if err != nil {
		return err
	}

	ctx.UI.Header("Data File Status")

	status, err := cli.InspectDataFile(ctx)
	if err != nil {
		return err
	}

	if !status.Exists {
		ctx.UI.Warningf("%s does not exist yet; run %s to create it", status.Path, cli.ProgramName)
	} else {
		ctx.UI.Success(status.Path)
		ctx.UI.Linef("Size:   %s", humanize.Bytes(uint64(status.Size)))
		ctx.UI.Linef("Lines:  %d", status.Lines)
		ctx.UI.Linef("BLAKE3: %s", status.Digest)
	}

	// Show configuration file location
	if _, err := os.Stat(ctx.Config.FilePath()); err == nil {
		ctx.UI.Infof("Configuration file: %s", ctx.Config.FilePath())
	}
	return nil
}
