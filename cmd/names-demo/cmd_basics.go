package main

import (
	"os"

	"github.com/mosescb/names-demo/internal/basics"
	"github.com/mosescb/names-demo/internal/ui"
	"github.com/spf13/cobra"
)

var basicsCmd = &cobra.Command{
	Use:   "basics",
	Short: "Print the arithmetic examples",
	Long:  `Print factorial, three-bit addition, temperature conversion and average examples.`,
	Args:  subcommandArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ui.New().Header("Basics")
		return basics.Report(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(basicsCmd)
}
