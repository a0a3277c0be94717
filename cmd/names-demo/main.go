package main

import (
	"fmt"
	"os"

	"github.com/mosescb/names-demo/internal/cli"
	"github.com/mosescb/names-demo/internal/config"
	"github.com/mosescb/names-demo/internal/ui"
	"github.com/mosescb/names-demo/pkg/version"
	"github.com/spf13/cobra"
)

var (
	cfgFile     string
	dataFile    string
	label       string
	interactive bool
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "names-demo [path needle]",
	Short: "Write, read and search a small names file",
	Long: `names-demo seeds a text file with a few names, appends one more,
reads the file back and prints it line by line.

Given a path and a search term it then reports "Found a match" when any
line of that file contains the term. Without them it prints usage.

Everything after the path is taken literally, so a search term may start
with "-". Flags go before the path. A path that matches a subcommand name
(basics, status, version, help, completion) must be written as ./status.`,
	Version:       version.Short(),
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true, // We handle errors manually, but silence usage on error
	SilenceErrors: true, // We format errors ourselves for consistent output
	RunE:          runWorkflow,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  subcommandArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Info())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/"+config.DefaultFileName+")")
	rootCmd.PersistentFlags().StringVar(&dataFile, "data-file", config.Defaults[config.KeyDataFile].(string), "demonstration file to write and print")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.Flags().StringVar(&label, "label", config.Defaults[config.KeyOutputLabel].(string), "prefix for printed lines")
	rootCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "prompt for a path and search term when none are given")
	// Stop flag parsing at the path so the needle is never read as a flag
	rootCmd.Flags().SetInterspersed(false)

	rootCmd.AddCommand(versionCmd)
}

// subcommandArgs rejects arguments to a subcommand and points out how to
// search a file that shares the subcommand's name
func subcommandArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}
	return fmt.Errorf("%s takes no arguments; to search a file named %q, pass it as ./%s",
		cmd.Name(), cmd.Name(), cmd.Name())
}

// loadConfig resolves settings from defaults, the config file and flags
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.New(cfgFile)

	bindings := map[string]string{
		config.KeyDataFile:    "data-file",
		config.KeyVerbose:     "verbose",
		config.KeyOutputLabel: "label",
		config.KeyInteractive: "interactive",
	}
	for key, name := range bindings {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			continue // not registered on this subcommand
		}
		if err := cfg.BindFlag(key, flag); err != nil {
			return nil, err
		}
	}

	if err := cfg.Load(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newWorkflowContext(cmd *cobra.Command) (*cli.WorkflowContext, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	ctx, err := cli.NewWorkflowContext(cfg, ui.New(), os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize workflow context: %w", err)
	}
	return ctx, nil
}

func runWorkflow(cmd *cobra.Command, args []string) error {
	ctx, err := newWorkflowContext(cmd)
	if err != nil {
		return err
	}
	return cli.Run(ctx, args)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
