// Package cli provides the orchestration layer for names-demo. It wires
// configuration, output and the filesystem together and runs the workflow
// steps in order.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/mosescb/names-demo/internal/config"
	"github.com/mosescb/names-demo/internal/logging"
	"github.com/mosescb/names-demo/internal/steps"
	"github.com/mosescb/names-demo/internal/system"
	"github.com/mosescb/names-demo/internal/ui"
)

// ProgramName is used in usage text
const ProgramName = "names-demo"

// SearchPrompter asks the user for a search request
type SearchPrompter interface {
	PromptSearch(defaultPath string) (path, needle string, err error)
}

// WorkflowContext holds all dependencies needed for a workflow run
type WorkflowContext struct {
	Config   *config.Config
	UI       *ui.UI
	FS       system.FileSystemManager
	Files    *steps.TextFile
	Logger   *slog.Logger
	Prompter SearchPrompter
}

// NewWorkflowContext creates a WorkflowContext on the host filesystem.
// Logs go to logOutput at the configured level.
func NewWorkflowContext(cfg *config.Config, u *ui.UI, logOutput io.Writer) (*WorkflowContext, error) {
	logger, err := logging.New(logOutput, cfg.LogLevel())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return NewWorkflowContextWithFS(cfg, u, logger, system.NewFileSystem()), nil
}

// NewWorkflowContextWithFS creates a WorkflowContext with a custom filesystem
func NewWorkflowContextWithFS(cfg *config.Config, u *ui.UI, logger *slog.Logger, fs system.FileSystemManager) *WorkflowContext {
	u.SetNonInteractive(!cfg.Interactive())

	return &WorkflowContext{
		Config:   cfg,
		UI:       u,
		FS:       fs,
		Files:    steps.NewTextFile(fs),
		Logger:   logger,
		Prompter: u,
	}
}
