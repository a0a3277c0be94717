package cli

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"

	"github.com/dustin/go-humanize"
	"github.com/mosescb/names-demo/internal/steps"
)

const dataDirPerms = 0755

// Usage returns the message printed when no search request is given
func Usage() string {
	return fmt.Sprintf("Usage: %s <path> <needle>", ProgramName)
}

// Run performs the demonstration on the configured data file, then searches
// args[0] for args[1] when both are given. Extra arguments are ignored.
func Run(ctx *WorkflowContext, args []string) error {
	if err := RunDemonstration(ctx); err != nil {
		return err
	}

	req, ok, err := resolveSearchRequest(ctx, args)
	if err != nil {
		return err
	}
	if !ok {
		ctx.UI.Line(Usage())
		return nil
	}

	found, err := RunSearch(ctx, req)
	if err != nil {
		return err
	}
	if found {
		ctx.UI.Line("Found a match")
	}
	return nil
}

// RunDemonstration seeds the data file, appends to it and prints it back
func RunDemonstration(ctx *WorkflowContext) error {
	path := ctx.Config.DataFile()
	log := ctx.Logger.With("path", path)

	if err := ctx.FS.EnsureDirectory(filepath.Dir(path), dataDirPerms); err != nil {
		return fmt.Errorf("failed to prepare data directory: %w", err)
	}

	log.Debug("initializing data file")
	if err := ctx.Files.Initialize(path); err != nil {
		return err
	}
	ctx.UI.Infof("Wrote %s to %s", humanize.Bytes(uint64(len(steps.DefaultContent))), path)

	log.Debug("appending line", "text", steps.AppendedLine)
	if err := ctx.Files.Append(path, steps.AppendedLine); err != nil {
		return err
	}

	lines, err := ctx.Files.ReadAll(path)
	if err != nil {
		return err
	}

	if log.Enabled(context.Background(), slog.LevelDebug) {
		if digest, err := ctx.FS.Checksum(path); err == nil {
			log.Debug("data file read", "lines", len(lines), "blake3", digest)
		} else {
			log.Warn("failed to checksum data file", "error", err)
		}
	}

	return steps.PrintLines(ctx.UI.Data(), ctx.Config.Label(), lines)
}

// RunSearch reads req.Path and reports whether any line contains req.Needle
func RunSearch(ctx *WorkflowContext, req steps.SearchRequest) (bool, error) {
	lines, err := ctx.Files.ReadAll(req.Path)
	if err != nil {
		return false, err
	}

	found := steps.SearchFirstMatch(slices.Values(lines), req.Needle)
	ctx.Logger.Debug("search finished", "path", req.Path, "needle", req.Needle, "found", found)
	return found, nil
}

// resolveSearchRequest builds the request from args, or from prompts in
// interactive mode. ok is false when no search should run.
func resolveSearchRequest(ctx *WorkflowContext, args []string) (req steps.SearchRequest, ok bool, err error) {
	if len(args) >= 2 {
		if len(args) > 2 {
			ctx.Logger.Debug("ignoring extra arguments", "extra", args[2:])
		}
		return steps.SearchRequest{Path: args[0], Needle: args[1]}, true, nil
	}

	if ctx.UI.IsNonInteractive() {
		return steps.SearchRequest{}, false, nil
	}

	path, needle, err := ctx.Prompter.PromptSearch(ctx.Config.DataFile())
	if err != nil {
		return steps.SearchRequest{}, false, err
	}
	return steps.SearchRequest{Path: path, Needle: needle}, true, nil
}
