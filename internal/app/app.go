// Package app bootstraps the interactive session and runs the resolved
// action once the menu exits.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/scriptdeck/scriptdeck/internal/catalog"
	"github.com/scriptdeck/scriptdeck/internal/config"
	"github.com/scriptdeck/scriptdeck/internal/executor"
	"github.com/scriptdeck/scriptdeck/internal/logging/events"
	"github.com/scriptdeck/scriptdeck/internal/menu"
	"github.com/scriptdeck/scriptdeck/internal/theme"
	"github.com/scriptdeck/scriptdeck/internal/ui"
)

// LoadCatalog builds the menu tree from the configured catalog file, or
// the built-in catalog when none is set.
func LoadCatalog(cfg config.App) (*catalog.Tree, error) {
	if cfg.CatalogPath == "" {
		return catalog.Default(), nil
	}
	return catalog.LoadFile(cfg.CatalogPath)
}

// ScriptReader resolves script paths against the configured script
// directory for the preview pane.
func ScriptReader(scriptDir string) menu.ScriptReader {
	return func(path string) (string, error) {
		if !filepath.IsAbs(path) && scriptDir != "" {
			path = filepath.Join(scriptDir, path)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
}

// Run bootstraps the Bubble Tea program and executes whatever action the
// session resolves.
func Run(ctx context.Context, cfg config.App) error {
	tree, err := LoadCatalog(cfg)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	model := ui.NewModel(tree, ui.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Styles:     theme.Default(),
		Reader:     ScriptReader(cfg.ScriptDir),
	})
	program := tea.NewProgram(model, tea.WithAltScreen())
	final, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	if err != nil {
		return err
	}
	finished, ok := final.(*ui.Model)
	if !ok {
		finished = model
	}
	action, done := finished.Result()
	if !done || !catalog.IsRunnable(action) {
		return nil
	}
	runner := executor.New(cfg.ScriptDir, false, cfg.Verbose)
	return RunAction(ctx, runner, action, os.Stdout, os.Stderr)
}

// RunAction executes a resolved action and traces the outcome.
func RunAction(ctx context.Context, runner executor.Runner, action catalog.Action, stdout, stderr io.Writer) error {
	if err := runner.Run(ctx, action, stdout, stderr); err != nil {
		events.Action.Error(err)
		return err
	}
	events.Action.Success(actionInfo(action))
	return nil
}

func actionInfo(action catalog.Action) string {
	switch a := action.(type) {
	case catalog.ScriptFile:
		return "script " + a.Path
	case catalog.InlineScript:
		return "inline script"
	default:
		return "no action"
	}
}
