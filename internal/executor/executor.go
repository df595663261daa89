// Package executor runs resolved catalog actions through a shell.
package executor

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/scriptdeck/scriptdeck/internal/catalog"
)

// Runner executes a resolved action. Tests inject fake implementations so
// no real shell runs.
type Runner interface {
	Run(ctx context.Context, action catalog.Action, stdout, stderr io.Writer) error
}

// Executor is the real Runner. ScriptDir is the base directory script
// paths resolve against.
type Executor struct {
	ScriptDir string
	DryRun    bool
	Verbose   bool
	Shell     string // optional override, defaults to sh
}

// New returns a Runner backed by the real Executor implementation.
func New(scriptDir string, dry, verbose bool) Runner {
	return &Executor{ScriptDir: scriptDir, DryRun: dry, Verbose: verbose}
}

func (e *Executor) shell() string {
	if e.Shell != "" {
		return e.Shell
	}
	return "sh"
}

// Run executes the action's script. Inline sources go through `sh -c`;
// script files run as `sh <path>` resolved against ScriptDir.
func (e *Executor) Run(ctx context.Context, action catalog.Action, stdout, stderr io.Writer) error {
	name, args, err := e.invocation(action)
	if err != nil {
		return err
	}
	if e.DryRun {
		fmt.Fprintf(stdout, "dry-run: %s\n", shellquote.Join(append([]string{name}, args...)...))
		return nil
	}
	if e.Verbose {
		fmt.Fprintf(stdout, "+ %s\n", shellquote.Join(append([]string{name}, args...)...))
	}
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("run %s: %w", shellquote.Join(args...), err)
	}
	return nil
}

func (e *Executor) invocation(action catalog.Action) (string, []string, error) {
	switch a := action.(type) {
	case catalog.InlineScript:
		src := strings.TrimSpace(a.Source)
		if src == "" {
			return "", nil, fmt.Errorf("inline script is empty")
		}
		return e.shell(), []string{"-c", src}, nil
	case catalog.ScriptFile:
		if a.Path == "" {
			return "", nil, fmt.Errorf("script path is empty")
		}
		path := a.Path
		if !filepath.IsAbs(path) && e.ScriptDir != "" {
			path = filepath.Join(e.ScriptDir, path)
		}
		return e.shell(), []string{path}, nil
	default:
		return "", nil, fmt.Errorf("action is not runnable")
	}
}
