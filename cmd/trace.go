package cmd

import (
	"os"

	"golang.org/x/term"

	"github.com/scriptdeck/scriptdeck/internal/config"
	"github.com/scriptdeck/scriptdeck/internal/logging/events"
)

func traceStartup(cfg config.Config, args []string) {
	events.App.Start(startupTracePayload(cfg, args))
}

// startupTracePayload bundles runtime context for trace logging,
// including a terminal check on the standard descriptors. The first
// descriptor that reports a size becomes the "terminal" entry.
func startupTracePayload(cfg config.Config, args []string) map[string]interface{} {
	payload := map[string]interface{}{
		"argv":   append([]string(nil), os.Args[1:]...),
		"args":   args,
		"config": cfg,
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	}

	descriptors := []struct {
		name string
		file *os.File
	}{
		{"stdin", os.Stdin},
		{"stdout", os.Stdout},
		{"stderr", os.Stderr},
	}
	ttys := make([]map[string]interface{}, 0, len(descriptors))
	for _, desc := range descriptors {
		fd := int(desc.file.Fd())
		entry := map[string]interface{}{
			"name":        desc.name,
			"is_terminal": false,
		}
		if term.IsTerminal(fd) {
			entry["is_terminal"] = true
			if width, height, err := term.GetSize(fd); err == nil {
				entry["width"] = width
				entry["height"] = height
				if _, ok := payload["terminal"]; !ok {
					payload["terminal"] = map[string]interface{}{
						"source": desc.name,
						"width":  width,
						"height": height,
					}
				}
			} else {
				entry["error"] = err.Error()
			}
		}
		ttys = append(ttys, entry)
	}
	payload["tty"] = ttys
	return payload
}
