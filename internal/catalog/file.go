package catalog

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Entry mirrors one catalog file element. Exactly one of Script,
// Command, or Items must be set: Script is a path relative to the
// script directory, Command is inline script source, Items makes the
// entry a group.
type Entry struct {
	Name    string  `mapstructure:"name"`
	Script  string  `mapstructure:"script"`
	Command string  `mapstructure:"command"`
	Items   []Entry `mapstructure:"items"`
}

type catalogFile struct {
	Items []Entry `mapstructure:"items"`
}

// LoadFile reads a YAML (or TOML) catalog file and builds the tree from
// it. Validation failures are returned, not logged; a broken catalog is
// a startup error.
func LoadFile(path string) (*Tree, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if ext := strings.TrimPrefix(filepath.Ext(path), "."); ext != "" {
		v.SetConfigType(ext)
	} else {
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	var file catalogFile
	if err := v.Unmarshal(&file); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	if len(file.Items) == 0 {
		return nil, fmt.Errorf("catalog %s: no items defined", path)
	}
	b := NewBuilder()
	if err := addEntries(b, Root, file.Items); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return b.Build(), nil
}

func addEntries(b *Builder, parent NodeID, entries []Entry) error {
	for _, entry := range entries {
		if strings.TrimSpace(entry.Name) == "" {
			return fmt.Errorf("entry without a name under %q", b.nodes[parent].item.Name)
		}
		action, err := entryAction(entry)
		if err != nil {
			return err
		}
		id := b.Add(parent, Item{Name: entry.Name, Action: action})
		if len(entry.Items) > 0 {
			if err := addEntries(b, id, entry.Items); err != nil {
				return err
			}
		}
	}
	return nil
}

func entryAction(entry Entry) (Action, error) {
	set := 0
	if entry.Script != "" {
		set++
	}
	if entry.Command != "" {
		set++
	}
	if len(entry.Items) > 0 {
		set++
	}
	if set > 1 {
		return nil, fmt.Errorf("entry %q: script, command, and items are mutually exclusive", entry.Name)
	}
	switch {
	case entry.Script != "":
		return ScriptFile{Path: entry.Script}, nil
	case entry.Command != "":
		return InlineScript{Source: entry.Command}, nil
	case len(entry.Items) > 0:
		return NoAction{}, nil
	default:
		return nil, fmt.Errorf("entry %q: needs one of script, command, or items", entry.Name)
	}
}
