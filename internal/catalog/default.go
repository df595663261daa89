package catalog

// Default returns the built-in catalog used when no catalog file is
// configured.
func Default() *Tree {
	b := NewBuilder()

	system := b.Group(Root, "System Setup")
	b.Add(system, Item{Name: "Build Prerequisites", Action: ScriptFile{Path: "system-setup/1-compile-setup.sh"}})
	b.Add(system, Item{Name: "Gaming Dependencies", Action: ScriptFile{Path: "system-setup/2-gaming-setup.sh"}})
	b.Add(system, Item{Name: "Global Theme", Action: ScriptFile{Path: "system-setup/3-global-theme.sh"}})

	security := b.Group(Root, "Security")
	b.Add(security, Item{Name: "Firewall Baselines", Action: ScriptFile{Path: "security/firewall-baselines.sh"}})

	apps := b.Group(Root, "Applications Setup")
	b.Add(apps, Item{Name: "Alacritty Setup", Action: ScriptFile{Path: "applications-setup/alacritty-setup.sh"}})
	b.Add(apps, Item{Name: "Bash Prompt Setup", Action: InlineScript{Source: `bash -c "$(curl -s https://raw.githubusercontent.com/ChrisTitusTech/mybash/main/setup.sh)"`}})
	b.Add(apps, Item{Name: "Kitty Setup", Action: ScriptFile{Path: "applications-setup/kitty-setup.sh"}})
	b.Add(apps, Item{Name: "Neovim Setup", Action: InlineScript{Source: `bash -c "$(curl -s https://raw.githubusercontent.com/ChrisTitusTech/neovim/main/setup.sh)"`}})
	b.Add(apps, Item{Name: "Rofi Setup", Action: ScriptFile{Path: "applications-setup/rofi-setup.sh"}})

	b.Add(Root, Item{Name: "Full System Update", Action: ScriptFile{Path: "system-update.sh"}})

	return b.Build()
}
