package catalog

// Action describes what a menu entry does when selected. It is a closed
// set: NoAction for group placeholders, InlineScript for embedded script
// source, and ScriptFile for scripts loaded from a base directory.
type Action interface {
	action()
}

// NoAction marks a node that only exists to hold children.
type NoAction struct{}

// InlineScript carries self-contained script source.
type InlineScript struct {
	Source string
}

// ScriptFile references a script relative to the configured script
// directory. The file is only read when previewed or executed.
type ScriptFile struct {
	Path string
}

func (NoAction) action()     {}
func (InlineScript) action() {}
func (ScriptFile) action()   {}

// IsRunnable reports whether the action resolves to something an
// executor can run.
func IsRunnable(a Action) bool {
	switch a.(type) {
	case InlineScript, ScriptFile:
		return true
	default:
		return false
	}
}
