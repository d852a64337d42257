package ui

// AppMode is what currently receives keys: the projects list or a modal.
// Keybind hints are filtered by mode.
type AppMode int

const (
	ModeBrowse AppMode = iota
	ModeModal
)

func (m AppMode) String() string {
	switch m {
	case ModeBrowse:
		return "Browse"
	case ModeModal:
		return "Modal"
	default:
		return "Unknown"
	}
}
