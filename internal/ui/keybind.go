package ui

import (
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// binding is one registered key sequence.
type binding struct {
	cmd   tea.Cmd
	desc  string
	modes []AppMode // empty = every mode
}

func (b binding) appliesTo(mode AppMode) bool {
	return len(b.modes) == 0 || slices.Contains(b.modes, mode)
}

// KeybindRegistry maps key sequences to commands.
// Sequences use spacemacs-style notation: "SPC" for space, "SPC p c" for
// SPC then p then c. Single keys: "n", "/", "ctrl+c".
type KeybindRegistry struct {
	bindings map[string]binding
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{bindings: make(map[string]binding)}
}

// Bind registers a key sequence for every mode. Overwrites any existing
// binding for the sequence.
func (r *KeybindRegistry) Bind(seq string, cmd tea.Cmd) {
	r.BindWithDescForMode(seq, cmd, "", nil)
}

// BindWithDesc registers a key sequence with a help description.
func (r *KeybindRegistry) BindWithDesc(seq string, cmd tea.Cmd, desc string) {
	r.BindWithDescForMode(seq, cmd, desc, nil)
}

// BindWithDescForMode registers a key sequence that only fires and hints
// in the given modes. Nil modes means every mode.
func (r *KeybindRegistry) BindWithDescForMode(seq string, cmd tea.Cmd, desc string, modes []AppMode) {
	r.bindings[normalizeSeq(seq)] = binding{cmd: cmd, desc: desc, modes: modes}
}

// Lookup returns the command for a key sequence, or nil if not bound.
func (r *KeybindRegistry) Lookup(seq string) tea.Cmd {
	return r.bindings[normalizeSeq(seq)].cmd
}

// LookupForMode is Lookup restricted to bindings active in mode.
func (r *KeybindRegistry) LookupForMode(seq string, mode AppMode) tea.Cmd {
	b, ok := r.bindings[normalizeSeq(seq)]
	if !ok || !b.appliesTo(mode) {
		return nil
	}
	return b.cmd
}

// HasPrefix reports whether any binding continues past seq.
func (r *KeybindRegistry) HasPrefix(seq string) bool {
	prefix := normalizeSeq(seq) + " "
	for k := range r.bindings {
		if strings.HasPrefix(k, prefix) {
			return true
		}
	}
	return false
}

// submenuLabel names leader keys that open a submenu, so the hint bar
// does not show one arbitrary sub-action for them.
var submenuLabel = map[string]string{
	"p": "Project",
}

// LeaderHints returns the next key after currentSeq (default "SPC") mapped
// to its description, for the bindings active in mode.
func (r *KeybindRegistry) LeaderHints(currentSeq string, mode AppMode) map[string]string {
	base := "SPC"
	if currentSeq != "" {
		base = normalizeSeq(currentSeq)
	}
	prefix := base + " "
	out := make(map[string]string)
	for seq, b := range r.bindings {
		if b.cmd == nil || !b.appliesTo(mode) || !strings.HasPrefix(seq, prefix) {
			continue
		}
		next := strings.Fields(strings.TrimPrefix(seq, prefix))[0]
		switch {
		case r.HasPrefix(base + " " + next):
			if label, ok := submenuLabel[next]; ok {
				out[next] = label
			} else {
				out[next] = next + "…"
			}
		case b.desc != "":
			out[next] = b.desc
		default:
			out[next] = seq
		}
	}
	return out
}

// normalizeSeq converts tea key strings to the registry format:
// "space" and " " become "SPC".
func normalizeSeq(seq string) string {
	parts := strings.Fields(seq)
	if strings.TrimSpace(seq) == "" && seq != "" {
		return "SPC"
	}
	for i, p := range parts {
		if p == "space" {
			parts[i] = "SPC"
		}
	}
	return strings.Join(parts, " ")
}

// KeyHandler manages leader key state and dispatches to the registry.
type KeyHandler struct {
	Registry      *KeybindRegistry
	Mode          AppMode
	LeaderWaiting bool     // true when waiting for key after leader
	Buffer        []string // accumulated sequence in leader mode
}

// NewKeyHandler creates a handler with SPC as leader.
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{Registry: reg}
}

// Reset leaves leader mode.
func (h *KeyHandler) Reset() {
	h.LeaderWaiting = false
	h.Buffer = nil
}

// Handle processes a KeyMsg. consumed means the key belongs to the keybind
// system and must not reach the views.
func (h *KeyHandler) Handle(msg tea.KeyMsg) (consumed bool, cmd tea.Cmd) {
	part := keyToSeqPart(msg.String())

	if part == "esc" {
		if h.LeaderWaiting {
			h.Reset()
			return true, nil
		}
		return false, nil
	}

	if !h.LeaderWaiting {
		if part == "SPC" {
			h.LeaderWaiting = true
			h.Buffer = []string{"SPC"}
			return true, nil
		}
		if c := h.Registry.LookupForMode(part, h.Mode); c != nil {
			return true, c
		}
		return false, nil
	}

	h.Buffer = append(h.Buffer, part)
	seq := strings.Join(h.Buffer, " ")
	if c := h.Registry.LookupForMode(seq, h.Mode); c != nil {
		h.Reset()
		return true, c
	}
	// Stay in leader mode while a longer binding may still match.
	if !h.Registry.HasPrefix(seq) {
		h.Reset()
	}
	return true, nil
}

// keyToSeqPart converts a tea key string to a sequence part.
func keyToSeqPart(s string) string {
	if s == " " || s == "space" {
		return "SPC"
	}
	return s
}

// KeyMap implements help.KeyMap over the leader hints for the handler's
// current prefix.
type KeyMap struct {
	registry   *KeybindRegistry
	keyHandler *KeyHandler
	mode       AppMode
}

// NewKeyMap creates a KeyMap for the given registry, handler, and mode.
func NewKeyMap(registry *KeybindRegistry, keyHandler *KeyHandler, mode AppMode) help.KeyMap {
	return &KeyMap{registry: registry, keyHandler: keyHandler, mode: mode}
}

// ShortHelp returns the hint bindings sorted by key, plus esc.
func (km *KeyMap) ShortHelp() []key.Binding {
	if km.registry == nil {
		return nil
	}
	currentSeq := ""
	if km.keyHandler != nil && len(km.keyHandler.Buffer) > 0 {
		currentSeq = strings.Join(km.keyHandler.Buffer, " ")
	}
	hints := km.registry.LeaderHints(currentSeq, km.mode)
	if len(hints) == 0 {
		return nil
	}
	bindings := make([]key.Binding, 0, len(hints)+1)
	for _, k := range slices.Sorted(maps.Keys(hints)) {
		bindings = append(bindings, key.NewBinding(key.WithKeys(k), key.WithHelp(k, hints[k])))
	}
	return append(bindings, key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")))
}

// FullHelp returns a single column with the ShortHelp bindings.
func (km *KeyMap) FullHelp() [][]key.Binding {
	short := km.ShortHelp()
	if len(short) == 0 {
		return nil
	}
	return [][]key.Binding{short}
}
