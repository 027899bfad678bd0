package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/iq360/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with 360IQ styling. A locked input
// ignores key presses, which keeps the answer frozen while it is scored.
type TextInput struct {
	Model    textinput.Model
	MaxChars int
	locked   bool
}

// NewTextInput creates a new styled text input.
func NewTextInput(placeholder string, maxChars int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "> "
	ti.Focus()

	// Zero means no limit.
	ti.CharLimit = max(maxChars, 0)

	return TextInput{
		Model:    ti,
		MaxChars: maxChars,
	}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if t.locked {
		if _, ok := msg.(tea.KeyMsg); ok {
			return t, nil
		}
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the text input inside a bordered box.
func (t TextInput) View() string {
	border := theme.Primary
	if t.locked {
		border = theme.Border
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Render(t.Model.View())
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// Blank reports whether the input holds only whitespace.
func (t TextInput) Blank() bool {
	return strings.TrimSpace(t.Model.Value()) == ""
}

// SetValue replaces the input contents.
func (t *TextInput) SetValue(v string) {
	t.Model.SetValue(v)
}

// Lock freezes or unfreezes the input.
func (t *TextInput) Lock(locked bool) {
	t.locked = locked
	if locked {
		t.Model.Blur()
		return
	}
	t.Model.Focus()
}

// Locked reports whether the input is frozen.
func (t TextInput) Locked() bool {
	return t.locked
}
