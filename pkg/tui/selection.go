package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"

	"github.com/tagdeck/tagdeck-cli/pkg/app"
	"github.com/tagdeck/tagdeck-cli/pkg/models"
	"github.com/tagdeck/tagdeck-cli/pkg/prompt"
	"github.com/tagdeck/tagdeck-cli/pkg/selection"
)

// SelectionModel shows the positive and negative lists and the
// rendered prompt preview.
type SelectionModel struct {
	app      *app.App
	listType string
	cursor   int

	// naming is non-empty while a favorite/quality name prompt is
	// open ("favorite" or "quality").
	naming    string
	nameInput textinput.Model

	width  int
	height int
}

// NewSelectionModel builds the selection view focused on positive.
func NewSelectionModel(a *app.App) *SelectionModel {
	name := textinput.New()
	name.Placeholder = "name..."
	name.CharLimit = 64

	return &SelectionModel{
		app:       a,
		listType:  models.TypePositive,
		nameInput: name,
	}
}

func (m *SelectionModel) Init() tea.Cmd {
	return nil
}

func (m *SelectionModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *SelectionModel) list() []models.SelectedWord {
	return m.app.Engine.List(m.listType)
}

func (m *SelectionModel) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	if m.naming != "" {
		return m.updateNaming(keyMsg, msg)
	}

	switch keyMsg.String() {
	case "q":
		return tea.Quit
	case "tab", "esc":
		return switchTo(browserView)
	case "p":
		m.listType = models.TypePositive
		m.clampCursor()
	case "n":
		m.listType = models.TypeNegative
		m.clampCursor()
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.list())-1 {
			m.cursor++
		}
	case "K":
		return m.move(-1)
	case "J":
		return m.move(1)
	case "+", "=":
		return m.bumpStrength(0.1)
	case "-":
		return m.bumpStrength(-0.1)
	case "r":
		return m.bumpRepeat(1)
	case "R":
		return m.bumpRepeat(-1)
	case "x", "delete":
		return m.remove()
	case "X":
		m.app.Engine.Clear(m.listType)
		m.clampCursor()
		return status(fmt.Sprintf("Cleared %s list", m.listType))
	case "u":
		if m.app.Store.Undo() {
			return status("Undid last library change")
		}
		return status("Nothing to undo")
	case "c":
		return m.copy(false)
	case "C":
		return m.copy(true)
	case "f":
		m.naming = "favorite"
		m.nameInput.Focus()
		return textinput.Blink
	case "Q":
		m.naming = "quality"
		m.nameInput.Focus()
		return textinput.Blink
	}
	return nil
}

func (m *SelectionModel) updateNaming(keyMsg tea.KeyMsg, msg tea.Msg) tea.Cmd {
	switch keyMsg.Type {
	case tea.KeyEsc:
		m.naming = ""
		m.nameInput.Blur()
		m.nameInput.SetValue("")
		return nil
	case tea.KeyEnter:
		name := strings.TrimSpace(m.nameInput.Value())
		kind := m.naming
		m.naming = ""
		m.nameInput.Blur()
		m.nameInput.SetValue("")
		if name == "" {
			return nil
		}
		var err error
		if kind == "quality" {
			_, err = m.app.SaveQuality(name, m.listType)
		} else {
			_, err = m.app.SaveFavorite(name, m.listType)
		}
		if err != nil {
			return status(err.Error())
		}
		return status(fmt.Sprintf("Saved %s %q", kind, name))
	}
	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return cmd
}

func (m *SelectionModel) clampCursor() {
	if m.cursor >= len(m.list()) {
		m.cursor = len(m.list()) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *SelectionModel) current() (models.SelectedWord, bool) {
	list := m.list()
	if m.cursor < 0 || m.cursor >= len(list) {
		return models.SelectedWord{}, false
	}
	return list[m.cursor], true
}

func (m *SelectionModel) bumpStrength(delta float64) tea.Cmd {
	w, ok := m.current()
	if !ok {
		return nil
	}
	if m.app.Settings().StrengthDisplay == models.StrengthDisplayDiscrete {
		// Legacy discrete picker cycles 1.0 -> 1.2 -> 1.4.
		next := map[float64]float64{1.0: 1.2, 1.2: 1.4, 1.4: 1.0}[w.Strength]
		if next == 0 {
			next = 1.0
		}
		m.app.Engine.UpdateStrength(w.ID, m.listType, next)
		return nil
	}
	m.app.Engine.UpdateStrength(w.ID, m.listType, w.Strength+delta)
	return nil
}

func (m *SelectionModel) bumpRepeat(delta int) tea.Cmd {
	w, ok := m.current()
	if !ok {
		return nil
	}
	repeat := w.Repeat
	if repeat < 1 {
		repeat = 1
	}
	repeat += delta
	m.app.Engine.Update(w.ID, m.listType, selection.Patch{Repeat: &repeat})
	return nil
}

func (m *SelectionModel) move(delta int) tea.Cmd {
	list := m.list()
	target := m.cursor + delta
	if m.cursor < 0 || m.cursor >= len(list) || target < 0 || target >= len(list) {
		return nil
	}
	reordered := append([]models.SelectedWord(nil), list...)
	reordered[m.cursor], reordered[target] = reordered[target], reordered[m.cursor]
	if err := m.app.Engine.Reorder(m.listType, reordered); err != nil {
		return status(err.Error())
	}
	m.cursor = target
	return nil
}

func (m *SelectionModel) remove() tea.Cmd {
	w, ok := m.current()
	if !ok {
		return nil
	}
	if err := m.app.Engine.Remove(w.ID, m.listType); err != nil {
		return status(err.Error())
	}
	m.clampCursor()
	return status(fmt.Sprintf("Removed %q", w.LabelJP))
}

func (m *SelectionModel) copy(combined bool) tea.Cmd {
	text := m.app.CopyText(m.listType)
	if combined || m.app.Settings().CombinedCopy {
		text = m.app.CombinedCopyText()
	}
	if err := clipboard.WriteAll(text); err != nil {
		return status(fmt.Sprintf("Clipboard error: %v", err))
	}
	return status(fmt.Sprintf("Copied %d characters", len(text)))
}

func (m *SelectionModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("SELECTION — %s", m.listType)))
	b.WriteString("\n")

	list := m.list()
	if len(list) == 0 {
		b.WriteString(dimStyle.Render("  (nothing selected)"))
		b.WriteString("\n")
	}
	for i, w := range list {
		prefix := "  "
		if i == m.cursor {
			prefix = cursorStyle.Render("> ")
		}
		line := w.LabelJP
		if w.CardID != "" {
			line = folderStyle.Render("[card] " + w.CardName)
		} else {
			detail := fmt.Sprintf("  %s  x%s", prompt.FormatStrength(w.Strength), repeatLabel(w.Repeat))
			line += dimStyle.Render(detail)
		}
		b.WriteString(prefix + line + "\n")
	}

	width := m.width
	if width <= 0 {
		width = 80
	}
	preview := m.app.CopyText(m.listType)
	if preview == "" {
		preview = dimStyle.Render("(empty prompt)")
	}
	b.WriteString(previewStyle.Width(width - 4).Render(wordwrap.String(preview, width-6)))
	b.WriteString("\n")

	if m.naming != "" {
		b.WriteString(fmt.Sprintf("Save %s as: %s\n", m.naming, m.nameInput.View()))
	}

	b.WriteString(helpStyle.Render("p/n lists · +/- strength · r/R repeat · J/K move · x remove · X clear · c copy · C combined · f favorite · Q quality · u undo · tab browser"))
	return b.String()
}

func repeatLabel(repeat int) string {
	if repeat < 1 {
		repeat = 1
	}
	return fmt.Sprintf("%d", repeat)
}
