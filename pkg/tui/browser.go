package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tagdeck/tagdeck-cli/pkg/app"
	"github.com/tagdeck/tagdeck-cli/pkg/models"
	"github.com/tagdeck/tagdeck-cli/pkg/search"
)

// browserRow is one selectable line: either a subfolder or a word.
type browserRow struct {
	folder *models.Folder
	word   *models.Word
}

// BrowserModel shows the folder tree and the words of the current
// folder, with a fuzzy filter box.
type BrowserModel struct {
	app      *app.App
	folderID string
	rows     []browserRow
	cursor   int
	filter   textinput.Model
	filterOn bool
	width    int
	height   int
}

// NewBrowserModel builds the browser rooted at the sentinel folder.
func NewBrowserModel(a *app.App) *BrowserModel {
	filter := textinput.New()
	filter.Placeholder = "filter words..."
	filter.CharLimit = 64

	m := &BrowserModel{
		app:      a,
		folderID: models.RootFolderID,
		filter:   filter,
	}
	m.Reload()
	return m
}

func (m *BrowserModel) Init() tea.Cmd {
	return nil
}

func (m *BrowserModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Reload rebuilds the rows from the store, applying the NSFW policy
// and the current filter.
func (m *BrowserModel) Reload() {
	settings := m.app.Settings()

	var rows []browserRow
	if !m.filterOn || m.filter.Value() == "" {
		for _, f := range m.app.Store.ChildFolders(m.folderID) {
			if f.NSFW && !settings.NSFWEnabled {
				continue
			}
			folder := f
			rows = append(rows, browserRow{folder: &folder})
		}
	}

	words := m.app.Store.WordsInFolder(m.folderID, settings.ShowDescendantWords && m.folderID != models.RootFolderID)
	words = search.Visible(words, settings.NSFWEnabled)
	if m.filterOn && m.filter.Value() != "" {
		// The filter searches the whole library, not just the folder.
		words = search.Visible(m.app.Store.Words(), settings.NSFWEnabled)
		words = search.Words(m.filter.Value(), words)
	}
	for _, w := range words {
		word := w
		rows = append(rows, browserRow{word: &word})
	}

	m.rows = rows
	if m.cursor >= len(rows) {
		m.cursor = len(rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *BrowserModel) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	if m.filterOn {
		switch keyMsg.Type {
		case tea.KeyEsc:
			m.filterOn = false
			m.filter.Blur()
			m.filter.SetValue("")
			m.Reload()
			return nil
		case tea.KeyEnter:
			m.filter.Blur()
			m.filterOn = m.filter.Value() != ""
			return nil
		}
		if m.filter.Focused() {
			var cmd tea.Cmd
			m.filter, cmd = m.filter.Update(msg)
			m.Reload()
			return cmd
		}
	}

	switch keyMsg.String() {
	case "q":
		return tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	case "enter", "l":
		return m.open(models.TypePositive)
	case "n":
		return m.open(models.TypeNegative)
	case "backspace", "h":
		return m.up()
	case "/":
		m.filterOn = true
		m.filter.Focus()
		return textinput.Blink
	case "tab":
		return switchTo(selectionView)
	}
	return nil
}

// open descends into a folder, or adds the word under the cursor to
// the given selection list.
func (m *BrowserModel) open(listType string) tea.Cmd {
	if m.cursor >= len(m.rows) {
		return nil
	}
	row := m.rows[m.cursor]
	if row.folder != nil {
		if listType == models.TypeNegative {
			return nil
		}
		m.folderID = row.folder.ID
		m.cursor = 0
		m.Reload()
		return nil
	}
	m.app.Engine.Add(*row.word, listType, 1.0)
	return status(fmt.Sprintf("Added %q to %s", row.word.LabelJP, listType))
}

func (m *BrowserModel) up() tea.Cmd {
	if m.folderID == models.RootFolderID {
		return nil
	}
	if f, ok := m.app.Store.Folder(m.folderID); ok {
		if f.ParentID == "" {
			m.folderID = models.RootFolderID
		} else {
			m.folderID = f.ParentID
		}
	} else {
		m.folderID = models.RootFolderID
	}
	m.cursor = 0
	m.Reload()
	return nil
}

func (m *BrowserModel) View() string {
	var b strings.Builder

	path := m.app.Store.FolderPath(m.folderID, m.app.Settings().ShowRootInPaths)
	if path == "" {
		path = "library"
	}
	b.WriteString(titleStyle.Render("TAGDECK — " + path))
	b.WriteString("\n")

	if m.filterOn {
		b.WriteString(m.filter.View())
		b.WriteString("\n")
	}

	if len(m.rows) == 0 {
		b.WriteString(dimStyle.Render("  (empty)"))
		b.WriteString("\n")
	}
	for i, row := range m.rows {
		prefix := "  "
		if i == m.cursor {
			prefix = cursorStyle.Render("> ")
		}
		switch {
		case row.folder != nil:
			b.WriteString(prefix + folderStyle.Render(row.folder.Name+"/"))
		case row.word.NSFW:
			b.WriteString(prefix + nsfwStyle.Render(row.word.LabelJP) + dimStyle.Render("  "+row.word.ValueEN))
		default:
			b.WriteString(prefix + row.word.LabelJP + dimStyle.Render("  "+row.word.ValueEN))
		}
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("enter add/open · n add negative · / filter · backspace up · tab selection · q quit"))
	return b.String()
}
