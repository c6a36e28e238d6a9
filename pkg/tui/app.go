package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tagdeck/tagdeck-cli/pkg/app"
)

type sessionState int

const (
	browserView sessionState = iota
	selectionView
)

// StatusMsg updates the status line at the bottom of the screen.
type StatusMsg string

// SwitchViewMsg switches between the browser and selection views.
type SwitchViewMsg struct {
	view sessionState
}

// App is the top-level bubbletea model. It owns the shared state
// handle and delegates to the active sub-model.
type App struct {
	state     sessionState
	browser   *BrowserModel
	selection *SelectionModel
	width     int
	height    int
	statusMsg string
}

// NewApp builds the TUI around a loaded application state.
func NewApp(a *app.App) *App {
	return &App{
		state:     browserView,
		browser:   NewBrowserModel(a),
		selection: NewSelectionModel(a),
	}
}

func (a *App) Init() tea.Cmd {
	return a.browser.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.browser.SetSize(msg.Width, msg.Height)
		a.selection.SetSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}

	case StatusMsg:
		a.statusMsg = string(msg)
		return a, nil

	case SwitchViewMsg:
		a.state = msg.view
		switch msg.view {
		case browserView:
			a.browser.Reload()
			return a, a.browser.Init()
		case selectionView:
			return a, a.selection.Init()
		}
	}

	var cmd tea.Cmd
	switch a.state {
	case browserView:
		cmd = a.browser.Update(msg)
	case selectionView:
		cmd = a.selection.Update(msg)
	}
	return a, cmd
}

func (a *App) View() string {
	var view string
	switch a.state {
	case browserView:
		view = a.browser.View()
	case selectionView:
		view = a.selection.View()
	}
	if a.statusMsg != "" {
		view += "\n" + statusStyle.Render(a.statusMsg)
	}
	return view
}

func status(msg string) tea.Cmd {
	return func() tea.Msg {
		return StatusMsg(msg)
	}
}

func switchTo(view sessionState) tea.Cmd {
	return func() tea.Msg {
		return SwitchViewMsg{view: view}
	}
}
