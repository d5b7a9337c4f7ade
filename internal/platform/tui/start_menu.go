package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// maxStartLevel caps the start-level selector.
const maxStartLevel = 10

// StartSelection holds the user's choice from the start menu.
type StartSelection struct {
	Level int // 1-10
}

// StartMenuModel lets users pick a starting level before the game begins.
type StartMenuModel struct {
	cursor    int // 0-indexed; level = cursor + 1
	width     int
	height    int
	keyMapper *KeyMapper
	selection StartSelection
	choosing  bool
	quitting  bool
}

// NewStartMenuModel creates the start-level selection model.
func NewStartMenuModel(width, height int) StartMenuModel {
	return StartMenuModel{
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m StartMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m StartMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m StartMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		m.cursor = core.Max(0, m.cursor-1)
	case MenuActionDown:
		m.cursor = core.Min(maxStartLevel-1, m.cursor+1)
	case MenuActionSelect:
		m.choosing = false
		m.selection = StartSelection{Level: m.cursor + 1}
		return m, tea.Quit
	}

	return m, nil
}

// View renders the level selection.
func (m StartMenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("T E T R I S", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select starting level:", m.width))
	b.WriteString("\n\n")

	for i := 0; i < maxStartLevel; i++ {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%sLevel %2d", cursor, i+1), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m StartMenuModel) Selected() *StartSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m StartMenuModel) IsQuitting() bool {
	return m.quitting
}

// RunStartMenu runs the start-level selection. A nil selection means the
// user quit instead of choosing.
func RunStartMenu(cfg core.RuntimeConfig) (*StartSelection, error) {
	model := NewStartMenuModel(cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(StartMenuModel)
	if !ok || m.IsQuitting() {
		return nil, nil
	}

	return m.Selected(), nil
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}
