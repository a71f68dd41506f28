package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/skytype/internal/core"
	"github.com/vovakirdan/skytype/internal/registry"
	"github.com/vovakirdan/skytype/internal/storage"
)

// menuStage is the screen the menu is showing.
type menuStage int

const (
	stagePilots  menuStage = iota // choose or manage a profile
	stageNewName                  // type a new profile name
	stageModes                    // choose a game mode
)

// pilotItem is a profile row in the picker list.
type pilotItem struct {
	profile storage.Profile
}

func (i pilotItem) Title() string { return i.profile.Name }
func (i pilotItem) Description() string {
	return fmt.Sprintf("Level %d  Score %d", i.profile.Level, i.profile.Score)
}
func (i pilotItem) FilterValue() string { return i.profile.Name }

// MenuItem represents a selectable game mode in the menu.
type MenuItem struct {
	GameID string
	Title  string
}

// MenuModel is the Bubble Tea model for the pilot and mode picker.
type MenuModel struct {
	stage     menuStage
	pilots    list.Model
	nameInput textinput.Model
	items     []MenuItem
	cursor    int
	width     int
	height    int
	store     *storage.Store
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	status    string
	locked    bool // pilot fixed by the caller, e.g. the SSH user

	quitting       bool
	selected       *MenuItem // Set when user selects a mode
	openScoreboard bool      // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a new menu model. A non-empty cfg.PlayerName skips
// the pilot picker.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	for _, g := range games {
		items = append(items, MenuItem{GameID: g.ID, Title: g.Title})
	}

	delegate := list.NewDefaultDelegate()
	pilots := list.New(nil, delegate, cfg.ScreenW, max(cfg.ScreenH-4, 5))
	pilots.Title = "Pilots"
	pilots.SetShowHelp(false)
	pilots.DisableQuitKeybindings()

	input := textinput.New()
	input.Placeholder = "pilot name"
	input.CharLimit = storage.MaxNameLen
	input.Width = storage.MaxNameLen

	m := MenuModel{
		stage:     stagePilots,
		pilots:    pilots,
		nameInput: input,
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
	m.reloadPilots()

	if cfg.PlayerName != "" {
		if err := m.choosePilot(cfg.PlayerName); err == nil {
			m.stage = stageModes
		}
	}
	return m
}

// reloadPilots refreshes the picker from storage.
func (m *MenuModel) reloadPilots() {
	if m.store == nil {
		return
	}
	players, err := m.store.ListPlayers()
	if err != nil {
		m.status = err.Error()
		return
	}
	items := make([]list.Item, len(players))
	for i, p := range players {
		items[i] = pilotItem{profile: p}
	}
	m.pilots.SetItems(items)
}

// choosePilot loads or creates the named profile and makes it current.
func (m *MenuModel) choosePilot(name string) error {
	name, err := storage.NormalizeName(name)
	if err != nil {
		return err
	}
	profile := storage.Profile{Name: name, Level: 1}
	if m.store != nil {
		if profile, err = m.store.LoadOrCreatePlayer(name); err != nil {
			return err
		}
	}
	m.config.PlayerName = profile.Name
	m.config.PlayerLevel = profile.Level
	m.config.PlayerScore = profile.Score
	return nil
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		switch m.stage {
		case stagePilots:
			return m.updatePilots(msg)
		case stageNewName:
			return m.updateNewName(msg)
		default:
			return m.handleKey(msg)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.pilots.SetSize(msg.Width, max(msg.Height-4, 5))
		return m, nil
	}

	if m.stage == stageNewName {
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// updatePilots handles keys on the profile list.
func (m MenuModel) updatePilots(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.pilots.FilterState() == list.Filtering {
		m.pilots, cmd = m.pilots.Update(msg)
		return m, cmd
	}

	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionSelect:
		item, ok := m.pilots.SelectedItem().(pilotItem)
		if !ok {
			return m.startNewName()
		}
		if err := m.choosePilot(item.profile.Name); err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.stage = stageModes
		m.status = ""
		return m, nil

	case MenuActionNew:
		return m.startNewName()

	case MenuActionDelete:
		item, ok := m.pilots.SelectedItem().(pilotItem)
		if ok && m.store != nil {
			if err := m.store.DeletePlayer(item.profile.Name); err != nil {
				m.status = err.Error()
			} else {
				m.pilots.RemoveItem(m.pilots.Index())
				m.status = fmt.Sprintf("Deleted %s", item.profile.Name)
			}
		}
		return m, nil

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	m.pilots, cmd = m.pilots.Update(msg)
	return m, cmd
}

// startNewName switches to the name prompt.
func (m MenuModel) startNewName() (tea.Model, tea.Cmd) {
	m.stage = stageNewName
	m.status = ""
	m.nameInput.Reset()
	return m, tea.Batch(m.nameInput.Focus(), textinput.Blink)
}

// updateNewName handles keys on the name prompt.
func (m MenuModel) updateNewName(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.nameInput.Blur()
		m.stage = stagePilots
		return m, nil
	case "enter":
		err := m.choosePilot(m.nameInput.Value())
		if errors.Is(err, storage.ErrInvalidName) {
			m.status = fmt.Sprintf("Name must be 1-%d characters", storage.MaxNameLen)
			return m, nil
		}
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.nameInput.Blur()
		m.reloadPilots()
		m.stage = stageModes
		m.status = ""
		return m, nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

// handleKey processes keyboard input for mode navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionBack:
		if m.locked {
			return m, nil
		}
		m.reloadPilots()
		m.stage = stagePilots
		m.config.PlayerName = ""

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start game
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit // Exit menu to show scoreboard
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := "  S K Y T Y P E  "
	b.WriteString("\n")
	b.WriteString(centerText(title, m.width))
	b.WriteString("\n\n")

	switch m.stage {
	case stagePilots:
		b.WriteString(m.pilots.View())
		b.WriteString("\n")
		b.WriteString(centerText("Enter: Fly  |  N: New pilot  |  X: Delete  |  /: Filter  |  Tab: Scores  |  Q: Quit", m.width))

	case stageNewName:
		b.WriteString(centerText("New pilot", m.width))
		b.WriteString("\n\n")
		b.WriteString(centerText(m.nameInput.View(), m.width))
		b.WriteString("\n\n")
		b.WriteString(centerText("Enter: Create  |  Esc: Back", m.width))

	default:
		pilot := fmt.Sprintf("Pilot %s  Level %d  Score %d",
			m.config.PlayerName, m.config.PlayerLevel, m.config.PlayerScore)
		b.WriteString(centerText(pilot, m.width))
		b.WriteString("\n\n")

		for i, item := range m.items {
			cursor := "  "
			if i == m.cursor {
				cursor = "> "
			}
			b.WriteString(centerText(cursor+item.Title, m.width))
			b.WriteString("\n")
		}

		b.WriteString("\n")
		controls := "Up/Down: Navigate  |  Enter: Select  |  B: Pilots  |  Tab: Scores  |  Q: Quit"
		if m.locked {
			controls = "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
		}
		b.WriteString(centerText(controls, m.width))
	}
	b.WriteString("\n")

	if m.status != "" {
		statusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
		b.WriteString("\n")
		b.WriteString(centerText(statusStyle.Render(m.status), m.width))
		b.WriteString("\n")
	}

	return b.String()
}

// newLockedMenuModel creates a menu that always flies as the named pilot.
func newLockedMenuModel(store *storage.Store, cfg core.RuntimeConfig, pilot string) (MenuModel, error) {
	cfg.PlayerName = pilot
	m := NewMenuModel(store, cfg)
	if m.stage != stageModes {
		return m, fmt.Errorf("tui: cannot fly as %q: %w", pilot, storage.ErrInvalidName)
	}
	m.locked = true
	return m, nil
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config with the chosen profile.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Config: m.Config(),
	}

	if m.WantsScoreboard() {
		result.WantsScoreboard = true
		return result, nil
	}

	if m.IsQuitting() {
		result.Quit = true
		return result, nil
	}

	if m.Selected() != nil {
		result.GameID = m.Selected().GameID
	} else {
		result.Quit = true
	}

	return result, nil
}
