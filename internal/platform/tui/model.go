package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skytype/internal/core"
	"github.com/vovakirdan/skytype/internal/registry"
	"github.com/vovakirdan/skytype/internal/storage"
)

// helpRows is the space reserved under the game for the key help line.
const helpRows = 1

// defaultSaveInterval applies to games that do not implement registry.Autosaver.
const defaultSaveInterval = 10 * time.Second

// Model is the Bubble Tea model for running one game session.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	help       help.Model
	palette    *Palette

	lastTick   time.Time
	sinceSave  time.Duration
	saveEvery  time.Duration
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for the current session end
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, gameHeight(cfg.ScreenH)),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		help:       h,
		palette:    NewPalette(nil),
		saveEvery:  defaultSaveInterval,
	}
}

// gameHeight is the part of the terminal handed to the game.
func gameHeight(screenH int) int {
	return max(screenH-helpRows, 1)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	cfg := m.config
	cfg.ScreenH = gameHeight(cfg.ScreenH)
	m.game.Reset(cfg)
	// Note: gameState will be set on first tick (value receiver limitation)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	phase := m.gameState.Phase
	if phase == "" {
		phase = m.game.State().Phase
	}
	if m.keyMapper.MapKeyToFrame(msg, phase, &m.inputFrame) {
		m.saveProfile()
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize adapts the game to the new window without ending the session.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, gameHeight(msg.Height))
	m.help.Width = msg.Width

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, gameHeight(msg.Height))
		return m, nil
	}

	if !m.gameState.GameOver {
		cfg := m.config
		cfg.ScreenH = gameHeight(cfg.ScreenH)
		m.game.Reset(cfg)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.inputFrame.Elapsed = frameTime(m.lastTick, now)
	m.lastTick = now

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if result.PhaseChanged {
		m.saveProfile()
	} else if m.gameState.Phase == "playing" {
		m.sinceSave += m.inputFrame.Elapsed
		if m.sinceSave >= m.saveInterval() {
			m.saveProfile()
		}
	}

	// Save the session's earnings on session end (once)
	switch {
	case m.gameState.GameOver && !m.scoreSaved:
		if m.store != nil && m.gameState.Earned > 0 {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveScore(m.game.ID(), m.config.PlayerName, m.gameState.Earned, m.gameState.Level)
		}
		m.scoreSaved = true
	case !m.gameState.GameOver:
		m.scoreSaved = false
	}

	m.inputFrame.Clear()

	if m.gameState.Exit {
		m.saveProfile()
		m.backToMenu = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// saveInterval returns the autosave period for the current game.
func (m *Model) saveInterval() time.Duration {
	if a, ok := m.game.(registry.Autosaver); ok {
		if d := a.SaveInterval(); d > 0 {
			return d
		}
	}
	return m.saveEvery
}

// saveProfile persists the player's level and score.
func (m *Model) saveProfile() {
	m.sinceSave = 0
	if m.store == nil || m.config.PlayerName == "" {
		return
	}
	state := m.game.State()
	if state.Level == 0 {
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SavePlayer(storage.Profile{
		Name:  m.config.PlayerName,
		Level: state.Level,
		Score: state.Score,
	})
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".skytype", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)

	return m.palette.RenderScreen(m.screen) + "\n" + m.help.View(m.keyMapper.Keys())
}

// IsQuitting returns true if the user asked to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the game asked to return to the outer menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run plays one session of game and returns when the player leaves it.
// The returned state is the last one observed.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) (Model, error) {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return model, err
	}
	if fm, ok := final.(Model); ok {
		return fm, nil
	}
	return model, nil
}
