package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skytype/internal/core"
	"github.com/vovakirdan/skytype/internal/storage"
)

// scriptedGame replays a fixed sequence of states, one per Step.
type scriptedGame struct {
	states  []core.GameState
	changed []bool
	step    int
	frames  []core.InputFrame
	resets  int
	resized [2]int
}

func (g *scriptedGame) ID() string    { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }
func (g *scriptedGame) Reset(core.RuntimeConfig) {
	g.resets++
}
func (g *scriptedGame) Render(*core.Screen) {}

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	i := min(g.step, len(g.states)-1)
	g.step++
	changed := i < len(g.changed) && g.changed[i] && g.step <= len(g.states)
	return core.StepResult{State: g.states[i], PhaseChanged: changed}
}

func (g *scriptedGame) State() core.GameState {
	if g.step == 0 {
		return g.states[0]
	}
	return g.states[min(g.step-1, len(g.states)-1)]
}

func (g *scriptedGame) Resize(w, h int) { g.resized = [2]int{w, h} }

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKeyByPhase(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		name   string
		msg    tea.KeyMsg
		phase  string
		action core.Action
		r      rune
	}{
		{"letter while playing", runes("q"), "playing", core.ActionNone, 'q'},
		{"digit while playing", runes("7"), "playing", core.ActionNone, '7'},
		{"r while playing is typed", runes("r"), "playing", core.ActionNone, 'r'},
		{"space pauses", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, "playing", core.ActionPause, 0},
		{"esc cancels", tea.KeyMsg{Type: tea.KeyEsc}, "playing", core.ActionCancel, 0},
		{"enter confirms", tea.KeyMsg{Type: tea.KeyEnter}, "exiting", core.ActionConfirm, 0},
		{"r restarts after checkpoint", runes("r"), "checkpoint", core.ActionRestart, 0},
		{"q leaves after defeat", runes("q"), "failed", core.ActionBack, 0},
		{"b leaves after checkpoint", runes("b"), "checkpoint", core.ActionBack, 0},
		{"letters ignored when paused", runes("a"), "paused", core.ActionNone, 0},
		{"ctrl+c quits anywhere", tea.KeyMsg{Type: tea.KeyCtrlC}, "playing", core.ActionQuit, 0},
	}

	for _, tt := range tests {
		action, r := km.MapKey(tt.msg, tt.phase)
		if action != tt.action || r != tt.r {
			t.Errorf("%s: MapKey() = %v, %q, expected %v, %q", tt.name, action, r, tt.action, tt.r)
		}
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapKeyToFrame(runes("a"), "playing", &frame)
	km.MapKeyToFrame(runes("b"), "playing", &frame)
	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyEsc}, "playing", &frame)

	if string(frame.Chars) != "ab" {
		t.Errorf("Chars = %q, expected ab", string(frame.Chars))
	}
	if !frame.Has(core.ActionCancel) {
		t.Error("esc should set Cancel")
	}
	if !km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyCtrlC}, "playing", &frame) {
		t.Error("ctrl+c should report quit")
	}
}

func TestFrameTime(t *testing.T) {
	base := time.Unix(1000, 0)
	tests := []struct {
		last, now time.Time
		want      time.Duration
	}{
		{time.Time{}, base, 0},
		{base, base.Add(16 * time.Millisecond), 16 * time.Millisecond},
		{base, base.Add(3 * time.Second), maxFrame},
		{base, base.Add(-time.Second), 0},
	}
	for _, tt := range tests {
		if got := frameTime(tt.last, tt.now); got != tt.want {
			t.Errorf("frameTime() = %v, expected %v", got, tt.want)
		}
	}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "tui.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testRuntime() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = 1
	cfg.PlayerName = "ace"
	return cfg
}

func TestModelSavesProfileAndScore(t *testing.T) {
	store := openStore(t)
	game := &scriptedGame{
		states: []core.GameState{
			{Phase: "playing", Level: 1, Score: 5010, Earned: 10},
			{Phase: "failed", Level: 1, Score: 5040, Earned: 40, GameOver: true},
			{Phase: "failed", Level: 1, Score: 5040, Earned: 40, GameOver: true},
		},
		changed: []bool{false, true, false},
	}
	m := NewModel(game, store, testRuntime())
	m.Init()

	now := time.Unix(2000, 0)
	for i := range 3 {
		next, _ := m.handleTick(now.Add(time.Duration(i) * 16 * time.Millisecond))
		m = next.(Model)
	}

	p, ok, err := store.LoadPlayer("ace")
	if err != nil || !ok {
		t.Fatalf("profile not saved: ok %v err %v", ok, err)
	}
	if p.Score != 5040 {
		t.Errorf("profile score = %d, expected 5040", p.Score)
	}

	scores, _ := store.TopScores("scripted", 10)
	if len(scores) != 1 {
		t.Fatalf("scores = %d, expected exactly one per session end", len(scores))
	}
	if scores[0].Player != "ace" || scores[0].Score != 40 {
		t.Errorf("score = %+v, expected ace with the 40 earned this session", scores[0])
	}
}

func TestModelSkipsEmptySession(t *testing.T) {
	store := openStore(t)
	game := &scriptedGame{
		states:  []core.GameState{{Phase: "failed", Level: 3, Score: 5000, GameOver: true}},
		changed: []bool{true},
	}
	m := NewModel(game, store, testRuntime())

	next, _ := m.handleTick(time.Unix(2000, 0))
	m = next.(Model)

	scores, _ := store.TopScores("scripted", 10)
	if len(scores) != 0 {
		t.Errorf("scores = %+v, a session that earned nothing adds no row", scores)
	}
	if p, ok, _ := store.LoadPlayer("ace"); !ok || p.Score != 5000 {
		t.Errorf("profile = %+v ok %v, expected the restored 5000 kept", p, ok)
	}
}

func TestModelAutosave(t *testing.T) {
	store := openStore(t)
	game := &scriptedGame{states: []core.GameState{{Phase: "playing", Level: 2, Score: 2500}}}
	m := NewModel(game, store, testRuntime())
	m.saveEvery = 100 * time.Millisecond

	now := time.Unix(3000, 0)
	next, _ := m.handleTick(now)
	m = next.(Model)
	if _, ok, _ := store.LoadPlayer("ace"); ok {
		t.Fatal("profile saved before the interval elapsed")
	}

	next, _ = m.handleTick(now.Add(200 * time.Millisecond))
	m = next.(Model)
	p, ok, _ := store.LoadPlayer("ace")
	if !ok || p.Level != 2 {
		t.Errorf("autosave = %+v ok %v, expected level 2", p, ok)
	}
	if m.sinceSave != 0 {
		t.Errorf("sinceSave = %v, expected reset after saving", m.sinceSave)
	}
}

func TestModelTypedCharsReachGame(t *testing.T) {
	game := &scriptedGame{states: []core.GameState{{Phase: "playing", Level: 1}}}
	m := NewModel(game, nil, testRuntime())

	next, _ := m.handleTick(time.Unix(10, 0))
	m = next.(Model)
	next, _ = m.handleKey(runes("x"))
	m = next.(Model)
	next, _ = m.handleTick(time.Unix(10, 0).Add(50 * time.Millisecond))
	m = next.(Model)

	last := game.frames[len(game.frames)-1]
	if string(last.Chars) != "x" {
		t.Errorf("Chars = %q, expected x", string(last.Chars))
	}
	if last.Elapsed != 50*time.Millisecond {
		t.Errorf("Elapsed = %v, expected 50ms", last.Elapsed)
	}
	if len(m.inputFrame.Chars) != 0 {
		t.Error("input frame should be cleared after the tick")
	}
}

func TestModelExitReturnsToMenu(t *testing.T) {
	game := &scriptedGame{states: []core.GameState{{Phase: "failed", Level: 1, GameOver: true, Exit: true}}}
	m := NewModel(game, nil, testRuntime())

	next, cmd := m.handleTick(time.Unix(10, 0))
	m = next.(Model)
	if !m.BackToMenu() {
		t.Error("BackToMenu() should be set when the game exits")
	}
	if cmd == nil {
		t.Error("expected a quit command")
	}
}

func TestModelResizeUsesResizer(t *testing.T) {
	game := &scriptedGame{states: []core.GameState{{Phase: "playing", Level: 1}}}
	m := NewModel(game, nil, testRuntime())
	m.Init()

	next, _ := m.handleResize(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)

	if game.resized != [2]int{120, 40 - helpRows} {
		t.Errorf("Resize() got %v, expected 120x%d", game.resized, 40-helpRows)
	}
	if game.resets != 1 {
		t.Errorf("resets = %d, a resizable game must not be reset", game.resets)
	}
}
