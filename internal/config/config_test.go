package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultParses(t *testing.T) {
	cfg, err := ParseLevels(DefaultYAML())
	if err != nil {
		t.Fatalf("ParseLevels(embedded) error: %v", err)
	}
	if cfg.MaxLevel() != 5 {
		t.Errorf("MaxLevel() = %d, expected 5", cfg.MaxLevel())
	}
	if got := cfg.Level(1).AircraftQuota; got != 150 {
		t.Errorf("level 1 quota = %d, expected 150", got)
	}
	if got := len(cfg.Warship.Guns); got != 12 {
		t.Errorf("gun count = %d, expected 12", got)
	}
	if got := len(cfg.Level(5).Sentences); got != 10 {
		t.Errorf("level 5 sentences = %d, expected 10", got)
	}
}

func TestDefaultLevelTableValid(t *testing.T) {
	cfg := DefaultLevelTable()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultLevelTable().Validate() = %v", err)
	}

	embedded, err := ParseLevels(DefaultYAML())
	if err != nil {
		t.Fatal(err)
	}
	// Fallback tuning must match the embedded document.
	for n := 1; n <= cfg.MaxLevel(); n++ {
		a, b := cfg.Level(n), embedded.Level(n)
		if a.Speed != b.Speed || a.AircraftQuota != b.AircraftQuota || a.UpgradeScore != b.UpgradeScore {
			t.Errorf("level %d: fallback %+v differs from embedded %+v", n, a.Speed, b.Speed)
		}
	}
	if cfg.Player != embedded.Player {
		t.Errorf("player: fallback %+v, embedded %+v", cfg.Player, embedded.Player)
	}
}

func TestAlphabetIsCumulative(t *testing.T) {
	cfg := DefaultLevelTable()

	tests := []struct {
		level    int
		contains string
		size     int
	}{
		{1, "AZ", 26},
		{2, "09", 26 + 36},
		{3, "+;", 26 + 36 + 10},
		{4, "?)", 26 + 36 + 10 + 34},
		{5, "@'", 26 + 36 + 10 + 34 + 8},
	}

	for _, tc := range tests {
		got := cfg.Alphabet(tc.level)
		if len(got) != tc.size {
			t.Errorf("Alphabet(%d) size = %d, expected %d", tc.level, len(got), tc.size)
		}
		for _, r := range tc.contains {
			if !strings.ContainsRune(string(got), r) {
				t.Errorf("Alphabet(%d) missing %q", tc.level, r)
			}
		}
	}
}

func TestLevelPanicsOutOfRange(t *testing.T) {
	cfg := DefaultLevelTable()
	for _, n := range []int{0, 6, -1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Level(%d) should panic", n)
				}
			}()
			cfg.Level(n)
		}()
	}
}

func TestClampLevel(t *testing.T) {
	cfg := DefaultLevelTable()
	tests := []struct{ in, expected int }{
		{-3, 1}, {0, 1}, {1, 1}, {3, 3}, {5, 5}, {9, 5},
	}
	for _, tc := range tests {
		if got := cfg.ClampLevel(tc.in); got != tc.expected {
			t.Errorf("ClampLevel(%d) = %d, expected %d", tc.in, got, tc.expected)
		}
	}
}

func TestUpgradeThreshold(t *testing.T) {
	cfg := DefaultLevelTable()
	tests := []struct{ level, expected int }{
		{1, 2000},
		{2, 12000},
		{3, 40000},
		{4, 90000},
	}
	for _, tc := range tests {
		if got := cfg.UpgradeThreshold(tc.level); got != tc.expected {
			t.Errorf("UpgradeThreshold(%d) = %d, expected %d", tc.level, got, tc.expected)
		}
	}
}

func TestUpgradePercent(t *testing.T) {
	cfg := DefaultLevelTable()
	tests := []struct {
		name         string
		level, score int
		expected     float64
	}{
		{"fresh", 1, 0, 0},
		{"half of level 1", 1, 1000, 50},
		{"start of level 2", 2, 2000, 0},
		{"tenth of level 2", 2, 3000, 10},
		{"max level", 5, 12, 100},
		{"overflow is capped", 1, 5000, 100},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := cfg.UpgradePercent(tc.level, tc.score)
			if math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("UpgradePercent(%d, %d) = %v, expected %v", tc.level, tc.score, got, tc.expected)
			}
		})
	}
}

func TestGunCount(t *testing.T) {
	w := DefaultLevelTable().Warship
	tests := []struct {
		visible  float64
		expected int
	}{
		{0, 0},
		{80, 0},
		{138, 2},
		{300, 4},
		{340, 6},
		{480, 10},
		{495, 12},
		{5000, 12},
	}
	for _, tc := range tests {
		if got := w.GunCount(tc.visible); got != tc.expected {
			t.Errorf("GunCount(%v) = %d, expected %d", tc.visible, got, tc.expected)
		}
	}
}

func TestGunOffsetIsCenterRelative(t *testing.T) {
	w := DefaultLevelTable().Warship
	off := w.GunOffset(0)
	if off.X != 112-259 || off.Y != 52-90.5 {
		t.Errorf("GunOffset(0) = %+v, expected {-147 -38.5}", off)
	}
	c := w.CannonOffset()
	if c.X != 330.5-259 || c.Y != 0 {
		t.Errorf("CannonOffset() = %+v, expected {71.5 0}", c)
	}
}

func TestLaneCount(t *testing.T) {
	tests := []struct {
		name     string
		lanes    LaneConfig
		height   float64
		expected int
	}{
		{"exact fit", LaneConfig{Height: 40}, 400, 10},
		{"partial lane dropped", LaneConfig{Height: 40}, 439, 10},
		{"top offset", LaneConfig{Height: 40, TopOffset: 100}, 400, 7},
		{"capped", LaneConfig{Height: 40, MaxCount: 4}, 400, 4},
		{"too small", LaneConfig{Height: 40, TopOffset: 100}, 50, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.lanes.Count(tc.height); got != tc.expected {
				t.Errorf("Count(%v) = %d, expected %d", tc.height, got, tc.expected)
			}
		})
	}

	l := LaneConfig{Height: 40, TopOffset: 10}
	if got := l.Position(2); got != 110 {
		t.Errorf("Position(2) = %v, expected 110", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*LevelTable)
		want   error
	}{
		{"no levels", func(c *LevelTable) { c.Levels = nil }, ErrNoLevels},
		{"inverted speed", func(c *LevelTable) { c.Levels[0].Speed = Range{Min: 10, Max: 5} }, ErrBadRange},
		{"negative interval", func(c *LevelTable) { c.Levels[2].BombInterval = Range{Min: -1, Max: 5} }, ErrBadRange},
		{"no sentences", func(c *LevelTable) { c.Levels[1].Sentences = nil }, ErrNoSentences},
		{"blank sentence", func(c *LevelTable) { c.Levels[1].Sentences = []string{"   "} }, ErrNoSentences},
		{"no letters", func(c *LevelTable) { c.Levels[0].Letters = "" }, ErrNoLetters},
		{"zero quota", func(c *LevelTable) { c.Levels[0].AircraftQuota = 0 }, ErrBadRange},
		{"gun table mismatch", func(c *LevelTable) { c.Warship.GunSteps = []int{2} }, ErrBadRange},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultLevelTable()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tc.want) {
				t.Errorf("Validate() = %v, expected %v", err, tc.want)
			}
		})
	}
}

func TestLoadLevelsCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "levels.yaml")
	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault() error: %v", err)
	}

	cfg, err := LoadLevels(path)
	if err != nil {
		t.Fatalf("LoadLevels() error: %v", err)
	}
	if cfg.MaxLevel() != 5 {
		t.Errorf("MaxLevel() = %d, expected 5", cfg.MaxLevel())
	}

	// A second write must not clobber the file.
	if err := WriteDefault(path); err == nil {
		t.Error("WriteDefault() over an existing file should fail")
	}
}

func TestLoadLevelsCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadLevels(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadLevels(missing) should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("levels: []\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadLevels(bad); !errors.Is(err, ErrNoLevels) {
		t.Errorf("LoadLevels(empty levels) = %v, expected ErrNoLevels", err)
	}
}

func TestLoadLevelsFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadLevels("")
	if err != nil {
		t.Fatalf("LoadLevels(\"\") error: %v", err)
	}
	if len(cfg.Level(1).Sentences) != 10 {
		t.Errorf("expected embedded sentences, got %d", len(cfg.Level(1).Sentences))
	}
}
