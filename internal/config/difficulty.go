package config

import (
	"fmt"
	"math"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// speedStep is the per-step growth of unit speed and spawn rate.
const speedStep = 1.15

// ParsePreset converts a flag value into a preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	case "":
		return DifficultyEasy, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// Steps returns how many speed steps a preset applies.
func (p DifficultyPreset) Steps() int {
	switch p {
	case DifficultyNormal:
		return 1
	case DifficultyHard:
		return 2
	default:
		return 0
	}
}

// SpeedFactor scales unit speeds and aircraft spawn intervals.
type SpeedFactor struct {
	Steps int
}

// NewSpeedFactor returns the speed factor for a preset.
func NewSpeedFactor(p DifficultyPreset) SpeedFactor {
	return SpeedFactor{Steps: p.Steps()}
}

// Multiplier returns the speed multiplier.
func (f SpeedFactor) Multiplier() float64 {
	return 1.0 + 0.15*float64(f.Steps)
}

// Speed scales a unit speed.
func (f SpeedFactor) Speed(base float64) float64 {
	return base * f.Multiplier()
}

// Interval shortens an aircraft spawn interval.
func (f SpeedFactor) Interval(base float64) float64 {
	return base / math.Pow(speedStep, float64(f.Steps))
}

// ApplyPreset speeds up aircraft for a preset: their speed factor and spawn
// intervals. Equipment and the warship keep the base speeds.
func ApplyPreset(t *LevelTable, preset DifficultyPreset) {
	f := NewSpeedFactor(preset)
	if f.Steps == 0 {
		return
	}
	t.AircraftSpeedFactor = f.Multiplier()
	for i := range t.Levels {
		lvl := &t.Levels[i]
		lvl.AircraftInterval = Range{
			Min: f.Interval(lvl.AircraftInterval.Min),
			Max: f.Interval(lvl.AircraftInterval.Max),
		}
	}
}
