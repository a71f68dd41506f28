package config

import (
	_ "embed"
)

//go:embed defaults/levels.yaml
var defaultLevelsYAML []byte

// DefaultLevelTable returns the built-in level table. It is used when the
// embedded YAML cannot be parsed.
func DefaultLevelTable() LevelTable {
	return LevelTable{
		Player: PlayerConfig{
			MaxHealth:         100,
			HealAmount:        10,
			ShieldSeconds:     30,
			HitRadius:         30,
			ShieldedHitRadius: 80,
			Margin:            40,
			Size:              50,
			SafetyGap:         60,
		},
		Projectiles: ProjectileConfig{
			MissileSpeed: 1000,
			FlameSpeed:   500,
			FlameDamage:  1,
			CannonSpeed:  300,
			CannonDamage: 5,
		},
		Lanes: LaneConfig{
			Height:   40,
			MaxCount: 64,
		},
		Warship: WarshipConfig{
			Width:        518,
			Height:       181,
			EntryVisible: 80,
			SpeedFactor:  0.45,
			Guns: []Point{
				{112, 52}, {112, 130},
				{228, 25}, {228, 157.5},
				{312, 8.5}, {312, 174.5},
				{435, 66.5}, {435, 115},
				{435, 72}, {435, 109.5},
				{469.5, 40}, {469.5, 143},
			},
			GunReveal:      []float64{138, 255, 340, 464, 495},
			GunSteps:       []int{2, 4, 6, 10, 12},
			Cannon:         Point{330.5, 90.5},
			CannonReveal:   396,
			VolleySize:     5,
			BonusScore:     100,
			SpawnDelay:     1,
			CheckpointWait: 1.5,
		},
		Timing: TimingConfig{
			SplashSeconds: 4,
			SaveSeconds:   10,
		},
		Levels: []LevelConfig{
			{
				Letters:            "ABCDEFGHIJKLMNOPQRSTUVWXYZ",
				Sentences:          []string{"well done", "excuse me", "my best friend", "Thank you"},
				Speed:              Range{50, 80},
				AircraftInterval:   Range{3, 5},
				BombInterval:       Range{150, 200},
				ShieldInterval:     Range{150, 200},
				HealthPackInterval: Range{150, 200},
				AircraftQuota:      150,
				UpgradeScore:       2000,
				WarshipReload:      4,
				WarshipVolley:      0.3,
			},
			{
				Letters:            "1234567890ABCDEFGHIJKLMNOPQRSTUVWXYZ",
				Sentences:          []string{"Knowledge is power", "Kind words cost nothing", "Hope is a waking dream"},
				Speed:              Range{80, 110},
				AircraftInterval:   Range{1.5, 3},
				BombInterval:       Range{200, 250},
				ShieldInterval:     Range{200, 250},
				HealthPackInterval: Range{200, 250},
				AircraftQuota:      300,
				UpgradeScore:       10000,
				WarshipReload:      3,
				WarshipVolley:      0.2,
			},
			{
				Letters:            "+-*/:=%,.;",
				Sentences:          []string{"The dog sleeps on the sofa", "I write a story about my dream"},
				Speed:              Range{120, 150},
				AircraftInterval:   Range{1, 1.5},
				BombInterval:       Range{250, 300},
				ShieldInterval:     Range{250, 300},
				HealthPackInterval: Range{250, 300},
				AircraftQuota:      400,
				UpgradeScore:       28000,
				WarshipReload:      2,
				WarshipVolley:      0.15,
			},
			{
				Letters:            "?\"{}#!()ABCDEFGHIJKLMNOPQRSTUVWXYZ",
				Sentences:          []string{"Honesty is the best policy", "Where there is love, there is life"},
				Speed:              Range{150, 180},
				AircraftInterval:   Range{0.8, 1},
				BombInterval:       Range{300, 400},
				ShieldInterval:     Range{300, 400},
				HealthPackInterval: Range{300, 400},
				AircraftQuota:      500,
				UpgradeScore:       50000,
				WarshipReload:      1,
				WarshipVolley:      0.08,
			},
			{
				Letters:            "[]<>@_|'",
				Sentences:          []string{"Light follows the darkest night", "Every flower blooms in its own time"},
				Speed:              Range{180, 220},
				AircraftInterval:   Range{0.3, 1},
				BombInterval:       Range{400, 500},
				ShieldInterval:     Range{400, 500},
				HealthPackInterval: Range{400, 500},
				AircraftQuota:      600,
				WarshipReload:      0.5,
				WarshipVolley:      0.04,
			},
		},
	}
}

// DefaultYAML returns the embedded default level table document.
func DefaultYAML() []byte {
	return defaultLevelsYAML
}
