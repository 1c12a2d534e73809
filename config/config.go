package config

import "image/color"

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int

	// MaxDelta caps the real frame delta fed to the simulation (seconds)
	MaxDelta float64
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	TileSize  float64
	Gravity   float64 // velocity units per frame, scaled by TimeScale*dt
	TimeScale float64 // converts seconds into 60Hz frames
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	MoveSpeed      float64
	JumpPower      float64 // magnitude of the upward impulse
	StompTolerance float64 // pixels above the enemy top that still count as a stomp
	StompBonus     int
	InvincibleTime float64 // seconds after losing the grown state
	FlickerRate    float64 // visibility toggles per second while invincible
	StartingLives  int

	CollisionWidth  float64
	CollisionHeight float64
}

// EnemyConfig contains configuration shared by every enemy kind
type EnemyConfig struct {
	PatrolSpeed   float64
	SwimAmplitude float64
	SwimFrequency float64
	AnimationRate float64 // seconds per walk frame

	CollisionWidth  float64
	CollisionHeight float64
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 // fraction of the remaining distance covered per frame
}

// LevelConfig contains level session and progression values
type LevelConfig struct {
	Rows           int
	Cols           int
	Worlds         int
	LevelsPerWorld int

	TimeLimit   float64 // seconds
	EndMargin   float64 // pixels from the right edge that trigger the end sequence
	EndDuration float64 // seconds

	DefaultSpawnX float64
	DefaultSpawnY float64

	PowerUpScore int
	CoinScore    int
}

// Band is an inclusive integer range
type Band struct {
	Min, Max int
}

// GeneratorConfig describes the procedural level layout
type GeneratorConfig struct {
	GroundRow int

	PlatformBase   int // platforms per level = PlatformBase + level
	PlatformRows   Band
	PlatformCol    Band // offset band, advanced by PlatformStride per platform
	PlatformStride int
	PlatformLength Band

	PipeBase   int // pipes per level = PipeBase + level/2
	PipeCol    Band
	PipeStride int
	PipeHeight Band

	BlockBase   int
	BlockRows   Band
	BlockCol    Band
	BlockStride int

	EnemyBase   int
	EnemyCol    Band
	EnemyStride int

	StartCol int
	FlagCol  int
}

// ScreensConfig contains timed screen durations
type ScreensConfig struct {
	GameOverDuration float64
	WinDuration      float64
	TitleLogoDrop    float64 // seconds for the logo to reach its resting place
	BlinkRate        float64
}

// EditorConfig contains editor layout values
type EditorConfig struct {
	OverworldTileSize int
	OverworldPanSpeed float64
	LevelPanSpeed     float64
	DefaultLevelID    string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu      bool // Skip menu and go directly to world 1-1
	DrawColliders bool
	Seed          int64 // generator seed, 0 picks one from the clock
	DataDir       string
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Player PlayerConfig
var Enemy EnemyConfig
var Camera CameraConfig
var Level LevelConfig
var Generator GeneratorConfig
var Screens ScreensConfig
var Editor EditorConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Direction constants for facing and patrol
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:    600,
		Height:   400,
		TPS:      60,
		MaxDelta: 0.05,
	}

	Physics = PhysicsConfig{
		TileSize:  16,
		Gravity:   0.5,
		TimeScale: 60,
	}

	Player = PlayerConfig{
		MoveSpeed:      2,
		JumpPower:      5,
		StompTolerance: 5,
		StompBonus:     100,
		InvincibleTime: 2,
		FlickerRate:    10,
		StartingLives:  3,

		CollisionWidth:  16,
		CollisionHeight: 16,
	}

	Enemy = EnemyConfig{
		PatrolSpeed:   0.5,
		SwimAmplitude: 0.5,
		SwimFrequency: 5,
		AnimationRate: 0.2,

		CollisionWidth:  16,
		CollisionHeight: 16,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.1,
	}

	Level = LevelConfig{
		Rows:           20,
		Cols:           100,
		Worlds:         8,
		LevelsPerWorld: 4,

		TimeLimit:   300,
		EndMargin:   100,
		EndDuration: 3,

		DefaultSpawnX: 50,
		DefaultSpawnY: 100,

		PowerUpScore: 1000,
		CoinScore:    200,
	}

	Generator = GeneratorConfig{
		GroundRow: 15,

		PlatformBase:   5,
		PlatformRows:   Band{8, 12},
		PlatformCol:    Band{10, 15},
		PlatformStride: 20,
		PlatformLength: Band{4, 8},

		PipeBase:   2,
		PipeCol:    Band{20, 25},
		PipeStride: 30,
		PipeHeight: Band{2, 4},

		BlockBase:   8,
		BlockRows:   Band{5, 10},
		BlockCol:    Band{5, 8},
		BlockStride: 10,

		EnemyBase:   5,
		EnemyCol:    Band{20, 25},
		EnemyStride: 15,

		StartCol: 5,
		FlagCol:  95,
	}

	Screens = ScreensConfig{
		GameOverDuration: 3,
		WinDuration:      5,
		TitleLogoDrop:    1.5,
		BlinkRate:        10,
	}

	Editor = EditorConfig{
		OverworldTileSize: 24,
		OverworldPanSpeed: 5,
		LevelPanSpeed:     10,
		DefaultLevelID:    "1-1",
	}

	Debug = DebugConfig{
		SkipMenu: false,
		DataDir:  ".",
	}
}
