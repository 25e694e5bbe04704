package game

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the gameplay tuning. Zero values are not meaningful; start
// from DefaultConfig.
type Config struct {
	Seed int64

	// Fireflies.
	MaxFireflies        int     // live population cap
	SpawnChancePct      int     // chance per frame to spawn while under the cap
	FireflySpeed        float64 // pixels per frame
	CacheThreshold      int     // frames a nearest-target lookup may be reused
	AttractionRadius    float64 // pixels
	WanderJitterDeg     int     // max heading perturbation per frame while wandering
	BounceSpreadDeg     int     // random spread added to a wall deflection
	TrailChance         int     // 1-in-N chance of a trail particle per frame
	FlashChance         int     // 1-in-N chance of a flash burst per frame
	FireflyParticles    int     // per-firefly pool capacity
	AmbientParticles    int     // shared pool capacity
	CollectionBurstMin  int
	CollectionBurstMax  int
	CollectionBurstLife uint8

	// Players.
	PadDeadzone      float64 // magnitude below this is treated as no input
	MoveThreshold    float64 // magnitude needed to move
	PlayerSpeed      float64 // pixels per frame per unit of pad magnitude
	FlashlightFactor float64 // speed multiplier while the light is on
	AttractionLength float64 // distance of the attraction target ahead of the lamp
	CameraSmoothness float64

	WinPoints int

	// Ambient.
	LogFile string
	Debug   bool
}

// DefaultConfig returns the tuning the game ships with.
func DefaultConfig() Config {
	return Config{
		Seed:                1,
		MaxFireflies:        20,
		SpawnChancePct:      10,
		FireflySpeed:        1.0,
		CacheThreshold:      5,
		AttractionRadius:    60,
		WanderJitterDeg:     5,
		BounceSpreadDeg:     120,
		TrailChance:         3,
		FlashChance:         40,
		FireflyParticles:    20,
		AmbientParticles:    200,
		CollectionBurstMin:  30,
		CollectionBurstMax:  40,
		CollectionBurstLife: 8,
		PadDeadzone:         1,
		MoveThreshold:       100,
		PlayerSpeed:         0.002,
		FlashlightFactor:    0.4,
		AttractionLength:    20,
		CameraSmoothness:    0.2,
		WinPoints:           20,
		LogFile:             "lampy.log",
	}
}

// Environment variables read by LoadConfig.
const (
	EnvSeed         = "LAMPY_SEED"
	EnvMaxFireflies = "LAMPY_MAX_FIREFLIES"
	EnvWinPoints    = "LAMPY_WIN_POINTS"
	EnvLogFile      = "LAMPY_LOG_FILE"
	EnvDebug        = "LAMPY_DEBUG"
)

// LoadConfig starts from DefaultConfig, loads envFile if it exists and then
// applies LAMPY_* variables from the process environment. A missing envFile
// is not an error.
func LoadConfig(envFile string) (Config, error) {
	cfg := DefaultConfig()
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("load %s: %w", envFile, err)
		}
	}
	if err := envInt64(EnvSeed, &cfg.Seed); err != nil {
		return cfg, err
	}
	if err := envInt(EnvMaxFireflies, &cfg.MaxFireflies); err != nil {
		return cfg, err
	}
	if err := envInt(EnvWinPoints, &cfg.WinPoints); err != nil {
		return cfg, err
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv(EnvDebug); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvDebug, err)
		}
		cfg.Debug = b
	}
	return cfg, cfg.Validate()
}

// Validate rejects tuning that would break the simulation invariants.
func (c Config) Validate() error {
	switch {
	case c.MaxFireflies < 0:
		return fmt.Errorf("max fireflies must be >= 0, got %d", c.MaxFireflies)
	case c.CacheThreshold < 0:
		return fmt.Errorf("cache threshold must be >= 0, got %d", c.CacheThreshold)
	case c.WinPoints <= 0:
		return fmt.Errorf("win points must be > 0, got %d", c.WinPoints)
	case c.FireflyParticles < 0 || c.AmbientParticles < 0:
		return fmt.Errorf("particle pool sizes must be >= 0")
	}
	return nil
}

func envInt(key string, dst *int) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}

func envInt64(key string, dst *int64) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}
