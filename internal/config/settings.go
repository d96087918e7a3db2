package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment keys read by LoadSettings.
const (
	EnvSeed    = "WAVE_SEED"
	EnvTPS     = "WAVE_TPS"
	EnvCatalog = "WAVE_CATALOG"
	EnvSkin    = "WAVE_SKIN"
	EnvWeapon  = "WAVE_WEAPON"
	EnvAudio   = "WAVE_AUDIO"
	EnvReplay  = "WAVE_REPLAY"
	EnvOwned   = "WAVE_OWNED"
)

// Settings are host-side knobs; none of them change the simulation rules.
type Settings struct {
	Seed        int64    // 0 picks a time-based seed
	TPS         int      // host tick rate
	CatalogPath string   // optional catalog override, empty uses the embedded one
	Skin        string   // preselected skin id
	Weapon      string   // preselected weapon id
	Audio       bool     // play sound cues
	ReplayPath  string   // when set, runs are recorded to this file
	Owned       []string // asset ids the host reports as owned
}

// DefaultSettings returns settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		TPS:    TicksPerSecond,
		Skin:   "default",
		Weapon: "starter-pistol",
		Audio:  true,
	}
}

// LoadSettings loads the given dotenv files (".env" when none are given) into the
// process environment and then reads the WAVE_* variables. Missing files are skipped;
// variables already present in the environment win over file values.
func LoadSettings(files ...string) (Settings, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return Settings{}, fmt.Errorf("failed to load env file %s: %w", f, err)
		}
	}
	return settingsFromEnv()
}

func settingsFromEnv() (Settings, error) {
	s := DefaultSettings()

	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Settings{}, fmt.Errorf("invalid %s: %w", EnvSeed, err)
		}
		s.Seed = seed
	}
	if v := os.Getenv(EnvTPS); v != "" {
		tps, err := strconv.Atoi(v)
		if err != nil {
			return Settings{}, fmt.Errorf("invalid %s: %w", EnvTPS, err)
		}
		if tps < 1 {
			tps = 1
		}
		s.TPS = tps
	}
	if v := os.Getenv(EnvAudio); v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return Settings{}, fmt.Errorf("invalid %s: %w", EnvAudio, err)
		}
		s.Audio = on
	}
	if v := os.Getenv(EnvCatalog); v != "" {
		s.CatalogPath = v
	}
	if v := os.Getenv(EnvSkin); v != "" {
		s.Skin = v
	}
	if v := os.Getenv(EnvWeapon); v != "" {
		s.Weapon = v
	}
	if v := os.Getenv(EnvReplay); v != "" {
		s.ReplayPath = v
	}
	if v := os.Getenv(EnvOwned); v != "" {
		for _, id := range strings.Split(v, ",") {
			if id = strings.TrimSpace(id); id != "" {
				s.Owned = append(s.Owned, id)
			}
		}
	}
	return s, nil
}

// TickMs is the simulation step the host should pass to the engine.
func (s Settings) TickMs() float64 {
	if s.TPS < 1 {
		return 1000.0 / TicksPerSecond
	}
	return 1000.0 / float64(s.TPS)
}
