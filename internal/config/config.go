// Package config loads process settings from .env files and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"jrpg-battle/internal/party"
)

// Server configures the SSH game server.
type Server struct {
	Addr        string        `env:"BATTLE_ADDR" envDefault:":2222"`
	Port        string        `env:"PORT"` // overrides the port of Addr when set
	HostKey     string        `env:"BATTLE_HOST_KEY" envDefault:"host_key"`
	CatalogDir  string        `env:"BATTLE_CATALOG_DIR"` // empty uses the built-in catalog
	Seed        int64         `env:"BATTLE_SEED"`        // 0 seeds each session randomly
	LeaderClass party.Class   `env:"BATTLE_LEADER_CLASS" envDefault:"FIGHTER"`
	IdleTimeout time.Duration `env:"BATTLE_IDLE_TIMEOUT" envDefault:"30m"`
}

// ListenAddr is Addr with the PORT override applied.
func (s Server) ListenAddr() string {
	if s.Port != "" {
		return ":" + s.Port
	}
	return s.Addr
}

// Sim configures the battle simulator.
type Sim struct {
	Addr       string `env:"BATTLESIM_ADDR" envDefault:":8080"`
	CatalogDir string `env:"BATTLE_CATALOG_DIR"`
	GinMode    string `env:"GIN_MODE" envDefault:"release"`
}

// Load reads the given .env files, skipping missing ones, then parses
// the environment into target. Variables already set win over the files.
func Load(target any, envFiles ...string) error {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return ParseEnv(target)
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
