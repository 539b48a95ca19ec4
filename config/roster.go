package config

import (
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"
)

// ReadRoster decodes a player roster from CSV with the header
// name,color,left,right.
func ReadRoster(r io.Reader) ([]PlayerConfig, error) {
	var players []PlayerConfig
	if err := gocsv.Unmarshal(r, &players); err != nil {
		return nil, fmt.Errorf("decoding roster: %w", err)
	}
	if len(players) == 0 {
		return nil, ErrNoPlayers
	}
	return players, nil
}

// LoadRoster replaces the configured players with the roster in the CSV file at path.
func (c *Config) LoadRoster(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening roster: %w", err)
	}
	defer f.Close()

	players, err := ReadRoster(f)
	if err != nil {
		return err
	}
	c.Players = players
	return c.Finalize()
}
