package assembly

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config specifies all run-level generation parameters loaded from a
// YAML file. Options are domain knobs the assembler consumes directly;
// the remaining fields are resolved by the CLI before the assembler runs.
type Config struct {
	// Seed is the master seed. 0 means "draw a random 9-digit seed".
	Seed uint64 `yaml:"seed" json:"seed"`

	// ForceSeed, if true, overrides Seed with the fixed value 1337 —
	// used for reproducing the worked examples in testing/support.
	ForceSeed bool `yaml:"forceSeed" json:"forceSeed"`

	// TilesetDir is the directory LoadTileset classifies into
	// start/cap/ordinary pools.
	TilesetDir string `yaml:"tilesetDir" json:"tilesetDir"`

	Options Options `yaml:"options" json:"options"`
}

const forcedSeed = 1337

// LoadConfig reads and resolves a YAML configuration file. The seed
// policy (force=1337, override=fixed int, else random 9-digit) is
// applied here, once, so the assembler always receives an explicit
// already-resolved seed.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return LoadConfigFromBytes(data)
}

// LoadConfigFromBytes parses YAML configuration from a byte slice.
func LoadConfigFromBytes(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	if cfg.TilesetDir == "" {
		return nil, errors.New("tilesetDir must not be empty")
	}

	switch {
	case cfg.ForceSeed:
		cfg.Seed = forcedSeed
	case cfg.Seed == 0:
		cfg.Seed = generateSeed()
	}

	return &cfg, nil
}

// generateSeed draws a random 9-digit seed (100000000-999999999), the
// fallback used whenever a config neither forces nor overrides the seed.
func generateSeed() uint64 {
	src := rand.New(rand.NewSource(time.Now().UnixNano()))
	return uint64(100000000 + src.Intn(900000000))
}

// Hash computes a deterministic hash of the options. NewAssembler does
// not take it: the assembler's RNG is derived from the seed and stage
// name with a nil config hash.
func (c *Config) Hash() []byte {
	data, err := yaml.Marshal(c.Options)
	if err != nil {
		h := sha256.Sum256([]byte(fmt.Sprintf("seed:%d", c.Seed)))
		return h[:]
	}
	h := sha256.Sum256(data)
	return h[:]
}
