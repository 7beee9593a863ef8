package assembly

import "testing"

func TestLoadConfigFromBytesAppliesForceSeed(t *testing.T) {
	yaml := []byte("tilesetDir: ./tiles\nforceSeed: true\nseed: 42\n")
	cfg, err := LoadConfigFromBytes(yaml)
	if err != nil {
		t.Fatalf("LoadConfigFromBytes: %v", err)
	}
	if cfg.Seed != forcedSeed {
		t.Fatalf("Seed = %d, want forced %d", cfg.Seed, forcedSeed)
	}
}

func TestLoadConfigFromBytesKeepsExplicitSeed(t *testing.T) {
	yaml := []byte("tilesetDir: ./tiles\nseed: 777\n")
	cfg, err := LoadConfigFromBytes(yaml)
	if err != nil {
		t.Fatalf("LoadConfigFromBytes: %v", err)
	}
	if cfg.Seed != 777 {
		t.Fatalf("Seed = %d, want 777", cfg.Seed)
	}
}

func TestLoadConfigFromBytesDrawsRandomSeedWhenUnset(t *testing.T) {
	yaml := []byte("tilesetDir: ./tiles\n")
	cfg, err := LoadConfigFromBytes(yaml)
	if err != nil {
		t.Fatalf("LoadConfigFromBytes: %v", err)
	}
	if cfg.Seed < 100000000 || cfg.Seed > 999999999 {
		t.Fatalf("Seed = %d, want a 9-digit value", cfg.Seed)
	}
}

func TestLoadConfigFromBytesRejectsMissingTilesetDir(t *testing.T) {
	yaml := []byte("seed: 1\n")
	if _, err := LoadConfigFromBytes(yaml); err == nil {
		t.Fatalf("expected an error when tilesetDir is empty")
	}
}

func TestLoadConfigFromBytesParsesOptions(t *testing.T) {
	yaml := []byte("tilesetDir: ./tiles\nseed: 5\noptions:\n  tileLimit: 25\n  boundaryLimit: 2000\n  attemptsPerConnector: 4\n")
	cfg, err := LoadConfigFromBytes(yaml)
	if err != nil {
		t.Fatalf("LoadConfigFromBytes: %v", err)
	}
	if cfg.Options.TileLimit != 25 || cfg.Options.BoundaryLimit != 2000 || cfg.Options.AttemptsPerConnector != 4 {
		t.Fatalf("Options = %+v, not parsed as expected", cfg.Options)
	}
}
