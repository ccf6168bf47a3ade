package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/danmuck/legacywire/protocol/wire"
)

// WireConfig is the [wire] table of a legacywire config file.
type WireConfig struct {
	ByteOrder    string `toml:"byte_order"`
	LengthPrefix string `toml:"length_prefix"`
	MaxSeqLen    int    `toml:"max_seq_len"`
	Metrics      bool   `toml:"metrics"`
}

type fileConfig struct {
	Wire WireConfig `toml:"wire"`
}

func DefaultWireConfig() WireConfig {
	return WireConfig{
		ByteOrder:    "little",
		LengthPrefix: "u64",
		MaxSeqLen:    wire.DefaultMaxSeqLen,
	}
}

func LoadWireConfig(path string) (WireConfig, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return WireConfig{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	return resolve(raw, meta)
}

// ParseWireConfig reads a config from TOML text.
func ParseWireConfig(data string) (WireConfig, error) {
	var raw fileConfig
	meta, err := toml.Decode(data, &raw)
	if err != nil {
		return WireConfig{}, fmt.Errorf("config parse failed: %w", err)
	}
	return resolve(raw, meta)
}

func resolve(raw fileConfig, meta toml.MetaData) (WireConfig, error) {
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return WireConfig{}, fmt.Errorf("config has unknown key %q", undecoded[0].String())
	}
	cfg := DefaultWireConfig()
	if meta.IsDefined("wire", "byte_order") {
		cfg.ByteOrder = strings.TrimSpace(raw.Wire.ByteOrder)
	}
	if meta.IsDefined("wire", "length_prefix") {
		cfg.LengthPrefix = strings.TrimSpace(raw.Wire.LengthPrefix)
	}
	if meta.IsDefined("wire", "max_seq_len") {
		cfg.MaxSeqLen = raw.Wire.MaxSeqLen
	}
	if meta.IsDefined("wire", "metrics") {
		cfg.Metrics = raw.Wire.Metrics
	}
	if err := ValidateWireConfig(cfg); err != nil {
		return WireConfig{}, err
	}
	return cfg, nil
}

func ValidateWireConfig(cfg WireConfig) error {
	if _, err := wire.ParseByteOrder(cfg.ByteOrder); err != nil {
		return fmt.Errorf("wire config invalid byte_order: %w", err)
	}
	if _, err := wire.ParseLenPrefix(cfg.LengthPrefix); err != nil {
		return fmt.Errorf("wire config invalid length_prefix: %w", err)
	}
	if cfg.MaxSeqLen <= 0 {
		return fmt.Errorf("wire config max_seq_len must be positive, got %d", cfg.MaxSeqLen)
	}
	return nil
}
