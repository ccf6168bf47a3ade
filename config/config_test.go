package config

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/danmuck/legacywire/internal/observability"
	"github.com/danmuck/legacywire/protocol"
	"github.com/danmuck/legacywire/protocol/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultWireConfig(t *testing.T) {
	cfg := DefaultWireConfig()

	assert.Equal(t, "little", cfg.ByteOrder)
	assert.Equal(t, "u64", cfg.LengthPrefix)
	assert.Equal(t, wire.DefaultMaxSeqLen, cfg.MaxSeqLen)
	assert.False(t, cfg.Metrics)
	assert.NoError(t, ValidateWireConfig(cfg))
}

func TestParseWireConfig(t *testing.T) {
	t.Run("empty document keeps defaults", func(t *testing.T) {
		cfg, err := ParseWireConfig("")
		require.NoError(t, err)
		assert.Equal(t, DefaultWireConfig(), cfg)
	})

	t.Run("overrides", func(t *testing.T) {
		cfg, err := ParseWireConfig(`
[wire]
byte_order = " big "
length_prefix = "u16"
max_seq_len = 5000
metrics = true
`)
		require.NoError(t, err)
		assert.Equal(t, "big", cfg.ByteOrder)
		assert.Equal(t, "u16", cfg.LengthPrefix)
		assert.Equal(t, 5000, cfg.MaxSeqLen)
		assert.True(t, cfg.Metrics)
	})

	t.Run("partial table", func(t *testing.T) {
		cfg, err := ParseWireConfig("[wire]\nlength_prefix = \"u8\"\n")
		require.NoError(t, err)
		assert.Equal(t, "little", cfg.ByteOrder)
		assert.Equal(t, "u8", cfg.LengthPrefix)
	})

	t.Run("invalid values", func(t *testing.T) {
		for _, doc := range []string{
			"[wire]\nbyte_order = \"middle\"\n",
			"[wire]\nlength_prefix = \"u24\"\n",
			"[wire]\nmax_seq_len = 0\n",
		} {
			_, err := ParseWireConfig(doc)
			assert.Error(t, err, doc)
		}
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := ParseWireConfig("[wire]\nendianness = \"big\"\n")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "wire.endianness")
	})

	t.Run("malformed toml", func(t *testing.T) {
		_, err := ParseWireConfig("[wire\n")
		assert.Error(t, err)
	})
}

func TestLoadWireConfigFromTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "legacywire.toml")

	require.NoError(t, WriteTemplate(path, false))
	assert.Error(t, WriteTemplate(path, false))
	require.NoError(t, WriteTemplate(path, true))

	cfg, err := LoadWireConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultWireConfig(), cfg)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Template(), string(data))

	_, err = LoadWireConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestWireConfigOptions(t *testing.T) {
	cfg := DefaultWireConfig()
	cfg.ByteOrder = "big"
	cfg.LengthPrefix = "u8"
	cfg.MaxSeqLen = 64

	opts, err := cfg.Options()
	require.NoError(t, err)
	assert.Equal(t, binary.ByteOrder(binary.BigEndian), opts.Order)
	assert.Equal(t, wire.LenPrefixU8, opts.LenPrefix)
	assert.Equal(t, 64, opts.MaxSeqLen)
	assert.Nil(t, opts.Observer)

	got, err := wire.MarshalWith(struct {
		Raw  protocol.RawInt32
		Text protocol.ByteStringSequence
	}{Raw: 1, Text: "ok"}, opts)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0, 1, 2, 'o', 'k'}, got)

	cfg.Metrics = true
	opts, err = cfg.Options()
	require.NoError(t, err)
	assert.Equal(t, observability.CodecObserver{}, opts.Observer)

	cfg.LengthPrefix = "bogus"
	_, err = cfg.Options()
	assert.Error(t, err)
}
