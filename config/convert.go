package config

import (
	"github.com/danmuck/legacywire/internal/observability"
	"github.com/danmuck/legacywire/protocol/wire"
)

// Options converts cfg to encoder options. With metrics enabled the
// encoder reports to the Prometheus codec counters.
func (cfg WireConfig) Options() (wire.Options, error) {
	if err := ValidateWireConfig(cfg); err != nil {
		return wire.Options{}, err
	}
	order, _ := wire.ParseByteOrder(cfg.ByteOrder)
	prefix, _ := wire.ParseLenPrefix(cfg.LengthPrefix)
	opts := wire.Options{
		Order:     order,
		LenPrefix: prefix,
		MaxSeqLen: cfg.MaxSeqLen,
	}
	if cfg.Metrics {
		observability.RegisterMetrics()
		opts.Observer = observability.CodecObserver{}
	}
	return opts, nil
}
