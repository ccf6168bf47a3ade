package observability

import (
	"sync"

	"github.com/danmuck/legacywire/protocol"
	"github.com/danmuck/legacywire/protocol/wire"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	codecEncoded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "legacywire",
			Subsystem: "codec",
			Name:      "encoded_total",
			Help:      "Total codec values encoded.",
		},
		[]string{"kind"},
	)
	codecEncodedBytes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "legacywire",
			Subsystem: "codec",
			Name:      "encoded_bytes_total",
			Help:      "Total bytes written by codec values.",
		},
		[]string{"kind"},
	)
	codecFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "legacywire",
			Subsystem: "codec",
			Name:      "failures_total",
			Help:      "Codec values rejected during encode.",
		},
		[]string{"kind"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(codecEncoded, codecEncodedBytes, codecFailures)
	})
}

func RecordEncode(kind protocol.Kind, n int) {
	RegisterMetrics()
	label := kind.String()
	codecEncoded.WithLabelValues(label).Inc()
	codecEncodedBytes.WithLabelValues(label).Add(float64(n))
}

func RecordEncodeFailure(kind protocol.Kind) {
	RegisterMetrics()
	codecFailures.WithLabelValues(kind.String()).Inc()
}

// CodecObserver feeds encoder outcomes into the codec counters.
type CodecObserver struct{}

var _ wire.Observer = CodecObserver{}

func (CodecObserver) ObserveEncode(kind protocol.Kind, n int) {
	RecordEncode(kind, n)
}

func (CodecObserver) ObserveFailure(kind protocol.Kind, _ error) {
	RecordEncodeFailure(kind)
}
