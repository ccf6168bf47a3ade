package observability

import (
	"testing"

	"github.com/danmuck/legacywire/protocol"
	"github.com/danmuck/legacywire/protocol/wire"
	"github.com/danmuck/legacywire/internal/testutil/testlog"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterMetricsIsIdempotent(t *testing.T) {
	testlog.Start(t)
	assert.NotPanics(t, func() {
		RegisterMetrics()
		RegisterMetrics()
	})
}

func TestCodecObserverCountsEncoderOutcomes(t *testing.T) {
	testlog.Start(t)
	smart := protocol.KindSmartInt.String()
	text := protocol.KindByteStringSequence.String()

	encodedBefore := testutil.ToFloat64(codecEncoded.WithLabelValues(smart))
	bytesBefore := testutil.ToFloat64(codecEncodedBytes.WithLabelValues(smart))
	failuresBefore := testutil.ToFloat64(codecFailures.WithLabelValues(smart))
	textBytesBefore := testutil.ToFloat64(codecEncodedBytes.WithLabelValues(text))

	enc := wire.NewEncoder(wire.Options{Observer: CodecObserver{}})
	require.NoError(t, enc.Encode(protocol.SmartInt(12)))
	require.NoError(t, enc.Encode(protocol.SmartInt(1200)))
	require.NoError(t, enc.Encode(protocol.ByteStringSequence("abc")))
	require.Error(t, enc.Encode(protocol.SmartInt(60000)))

	assert.Equal(t, encodedBefore+2, testutil.ToFloat64(codecEncoded.WithLabelValues(smart)))
	assert.Equal(t, bytesBefore+3, testutil.ToFloat64(codecEncodedBytes.WithLabelValues(smart)))
	assert.Equal(t, failuresBefore+1, testutil.ToFloat64(codecFailures.WithLabelValues(smart)))
	assert.Equal(t, textBytesBefore+11, testutil.ToFloat64(codecEncodedBytes.WithLabelValues(text)))
}
