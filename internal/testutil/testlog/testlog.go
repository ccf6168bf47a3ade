package testlog

import (
	"testing"

	"github.com/danmuck/legacywire/internal/logging"
)

func Start(t *testing.T) {
	t.Helper()
	logging.ConfigureTests()
	logging.Logger().Info().Str("test", t.Name()).Msg("")
}
