package log

import (
	"github.com/rs/zerolog"

	imberr "github.com/YuminosukeSato/imbgo/pkg/errors"
)

// UseZerologWarnings routes library warnings (pkg/errors.Warn) through the
// given zerolog logger. Warning types implementing
// zerolog.LogObjectMarshaler are emitted as structured objects.
func UseZerologWarnings(logger zerolog.Logger) {
	imberr.SetZerologWarnFunc(func(warning error) {
		event := logger.Warn()
		if marshaler, ok := warning.(zerolog.LogObjectMarshaler); ok {
			event.EmbedObject(marshaler).Msg("imbgo warning")
			return
		}
		event.Err(warning).Msg("imbgo warning")
	})
}
