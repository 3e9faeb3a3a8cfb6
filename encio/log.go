package encio

import (
	"os"

	"github.com/rs/zerolog"
)

// Log is where stf logs to.
// In many cases stf will continue to operate with e.g. incorrectly implemented io.Writers,
// however I don't want to silently put up with things that seem worrying.
//
// It logs warnings to stderr by default. Replace it to change the destination or level.
var Log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
	Level(zerolog.WarnLevel).
	With().Timestamp().Str("lib", "stf").
	Logger()
