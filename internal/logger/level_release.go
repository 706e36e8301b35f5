//go:build release

package logger

import "github.com/rs/zerolog"

// Release builds keep the console quiet unless something goes wrong.
const defaultLevel = zerolog.WarnLevel
