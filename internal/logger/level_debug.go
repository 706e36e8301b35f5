//go:build !release

package logger

import "github.com/rs/zerolog"

const defaultLevel = zerolog.InfoLevel
