package router

import "time"

// Log prefixes
const (
	LogPrefixRoute = "internal.router.Route"
)

// Defaults applied by New when the config leaves a field zero.
const (
	DefaultMinConfidence = 0.7
	DefaultMaxInputChars = 500
	DefaultModelTimeout  = 15 * time.Second
)

// Error messages
const (
	ErrMsgResolveFailed = "model resolution failed"
	ErrMsgExtractFailed = "model extraction failed"
	ErrMsgCompileFailed = "compile failed"
	ErrMsgIDsFailed     = "identifier derivation failed"
	ErrMsgUnknownDomain = "unknown domain"
)
