package middleware

import (
	"intent-router/pkg/log"
)

// Middleware holds the dependencies of the HTTP middlewares.
type Middleware struct {
	l     log.Logger
	newID func() string
}

// New creates the middleware set.
func New(l log.Logger, newID func() string) Middleware {
	return Middleware{
		l:     l,
		newID: newID,
	}
}
