package router

import (
	"errors"

	"intent-router/internal/gate"
	"intent-router/internal/modelextract"
)

// Degrade reasons. Every Result in the Degraded state carries one of these
// in Reason, possibly wrapping the underlying cause.
var (
	// ErrAmbiguousInput means no rule matched and the model path is off.
	ErrAmbiguousInput = errors.New("ambiguous input")

	// ErrModelUnavailable means no model could be resolved for the turn.
	ErrModelUnavailable = errors.New("model unavailable")

	// ErrRouterDisabled means routing is switched off by configuration.
	ErrRouterDisabled = errors.New("router disabled")

	// ErrUnknownDomain means the request named a domain that is not registered.
	ErrUnknownDomain = errors.New("unknown domain")

	// ErrIdentifiers means the plan could not be hashed into identifiers.
	ErrIdentifiers = errors.New("identifier derivation failed")

	ErrSchemaValidation = modelextract.ErrSchemaValidation
	ErrModelCall        = modelextract.ErrModelCall
	ErrLowConfidence    = gate.ErrLowConfidence
	ErrIncompleteSlots  = gate.ErrIncompleteSlots
)
