// Package agenda is the calendar domain: list, create, update and delete
// agenda items.
package agenda

import (
	"intent-router/internal/modelextract"
	"intent-router/pkg/datemath"
)

// Domain bundles the agenda extractor, compiler and model spec.
type Domain struct {
	*Extractor
	*Compiler
}

// New creates the agenda domain.
func New(dates *datemath.Parser, opts ...Option) *Domain {
	return &Domain{
		Extractor: NewExtractor(),
		Compiler:  NewCompiler(dates, opts...),
	}
}

// Name returns the domain name.
func (d *Domain) Name() string {
	return DomainName
}

// ModelSpec returns what the model extractor needs for agenda intents.
func (d *Domain) ModelSpec() modelextract.Spec {
	return modelextract.Spec{
		Domain:       DomainName,
		Instructions: ModelInstructions + Catalog.Describe(),
		Schema:       IntentSchema,
	}
}
