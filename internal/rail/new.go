// Package rail is the rail travel domain: fast-path rules, the model
// instruction block and the compiler onto rail actions.
package rail

import (
	"intent-router/internal/modelextract"
	"intent-router/pkg/datemath"
)

// Domain bundles the rail extractor, compiler and model spec.
type Domain struct {
	*Extractor
	*Compiler
}

// New creates the rail domain.
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

// ModelSpec returns what the model extractor needs for rail intents.
func (d *Domain) ModelSpec() modelextract.Spec {
	return modelextract.Spec{
		Domain:       DomainName,
		Instructions: ModelInstructions + Catalog.Describe(),
		Schema:       IntentSchema,
	}
}
