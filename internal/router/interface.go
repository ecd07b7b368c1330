package router

import (
	"context"

	"intent-router/internal/intent"
	"intent-router/internal/modelextract"
	"intent-router/pkg/llmprovider"
)

// Router turns a user turn into a plan or a clarification.
type Router interface {
	Route(ctx context.Context, req Request) Result
	Domains() []string
}

// Domain is one routing target: its fast path, its compiler and what the
// model extractor needs for it.
type Domain interface {
	Name() string
	TryExtract(text string, tc intent.TurnContext) (intent.Intent, bool)
	Compile(in intent.Intent) (intent.Plan, error)
	ModelSpec() modelextract.Spec
}

// ModelResolver hands out the model for one turn.
type ModelResolver interface {
	ResolveModel(ctx context.Context) (llmprovider.Completer, error)
}
