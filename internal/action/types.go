package action

import "intent-router/internal/intent"

// Action describes a downstream action a plan can target.
type Action struct {
	// Name is the action identifier used in plans.
	Name string

	// Description says what the action does (rendered into model prompts).
	Description string

	// Schema is the JSON schema for the action arguments.
	Schema string

	// SideEffecting actions need idempotency identifiers before dispatch.
	SideEffecting bool

	compiled *intent.Schema
	params   []Param
}

// Param is one declared argument of an action.
type Param struct {
	Name     string
	Required bool
}

// Params returns the declared arguments, required ones first.
func (a Action) Params() []Param {
	return a.params
}
