// Package action keeps the catalog of downstream actions and validates
// compiled plans against their argument schemas.
package action

import (
	"encoding/json"
	"fmt"
	"slices"
	"sort"
	"strings"

	"intent-router/internal/intent"
)

// Catalog manages the available actions of one domain.
type Catalog struct {
	actions map[string]Action
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		actions: make(map[string]Action),
	}
}

// Register compiles the action schema and adds the action.
func (c *Catalog) Register(a Action) error {
	if a.Name == "" {
		return ErrEmptyName
	}
	if _, exists := c.actions[a.Name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateAction, a.Name)
	}

	compiled, err := intent.CompileSchema("action."+a.Name, a.Schema)
	if err != nil {
		return err
	}
	params, err := declaredParams(a.Schema)
	if err != nil {
		return fmt.Errorf("%s: %s: %w", logPrefix, a.Name, err)
	}

	a.compiled = compiled
	a.params = params
	c.actions[a.Name] = a
	return nil
}

// MustRegister registers every action or panics. Used for package-level catalogs.
func (c *Catalog) MustRegister(actions ...Action) *Catalog {
	for _, a := range actions {
		if err := c.Register(a); err != nil {
			panic(err)
		}
	}
	return c
}

// Get retrieves an action by name.
func (c *Catalog) Get(name string) (Action, bool) {
	a, ok := c.actions[name]
	return a, ok
}

// List returns all registered actions sorted by name.
func (c *Catalog) List() []Action {
	actions := make([]Action, 0, len(c.actions))
	for _, a := range c.actions {
		actions = append(actions, a)
	}
	sort.Slice(actions, func(i, j int) bool { return actions[i].Name < actions[j].Name })
	return actions
}

// Plan builds a plan for the named action and validates its arguments.
func (c *Catalog) Plan(name string, args map[string]any) (intent.Plan, error) {
	a, ok := c.actions[name]
	if !ok {
		return intent.Plan{}, fmt.Errorf("%w: %s", ErrUnknownAction, name)
	}
	if args == nil {
		args = map[string]any{}
	}
	plan := intent.Plan{Action: name, Args: args, SideEffecting: a.SideEffecting}
	if err := c.Validate(plan); err != nil {
		return intent.Plan{}, err
	}
	return plan, nil
}

// Validate checks that the plan targets a known action and that every
// argument is declared by its schema.
func (c *Catalog) Validate(plan intent.Plan) error {
	a, ok := c.actions[plan.Action]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAction, plan.Action)
	}
	args := plan.Args
	if args == nil {
		args = map[string]any{}
	}
	if err := a.compiled.Validate(args); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgs, err)
	}
	return nil
}

// Describe renders the catalog as a bullet list for model prompts.
func (c *Catalog) Describe() string {
	var b strings.Builder
	for _, a := range c.List() {
		names := make([]string, 0, len(a.params))
		for _, p := range a.params {
			if p.Required {
				names = append(names, p.Name)
			} else {
				names = append(names, p.Name+"?")
			}
		}
		fmt.Fprintf(&b, "- %s {%s}: %s\n", a.Name, strings.Join(names, ", "), a.Description)
	}
	return b.String()
}

func declaredParams(schema string) ([]Param, error) {
	var doc struct {
		Required   []string                   `json:"required"`
		Properties map[string]json.RawMessage `json:"properties"`
	}
	if err := json.Unmarshal([]byte(schema), &doc); err != nil {
		return nil, err
	}

	params := make([]Param, 0, len(doc.Properties))
	for name := range doc.Properties {
		params = append(params, Param{Name: name, Required: slices.Contains(doc.Required, name)})
	}
	sort.Slice(params, func(i, j int) bool {
		if params[i].Required != params[j].Required {
			return params[i].Required
		}
		return params[i].Name < params[j].Name
	})
	return params, nil
}
