package action_test

import (
	"errors"
	"strings"
	"testing"

	"intent-router/internal/action"
)

const stationSchema = `{
  "type": "object",
  "additionalProperties": false,
  "required": ["station"],
  "properties": {
    "station": {"type": "string", "minLength": 1},
    "limit": {"type": "integer", "minimum": 1}
  }
}`

const emptySchema = `{"type": "object", "additionalProperties": false, "properties": {}}`

func newCatalog(t *testing.T) *action.Catalog {
	t.Helper()
	c := action.NewCatalog()
	if err := c.Register(action.Action{Name: "departures.list", Description: "departure board", Schema: stationSchema}); err != nil {
		t.Fatalf("register departures.list: %v", err)
	}
	if err := c.Register(action.Action{Name: "items.delete", Description: "delete item", Schema: emptySchema, SideEffecting: true}); err != nil {
		t.Fatalf("register items.delete: %v", err)
	}
	return c
}

func TestCatalog(t *testing.T) {
	c := newCatalog(t)

	t.Run("Get existing action", func(t *testing.T) {
		got, ok := c.Get("departures.list")
		if !ok || got.Name != "departures.list" {
			t.Fatalf("expected departures.list to be found")
		}
		params := got.Params()
		if len(params) != 2 || params[0].Name != "station" || !params[0].Required || params[1].Required {
			t.Errorf("unexpected params: %+v", params)
		}
	})

	t.Run("Get non-existing action", func(t *testing.T) {
		if _, ok := c.Get("missing"); ok {
			t.Errorf("expected 'missing' action to not be found")
		}
	})

	t.Run("List is sorted", func(t *testing.T) {
		list := c.List()
		if len(list) != 2 || list[0].Name != "departures.list" || list[1].Name != "items.delete" {
			t.Errorf("unexpected list order: %+v", list)
		}
	})

	t.Run("Duplicate registration", func(t *testing.T) {
		err := c.Register(action.Action{Name: "departures.list", Schema: stationSchema})
		if !errors.Is(err, action.ErrDuplicateAction) {
			t.Errorf("expected ErrDuplicateAction, got %v", err)
		}
	})

	t.Run("Empty name", func(t *testing.T) {
		if err := c.Register(action.Action{Schema: emptySchema}); !errors.Is(err, action.ErrEmptyName) {
			t.Errorf("expected ErrEmptyName, got %v", err)
		}
	})

	t.Run("Broken schema", func(t *testing.T) {
		if err := c.Register(action.Action{Name: "broken", Schema: `{`}); err == nil {
			t.Errorf("expected schema error")
		}
	})

	t.Run("Describe", func(t *testing.T) {
		desc := c.Describe()
		if !strings.Contains(desc, "- departures.list {station, limit?}: departure board") {
			t.Errorf("unexpected description:\n%s", desc)
		}
	})
}

func TestCatalogPlan(t *testing.T) {
	c := newCatalog(t)

	tests := []struct {
		name    string
		action  string
		args    map[string]any
		wantErr error
		sideEff bool
	}{
		{name: "valid", action: "departures.list", args: map[string]any{"station": "Utrecht Centraal"}},
		{name: "nil args for empty schema", action: "items.delete", args: nil, sideEff: true},
		{name: "undeclared key", action: "departures.list", args: map[string]any{"station": "Utrecht", "stationText": "Utrecht"}, wantErr: action.ErrInvalidArgs},
		{name: "missing required", action: "departures.list", args: map[string]any{}, wantErr: action.ErrInvalidArgs},
		{name: "wrong type", action: "departures.list", args: map[string]any{"station": "Utrecht", "limit": "ten"}, wantErr: action.ErrInvalidArgs},
		{name: "unknown action", action: "teleport", args: map[string]any{}, wantErr: action.ErrUnknownAction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := c.Plan(tt.action, tt.args)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Plan() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Plan() unexpected error: %v", err)
			}
			if plan.Action != tt.action || plan.SideEffecting != tt.sideEff || plan.Args == nil {
				t.Errorf("unexpected plan: %+v", plan)
			}
		})
	}
}
