package agenda

import "intent-router/internal/action"

const (
	listArgsSchema = `{
  "type": "object",
  "additionalProperties": false,
  "required": ["date"],
  "properties": {
    "date": {"type": "string", "pattern": "^\\d{4}-\\d{2}-\\d{2}$"},
    "fromTime": {"type": "string", "pattern": "^([01]\\d|2[0-3]):[0-5]\\d$"},
    "toTime": {"type": "string", "pattern": "^([01]\\d|2[0-3]):[0-5]\\d$"}
  }
}`

	createArgsSchema = `{
  "type": "object",
  "additionalProperties": false,
  "required": ["title", "start"],
  "properties": {
    "title": {"type": "string", "minLength": 1, "maxLength": 200},
    "start": {"type": "string", "minLength": 1},
    "end": {"type": "string", "minLength": 1}
  }
}`

	updateArgsSchema = `{
  "type": "object",
  "additionalProperties": false,
  "required": ["itemRef"],
  "minProperties": 2,
  "properties": {
    "itemRef": {"type": "string", "minLength": 1},
    "start": {"type": "string", "minLength": 1},
    "end": {"type": "string", "minLength": 1},
    "title": {"type": "string", "minLength": 1, "maxLength": 200}
  }
}`

	deleteArgsSchema = `{
  "type": "object",
  "additionalProperties": false,
  "required": ["itemRef"],
  "properties": {"itemRef": {"type": "string", "minLength": 1}}
}`
)

// Catalog lists the agenda actions plans can target.
var Catalog = action.NewCatalog().MustRegister(
	action.Action{Name: "agenda.list", Description: "items on one day, optionally within a time window", Schema: listArgsSchema},
	action.Action{Name: "agenda.create", Description: "add an item", Schema: createArgsSchema, SideEffecting: true},
	action.Action{Name: "agenda.update", Description: "move or rename an existing item", Schema: updateArgsSchema, SideEffecting: true},
	action.Action{Name: "agenda.delete", Description: "remove an existing item", Schema: deleteArgsSchema, SideEffecting: true},
)
