package rail

import "intent-router/internal/action"

const constraintsSchema = `{
  "type": "object",
  "additionalProperties": false,
  "minProperties": 1,
  "properties": {
    "hard": {
      "type": "object",
      "additionalProperties": false,
      "minProperties": 1,
      "properties": {
        "directOnly": {"const": true},
        "maxTransfers": {"type": "integer", "minimum": 0},
        "avoidStations": {"type": "array", "minItems": 1, "items": {"type": "string", "minLength": 1}}
      }
    },
    "soft": {
      "type": "object",
      "additionalProperties": false,
      "required": ["rankBy"],
      "properties": {
        "rankBy": {
          "type": "array",
          "minItems": 1,
          "items": {"enum": ["fewest_transfers", "fastest", "earliest_departure", "earliest_arrival"]}
        }
      }
    }
  }
}`

const (
	stationArgsSchema = `{
  "type": "object",
  "additionalProperties": false,
  "required": ["station"],
  "properties": {"station": {"type": "string", "minLength": 1}}
}`

	windowArgsSchema = `{
  "type": "object",
  "additionalProperties": false,
  "required": ["station", "fromTime", "toTime"],
  "properties": {
    "station": {"type": "string", "minLength": 1},
    "fromTime": {"type": "string", "pattern": "^([01]\\d|2[0-3]):[0-5]\\d$"},
    "toTime": {"type": "string", "pattern": "^([01]\\d|2[0-3]):[0-5]\\d$"}
  }
}`

	noArgsSchema = `{"type": "object", "additionalProperties": false, "properties": {}}`

	queryArgsSchema = `{
  "type": "object",
  "additionalProperties": false,
  "required": ["query"],
  "properties": {"query": {"type": "string", "minLength": 1}}
}`

	ctxReconArgsSchema = `{
  "type": "object",
  "additionalProperties": false,
  "required": ["ctxRecon"],
  "properties": {"ctxRecon": {"type": "string", "minLength": 1}}
}`

	journeyArgsSchema = `{
  "type": "object",
  "additionalProperties": false,
  "required": ["journeyId"],
  "properties": {"journeyId": {"type": "string", "minLength": 1}}
}`
)

var tripsSearchSchema = `{
  "type": "object",
  "additionalProperties": false,
  "required": ["from", "to"],
  "properties": {
    "from": {"type": "string", "minLength": 1},
    "to": {"type": "string", "minLength": 1},
    "via": {"type": "string", "minLength": 1},
    "dateTime": {"type": "string", "minLength": 1},
    "intent": ` + constraintsSchema + `
  }
}`

// Catalog lists the rail actions plans can target.
var Catalog = action.NewCatalog().MustRegister(
	action.Action{Name: "trips.search", Description: "plan a journey between two stations", Schema: tripsSearchSchema},
	action.Action{Name: "departures.list", Description: "departure board of a station", Schema: stationArgsSchema},
	action.Action{Name: "departures.window", Description: "departure board of a station within a time window", Schema: windowArgsSchema},
	action.Action{Name: "arrivals.list", Description: "arrival board of a station", Schema: stationArgsSchema},
	action.Action{Name: "disruptions.list", Description: "current disruptions on the network", Schema: noArgsSchema},
	action.Action{Name: "disruptions.by_station", Description: "disruptions affecting one station", Schema: stationArgsSchema},
	action.Action{Name: "stations.search", Description: "look up stations by name", Schema: queryArgsSchema},
	action.Action{Name: "stations.nearest", Description: "stations near the user", Schema: noArgsSchema},
	action.Action{Name: "trips.detail", Description: "details of a trip shown earlier", Schema: ctxReconArgsSchema},
	action.Action{Name: "journey.detail", Description: "details of one train journey", Schema: journeyArgsSchema},
	action.Action{Name: "disruptions.detail", Description: "details of a disruption shown earlier", Schema: ctxReconArgsSchema},
)
