package agenda

import (
	_ "embed"

	"intent-router/internal/intent"
)

//go:embed schemas/intent.schema.json
var intentSchemaSource string

// IntentSchema validates model-produced agenda intents.
var IntentSchema = intent.MustCompileSchema(intent.VersionAgenda, intentSchemaSource)
