package rail

import (
	_ "embed"

	"intent-router/internal/intent"
)

//go:embed schemas/intent.schema.json
var intentSchemaSource string

// IntentSchema validates model-produced rail intents.
var IntentSchema = intent.MustCompileSchema("rail.intent.v1", intentSchemaSource)
