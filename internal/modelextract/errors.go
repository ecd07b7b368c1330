package modelextract

import "errors"

var (
	// ErrSchemaValidation means the output did not parse or validate after the retry.
	ErrSchemaValidation = errors.New("model output failed schema validation")

	// ErrModelCall means the completion itself failed or timed out.
	ErrModelCall = errors.New("model call failed")

	// ErrNoObject means no JSON object could be located in the completion.
	ErrNoObject = errors.New("no JSON object in model output")

	// ErrInvalidSpec means the domain spec lacks a schema.
	ErrInvalidSpec = errors.New("invalid extraction spec")
)
