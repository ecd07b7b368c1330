package intent

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaBaseURL = "https://intent-router.local/schemas/"

// Schema is a compiled JSON schema (Draft 2020-12).
type Schema struct {
	name     string
	compiled *jsonschema.Schema
}

// CompileSchema compiles the schema source under name.
func CompileSchema(name, src string) (*Schema, error) {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	url := schemaBaseURL + name + ".schema.json"
	if err := c.AddResource(url, strings.NewReader(src)); err != nil {
		return nil, fmt.Errorf("%s: schema %s load failed: %w", LogPrefix, name, err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("%s: schema %s compile failed: %w", LogPrefix, name, err)
	}
	return &Schema{name: name, compiled: compiled}, nil
}

// MustCompileSchema is CompileSchema for package-level schemas.
func MustCompileSchema(name, src string) *Schema {
	s, err := CompileSchema(name, src)
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns the schema name.
func (s *Schema) Name() string {
	return s.name
}

// Validate checks v against the schema. Go values are lowered to their JSON
// form first.
func (s *Schema) Validate(v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSchemaInvalid, s.name, err)
	}
	return s.ValidateJSON(raw)
}

// ValidateJSON checks an encoded JSON document against the schema.
func (s *Schema) ValidateJSON(raw []byte) error {
	doc, err := decodeGeneric(raw)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSchemaInvalid, s.name, err)
	}
	if err := s.compiled.Validate(doc); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSchemaInvalid, s.name, err)
	}
	return nil
}

// DecodeIntent validates raw against the schema and decodes it strictly:
// keys the Intent type does not know are rejected.
func (s *Schema) DecodeIntent(raw []byte) (Intent, error) {
	if err := s.ValidateJSON(raw); err != nil {
		return Intent{}, err
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	var out Intent
	if err := dec.Decode(&out); err != nil {
		return Intent{}, fmt.Errorf("%w: %s: %v", ErrSchemaInvalid, s.name, err)
	}
	return out, nil
}

func decodeGeneric(raw []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	return doc, nil
}
