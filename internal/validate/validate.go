// Package validate checks JSON documents against JSON Schemas.
package validate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema names a JSON Schema definition.
type Schema struct {
	Name       string
	Definition map[string]any
}

// Error reports a document that is not valid JSON or does not conform to
// its schema.
type Error struct {
	Schema string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Schema, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// compiled holds the compiled form of every schema seen so far, by name.
var compiled sync.Map

// Document parses raw and validates it against schema, returning the
// parsed value. Failures are *Error.
func Document(schema *Schema, raw []byte) (any, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, &Error{Schema: schema.Name, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	sch, err := compiledSchema(schema)
	if err != nil {
		return nil, &Error{Schema: schema.Name, Err: err}
	}

	if err := sch.Validate(doc); err != nil {
		return nil, &Error{Schema: schema.Name, Err: fmt.Errorf("schema validation failed: %w", err)}
	}
	return doc, nil
}

func compiledSchema(schema *Schema) (*jsonschema.Schema, error) {
	if v, ok := compiled.Load(schema.Name); ok {
		return v.(*jsonschema.Schema), nil
	}
	sch, err := compile(schema)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	// Two callers may race to compile the same schema; keep the first.
	v, _ := compiled.LoadOrStore(schema.Name, sch)
	return v.(*jsonschema.Schema), nil
}

// compile turns the Go map definition into the decoded form the compiler
// loads resources from.
func compile(schema *Schema) (*jsonschema.Schema, error) {
	def, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, err
	}
	res, err := jsonschema.UnmarshalJSON(bytes.NewReader(def))
	if err != nil {
		return nil, err
	}

	url := "mem:///" + schema.Name + ".json"
	c := jsonschema.NewCompiler()
	if err := c.AddResource(url, res); err != nil {
		return nil, err
	}
	return c.Compile(url)
}
