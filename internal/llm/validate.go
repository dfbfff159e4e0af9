package llm

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Compiled schemas are cached by name. Mentor only ever compiles the
// question-bank schema, but the cache keeps Generate cheap either way.
var (
	schemaMu  sync.Mutex
	schemaLib = map[string]*jsonschema.Schema{}
)

// enforceSchema rejects model output that is not valid JSON conforming
// to the schema. Every provider runs it even when the model claims
// native structured output, so the bank loader downstream never sees
// malformed questions. A nil schema means free-form text; nothing to
// check.
func enforceSchema(schema *Schema, raw json.RawMessage) error {
	if schema == nil {
		return nil
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("not valid JSON: %w", err)}
	}

	compiled, err := compileSchema(schema)
	if err != nil {
		return &ErrInvalidResponse{Content: raw, Err: err}
	}

	if err := compiled.Validate(doc); err != nil {
		return &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("violates %s schema: %w", schema.Name, err)}
	}
	return nil
}

func compileSchema(schema *Schema) (*jsonschema.Schema, error) {
	schemaMu.Lock()
	defer schemaMu.Unlock()

	if compiled, ok := schemaLib[schema.Name]; ok {
		return compiled, nil
	}

	// The compiler wants a plain decoded JSON value, so round-trip the
	// definition map through encoding/json.
	encoded, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("encode %s schema: %w", schema.Name, err)
	}
	var decoded any
	if err := json.Unmarshal(encoded, &decoded); err != nil {
		return nil, fmt.Errorf("decode %s schema: %w", schema.Name, err)
	}

	compiler := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", schema.Name)
	if err := compiler.AddResource(url, decoded); err != nil {
		return nil, fmt.Errorf("register %s schema: %w", schema.Name, err)
	}
	compiled, err := compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile %s schema: %w", schema.Name, err)
	}

	schemaLib[schema.Name] = compiled
	return compiled, nil
}
