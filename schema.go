package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// CompileSchema compiles a JSON Schema document for use with the validated
// record operations. name is the resource identifier reported in validation
// errors ("record.schema.json" when empty).
func CompileSchema(name string, schemaJSON []byte) (*jsonschema.Schema, error) {
	if name == "" {
		name = "record.schema.json"
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, bytes.NewReader(schemaJSON)); err != nil {
		return nil, err
	}
	return compiler.Compile(name)
}

// CreateValidated validates record against schema before delegating to Create.
func (r *RecordsClient) CreateValidated(ctx context.Context, entitySet string, record Record, schema *jsonschema.Schema) (*Result, error) {
	if err := validateRecord(schema, record); err != nil {
		return nil, err
	}
	return r.Create(ctx, entitySet, record)
}

// UpdateValidated validates record against schema before delegating to Update.
func (r *RecordsClient) UpdateValidated(ctx context.Context, entitySet string, id uuid.UUID, record Record, schema *jsonschema.Schema) (*Result, error) {
	if err := validateRecord(schema, record); err != nil {
		return nil, err
	}
	return r.Update(ctx, entitySet, id, record)
}

// validateRecord round-trips the record through JSON so the validator sees the
// exact value shapes the server will receive.
func validateRecord(schema *jsonschema.Schema, record Record) error {
	if schema == nil {
		return fmt.Errorf("sdk: schema required")
	}
	encoded, err := json.Marshal(record)
	if err != nil {
		return err
	}
	var data any
	if err := json.Unmarshal(encoded, &data); err != nil {
		return err
	}
	if err := schema.Validate(data); err != nil {
		return fmt.Errorf("sdk: record does not match schema: %w", err)
	}
	return nil
}
