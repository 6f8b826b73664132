package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func sentenceTestSchema() *Schema {
	return &Schema{
		Name:        "test-sentence",
		Description: "A sentence with its difficulty",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"sentence":   map[string]any{"type": "string", "minLength": 1},
				"words":      map[string]any{"type": "integer", "minimum": 1},
				"difficulty": map[string]any{"type": "string", "enum": []any{"easy", "medium"}},
			},
			"required":             []any{"sentence", "words"},
			"additionalProperties": false,
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", `{"sentence":"The cat is big.","words":4,"difficulty":"easy"}`, false},
		{"valid without optional", `{"sentence":"I said no.","words":3}`, false},
		{"missing required", `{"sentence":"I said no."}`, true},
		{"wrong type", `{"sentence":"I said no.","words":"three"}`, true},
		{"invalid enum", `{"sentence":"I said no.","words":3,"difficulty":"hard"}`, true},
		{"empty sentence", `{"sentence":"","words":3}`, true},
		{"extra property", `{"sentence":"I said no.","words":3,"extra":1}`, true},
		{"malformed JSON", `{not json}`, true},
		{"empty response", ``, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(sentenceTestSchema(), json.RawMessage(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Fatalf("validateResponse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var invErr *ErrInvalidResponse
				if !errors.As(err, &invErr) {
					t.Fatalf("expected ErrInvalidResponse, got: %T", err)
				}
				if string(invErr.Content) != tt.raw {
					t.Errorf("content = %q, want %q", invErr.Content, tt.raw)
				}
			}
		})
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`plain text`)); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateResponse_SchemaCachedByName(t *testing.T) {
	first := sentenceTestSchema()
	first.Name = "test-cache"
	if err := validateResponse(first, json.RawMessage(`{"sentence":"Go.","words":1}`)); err != nil {
		t.Fatalf("first: %v", err)
	}

	// A second definition under the same name reuses the compiled schema.
	second := &Schema{Name: "test-cache", Definition: map[string]any{"type": "string"}}
	if err := validateResponse(second, json.RawMessage(`{"sentence":"Go.","words":1}`)); err != nil {
		t.Fatalf("cached schema not reused: %v", err)
	}
}
