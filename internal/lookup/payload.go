package lookup

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Payload is the wire shape of a successful lookup response.
type Payload struct {
	RegistrationNumber string   `json:"registrationNumber"`
	State              string   `json:"state"`
	Vin                string   `json:"vin"`
	Year               string   `json:"year"`
	Make               string   `json:"make"`
	Model              string   `json:"model"`
	Badge              string   `json:"badge,omitempty"`
	BodyType           string   `json:"bodyType"`
	FuelType           string   `json:"fuelType"`
	Transmission       string   `json:"transmission"`
	EngineCapacity     string   `json:"engineCapacity"`
	Drivetrain         string   `json:"drivetrain"`
	Colour             string   `json:"colour"`
	ConfidenceScore    *float64 `json:"confidenceScore,omitempty"`
}

// BuildPayloadJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map, used locally to reject malformed response bodies before
// unmarshalling. Identity fields must be present but may be blank; blankness
// is the normalizer's concern, not the transport's.
func BuildPayloadJSONSchema() map[string]any {
	props := map[string]any{
		"registrationNumber": map[string]any{"type": "string"},
		"state":              map[string]any{"type": "string"},
		"vin":                map[string]any{"type": "string"},
		"year":               map[string]any{"type": "string"},
		"make":               map[string]any{"type": "string"},
		"model":              map[string]any{"type": "string"},
		"badge":              map[string]any{"type": "string"},
		"bodyType":           map[string]any{"type": "string"},
		"fuelType":           map[string]any{"type": "string"},
		"transmission":       map[string]any{"type": "string"},
		"engineCapacity":     map[string]any{"type": "string"},
		"drivetrain":         map[string]any{"type": "string"},
		"colour":             map[string]any{"type": "string"},
		"confidenceScore":    map[string]any{"type": "number"},
	}
	required := []string{"registrationNumber", "state"}

	return map[string]any{
		"type":       "object",
		"properties": props,
		"required":   required,
	}
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
