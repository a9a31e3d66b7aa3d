package policy

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildPolicyJSONSchema returns the JSON-Schema (draft 2020-12 subset) a
// policy override file must satisfy. Every property is optional; omitted
// thresholds keep their defaults.
func BuildPolicyJSONSchema() map[string]any {
	number := func() map[string]any {
		return map[string]any{"type": "number", "minimum": 0.0}
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"forbearance_months_moderate":   number(),
			"forbearance_months_high":       number(),
			"capitalization_explain_days":   number(),
			"capitalization_count_moderate": number(),
			"capitalization_count_high":     number(),
			"non_payment_gap_months":        map[string]any{"type": "integer", "minimum": 1},
			"non_payment_days_moderate":     number(),
			"non_payment_days_high":         number(),
			"interest_rate_threshold":       number(),
			"interest_excess_moderate":      number(),
			"interest_excess_high":          number(),
		},
	}
}

// Load reads a JSON policy override, validates it against the schema, and
// applies it on top of the defaults.
func Load(path string) (Policy, error) {
	p := Default()
	if path == "" {
		return p, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("read policy: %w", err)
	}
	if err := validateAgainstSchema(BuildPolicyJSONSchema(), data); err != nil {
		return p, fmt.Errorf("policy %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("decode policy: %w", err)
	}
	return p, nil
}

func validateAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("policy.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("policy.json")
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
