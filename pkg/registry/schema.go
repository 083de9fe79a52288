package registry

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ErrDuplicateTargetPort indicates two edges were wired into the same input
// port of one node.
var ErrDuplicateTargetPort = errors.New("duplicate edge into input port")

// ParameterSchema builds a JSON schema describing the definition's
// parameters, used to validate saved parameter values at the API boundary.
// The engine itself stays lenient and never consults this.
func (d *Definition) ParameterSchema() map[string]any {
	properties := make(map[string]any, len(d.Parameters))
	required := make([]string, 0)

	for _, p := range d.Parameters {
		prop := map[string]any{}

		switch p.Type {
		case ParameterText, ParameterFile:
			prop["type"] = "string"
		case ParameterNumber, ParameterSlider:
			prop["type"] = "number"
			if p.Min != nil {
				prop["minimum"] = *p.Min
			}

			if p.Max != nil {
				prop["maximum"] = *p.Max
			}
		case ParameterBoolean:
			prop["type"] = "boolean"
		case ParameterSelect:
			values := make([]any, 0, len(p.Options))
			for _, opt := range p.Options {
				values = append(values, opt.Value)
			}

			prop["enum"] = values
		}

		if p.Description != "" {
			prop["description"] = p.Description
		}

		if p.Default != nil {
			prop["default"] = p.Default
		}

		properties[p.ID] = prop

		if p.Required {
			required = append(required, p.ID)
		}
	}

	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}

	return schema
}

// ValidateParameters checks a parameter value map against the definition's
// generated schema.
func (d *Definition) ValidateParameters(values map[string]any) error {
	schemaLoader := gojsonschema.NewGoLoader(d.ParameterSchema())
	valueLoader := gojsonschema.NewGoLoader(values)

	result, err := gojsonschema.Validate(schemaLoader, valueLoader)
	if err != nil {
		return fmt.Errorf("failed to validate parameters for node type %s: %w", d.ID, err)
	}

	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			msgs = append(msgs, desc.String())
		}

		return fmt.Errorf("invalid parameters for node type %s: %s", d.ID, strings.Join(msgs, "; "))
	}

	return nil
}
