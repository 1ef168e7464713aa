package gemini

import (
	"fmt"
	"slices"

	"google.golang.org/genai"
)

// validateAgainstSchema walks a decoded JSON value against a schema
// descriptor and collects every violation. The hosted model is asked for
// schema-conforming output but is not trusted to deliver it; anything that
// slips through here would otherwise surface as a zero value deep in a
// view-model.
func validateAgainstSchema(schema *genai.Schema, value any) error {
	var violations []string
	walkSchema(schema, value, "$", &violations)
	if len(violations) > 0 {
		return &SchemaValidationError{Violations: violations}
	}
	return nil
}

func walkSchema(schema *genai.Schema, value any, path string, violations *[]string) {
	if schema == nil {
		return
	}

	switch schema.Type {
	case genai.TypeObject:
		obj, ok := value.(map[string]any)
		if !ok {
			*violations = append(*violations, fmt.Sprintf("%s: expected object, got %s", path, jsonTypeName(value)))
			return
		}
		for _, name := range schema.Required {
			if _, present := obj[name]; !present {
				*violations = append(*violations, fmt.Sprintf("%s: missing required field %q", path, name))
			}
		}
		for name, prop := range schema.Properties {
			if fieldValue, present := obj[name]; present {
				walkSchema(prop, fieldValue, path+"."+name, violations)
			}
		}

	case genai.TypeArray:
		arr, ok := value.([]any)
		if !ok {
			*violations = append(*violations, fmt.Sprintf("%s: expected array, got %s", path, jsonTypeName(value)))
			return
		}
		for i, elem := range arr {
			walkSchema(schema.Items, elem, fmt.Sprintf("%s[%d]", path, i), violations)
		}

	case genai.TypeString:
		s, ok := value.(string)
		if !ok {
			*violations = append(*violations, fmt.Sprintf("%s: expected string, got %s", path, jsonTypeName(value)))
			return
		}
		if len(schema.Enum) > 0 && !slices.Contains(schema.Enum, s) {
			*violations = append(*violations, fmt.Sprintf("%s: value %q is not one of %v", path, s, schema.Enum))
		}

	case genai.TypeNumber, genai.TypeInteger:
		if _, ok := value.(float64); !ok {
			*violations = append(*violations, fmt.Sprintf("%s: expected number, got %s", path, jsonTypeName(value)))
		}

	case genai.TypeBoolean:
		if _, ok := value.(bool); !ok {
			*violations = append(*violations, fmt.Sprintf("%s: expected boolean, got %s", path, jsonTypeName(value)))
		}
	}
}

func jsonTypeName(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", value)
	}
}
