package llm

import (
	"fmt"
	"reflect"
	"strings"
	"time"
)

// SchemaFor derives a JSON schema from a Go type for structured extraction.
// The schema is strict: additionalProperties is false everywhere and every
// property is required, including nullable ones (pointer fields become
// ["<type>", "null"]). No $refs are emitted — nested types are inlined —
// because provider-side structured output rejects unresolved references.
//
// The schema is produced from the same type the extractor decodes into, so
// the contract can never drift from the code.
func SchemaFor(t reflect.Type) (map[string]any, error) {
	seen := make(map[reflect.Type]bool)
	return schemaFor(t, seen)
}

var timeType = reflect.TypeOf(time.Time{})

func schemaFor(t reflect.Type, seen map[reflect.Type]bool) (map[string]any, error) {
	switch t.Kind() {
	case reflect.Pointer:
		inner, err := schemaFor(t.Elem(), seen)
		if err != nil {
			return nil, err
		}
		return nullable(inner), nil
	case reflect.String:
		return map[string]any{"type": "string"}, nil
	case reflect.Bool:
		return map[string]any{"type": "boolean"}, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return map[string]any{"type": "integer"}, nil
	case reflect.Float32, reflect.Float64:
		return map[string]any{"type": "number"}, nil
	case reflect.Slice, reflect.Array:
		items, err := schemaFor(t.Elem(), seen)
		if err != nil {
			return nil, err
		}
		return map[string]any{"type": "array", "items": items}, nil
	case reflect.Map:
		if t.Key().Kind() != reflect.String {
			return nil, fmt.Errorf("unsupported map key type %s", t.Key())
		}
		values, err := schemaFor(t.Elem(), seen)
		if err != nil {
			return nil, err
		}
		return map[string]any{"type": "object", "additionalProperties": values}, nil
	case reflect.Interface:
		// Free-form value; the extractor validates downstream.
		return map[string]any{}, nil
	case reflect.Struct:
		if t == timeType {
			return map[string]any{"type": "string", "format": "date-time"}, nil
		}
		if seen[t] {
			return nil, fmt.Errorf("recursive type %s cannot be inlined", t)
		}
		seen[t] = true
		defer delete(seen, t)
		return structSchema(t, seen)
	default:
		return nil, fmt.Errorf("unsupported type %s for schema derivation", t)
	}
}

func structSchema(t reflect.Type, seen map[reflect.Type]bool) (map[string]any, error) {
	properties := make(map[string]any)
	required := make([]string, 0, t.NumField())

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := jsonName(f)
		if name == "-" {
			continue
		}
		// Embedded structs flatten, matching encoding/json.
		if f.Anonymous && f.Type.Kind() == reflect.Struct && !hasJSONTag(f) {
			embedded, err := structSchema(f.Type, seen)
			if err != nil {
				return nil, err
			}
			for k, v := range embedded["properties"].(map[string]any) {
				properties[k] = v
			}
			required = append(required, embedded["required"].([]string)...)
			continue
		}
		prop, err := schemaFor(f.Type, seen)
		if err != nil {
			return nil, fmt.Errorf("field %s.%s: %w", t.Name(), f.Name, err)
		}
		if desc := f.Tag.Get("desc"); desc != "" {
			prop["description"] = desc
		}
		if enum := f.Tag.Get("enum"); enum != "" {
			values := strings.Split(enum, ",")
			anyValues := make([]any, len(values))
			for i, v := range values {
				anyValues[i] = v
			}
			prop["enum"] = anyValues
		}
		properties[name] = prop
		required = append(required, name)
	}

	return map[string]any{
		"type":                 "object",
		"properties":           properties,
		"required":             required,
		"additionalProperties": false,
	}, nil
}

// nullable widens a schema to also accept null.
func nullable(schema map[string]any) map[string]any {
	if t, ok := schema["type"].(string); ok {
		schema["type"] = []any{t, "null"}
		return schema
	}
	// Typeless or already-widened schemas wrap in anyOf.
	return map[string]any{
		"anyOf": []any{schema, map[string]any{"type": "null"}},
	}
}

func jsonName(f reflect.StructField) string {
	tag := f.Tag.Get("json")
	if tag == "" {
		return f.Name
	}
	name := strings.Split(tag, ",")[0]
	if name == "" {
		return f.Name
	}
	return name
}

func hasJSONTag(f reflect.StructField) bool {
	return f.Tag.Get("json") != ""
}
