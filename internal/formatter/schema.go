package formatter

import (
	"encoding/json"
	"fmt"
)

const schemaDraft = "http://json-schema.org/draft-07/schema#"

// groupItemSchema describes one entry of the group output array. The
// field names and types are frozen.
var groupItemSchema = map[string]interface{}{
	"type": "object",
	"properties": map[string]interface{}{
		"count":      map[string]interface{}{"type": "integer", "minimum": 1},
		"sample":     map[string]interface{}{"type": "string"},
		"first_line": map[string]interface{}{"type": "integer", "minimum": 1},
		"last_line":  map[string]interface{}{"type": "integer", "minimum": 1},
	},
	"required":             []string{"count", "sample", "first_line", "last_line"},
	"additionalProperties": false,
}

// SchemaFor returns the JSON Schema describing the JSON output of the
// given analysis mode.
func SchemaFor(mode string) ([]byte, error) {
	var schema map[string]interface{}

	switch mode {
	case "count":
		schema = map[string]interface{}{
			"$schema": schemaDraft,
			"type":    "object",
			"properties": map[string]interface{}{
				"keyword": map[string]interface{}{"type": "string"},
				"count":   map[string]interface{}{"type": "integer", "minimum": 0},
			},
			"required":             []string{"keyword", "count"},
			"additionalProperties": false,
		}
	case "summary":
		schema = map[string]interface{}{
			"$schema": schemaDraft,
			"type":    "object",
			"additionalProperties": map[string]interface{}{
				"type":    "integer",
				"minimum": 0,
			},
		}
	case "group":
		schema = map[string]interface{}{
			"$schema": schemaDraft,
			"type":    "array",
			"items":   groupItemSchema,
		}
	case "stats":
		counter := map[string]interface{}{"type": "integer", "minimum": 0}
		schema = map[string]interface{}{
			"$schema": schemaDraft,
			"type":    "object",
			"properties": map[string]interface{}{
				"total_lines":     counter,
				"empty_lines":     counter,
				"non_empty_lines": counter,
				"unique_lines":    counter,
			},
			"required":             []string{"total_lines", "empty_lines", "non_empty_lines", "unique_lines"},
			"additionalProperties": false,
		}
	default:
		return nil, fmt.Errorf("unknown schema mode: %s (use count, summary, group, or stats)", mode)
	}

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return append(data, '\n'), nil
}
