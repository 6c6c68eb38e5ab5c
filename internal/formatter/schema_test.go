package formatter

import (
	"encoding/json"
	"testing"
)

func TestSchemaForGroupShape(t *testing.T) {
	data, err := SchemaFor("group")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var schema map[string]interface{}
	if err := json.Unmarshal(data, &schema); err != nil {
		t.Fatalf("schema is not valid JSON: %v", err)
	}

	if schema["type"] != "array" {
		t.Errorf("type = %v, want array", schema["type"])
	}

	items, ok := schema["items"].(map[string]interface{})
	if !ok {
		t.Fatal("schema missing items object")
	}
	props, ok := items["properties"].(map[string]interface{})
	if !ok {
		t.Fatal("items missing properties")
	}
	for _, field := range []string{"count", "sample", "first_line", "last_line"} {
		if _, ok := props[field]; !ok {
			t.Errorf("items.properties missing %q", field)
		}
	}
}

func TestSchemaForAllModes(t *testing.T) {
	for _, mode := range []string{"count", "summary", "group", "stats"} {
		data, err := SchemaFor(mode)
		if err != nil {
			t.Errorf("SchemaFor(%q): unexpected error: %v", mode, err)
			continue
		}
		var schema map[string]interface{}
		if err := json.Unmarshal(data, &schema); err != nil {
			t.Errorf("SchemaFor(%q): invalid JSON: %v", mode, err)
		}
	}
}

func TestSchemaForUnknownMode(t *testing.T) {
	if _, err := SchemaFor("timeline"); err == nil {
		t.Error("want error for unknown mode, got nil")
	}
}
