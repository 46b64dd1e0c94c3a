package verbalizer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DecodeFile reads path and decodes it into v, choosing JSON or YAML by extension.
// Unknown fields are rejected so typos in data files surface early.
func DecodeFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("verbalizer: read %s: %w", path, err)
	}
	if err := Decode(filepath.Ext(path), data, v); err != nil {
		return fmt.Errorf("verbalizer: decode %s: %w", path, err)
	}
	return nil
}

// Decode decodes data in the format named by ext (".json", ".yaml", ".yml")
func Decode(ext string, data []byte, v any) error {
	switch strings.ToLower(ext) {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		return dec.Decode(v)
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(v); err != nil {
			return fmt.Errorf("yaml parse error: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported extension %q", ext)
	}
}
