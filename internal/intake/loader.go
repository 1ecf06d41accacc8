package intake

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// #region loader

// LoadFile decodes an input document. ".json" files are decoded as JSON,
// everything else as YAML.
func LoadFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read input %s: %w", path, err)
	}
	format := "yaml"
	if strings.EqualFold(filepath.Ext(path), ".json") {
		format = "json"
	}
	doc, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return Document{}, fmt.Errorf("decode input %s: %w", path, err)
	}
	return doc, nil
}

// Decode reads one document in the given format ("json" or "yaml").
// Unknown fields are rejected so typos do not silently score as zero.
func Decode(r io.Reader, format string) (Document, error) {
	var doc Document
	switch format {
	case "json":
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return Document{}, err
		}
	case "yaml", "yml":
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return Document{}, err
		}
	default:
		return Document{}, fmt.Errorf("unknown input format %q", format)
	}
	return doc, nil
}

// #endregion loader
