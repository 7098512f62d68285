package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"fjacquet/balance-sheet/internal/parsererror"

	"gopkg.in/yaml.v3"
)

// Load decodes a template from JSON or YAML. Mappings become sections, numbers
// become numeric leaves, strings and nulls become text leaves. Key order is kept.
func Load(r io.Reader) (*Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read template: %w", err)
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, &parsererror.SchemaError{Reason: "template is empty"}
	}
	if trimmed[0] == '{' {
		return loadJSON(trimmed)
	}
	return loadYAML(trimmed)
}

func checkKey(path, key string) error {
	if key == "" || strings.Contains(key, ".") {
		return &parsererror.SchemaError{Path: JoinPath(path, key), Reason: "field names must be non-empty and must not contain '.'"}
	}
	return nil
}

func loadJSON(data []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	root, err := decodeJSON(dec, "")
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, &parsererror.SchemaError{Reason: "unexpected data after template object"}
	}
	return root, nil
}

func decodeJSON(dec *json.Decoder, path string) (*Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, &parsererror.SchemaError{Path: path, Reason: fmt.Sprintf("template is not valid JSON: %v", err)}
	}

	switch v := tok.(type) {
	case json.Delim:
		if v != '{' {
			return nil, &parsererror.SchemaError{Path: path, Reason: "lists are not supported in templates"}
		}
		section := NewSection()
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, &parsererror.SchemaError{Path: path, Reason: fmt.Sprintf("template is not valid JSON: %v", err)}
			}
			key, _ := keyTok.(string)
			if err := checkKey(path, key); err != nil {
				return nil, err
			}
			child, err := decodeJSON(dec, JoinPath(path, key))
			if err != nil {
				return nil, err
			}
			section.Put(key, child)
		}
		if _, err := dec.Token(); err != nil {
			return nil, &parsererror.SchemaError{Path: path, Reason: fmt.Sprintf("template is not valid JSON: %v", err)}
		}
		return section, nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return nil, &parsererror.SchemaError{Path: path, Reason: fmt.Sprintf("invalid number %q", v.String())}
		}
		return NewNumeric(f), nil
	case string:
		return NewText(v), nil
	case nil:
		return NewText(""), nil
	}
	return nil, &parsererror.SchemaError{Path: path, Reason: fmt.Sprintf("unsupported leaf value %v", tok)}
}

func loadYAML(data []byte) (*Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &parsererror.SchemaError{Reason: fmt.Sprintf("template is not valid YAML: %v", err)}
	}
	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, &parsererror.SchemaError{Reason: "template root must be a mapping"}
	}
	return fromYAML("", root)
}

func fromYAML(path string, y *yaml.Node) (*Node, error) {
	if y.Kind == yaml.AliasNode && y.Alias != nil {
		y = y.Alias
	}

	switch y.Kind {
	case yaml.MappingNode:
		section := NewSection()
		for i := 0; i+1 < len(y.Content); i += 2 {
			key := y.Content[i].Value
			if err := checkKey(path, key); err != nil {
				return nil, err
			}
			child, err := fromYAML(JoinPath(path, key), y.Content[i+1])
			if err != nil {
				return nil, err
			}
			section.Put(key, child)
		}
		return section, nil

	case yaml.ScalarNode:
		switch y.ShortTag() {
		case "!!int", "!!float":
			var f float64
			if err := y.Decode(&f); err != nil {
				return nil, &parsererror.SchemaError{Path: path, Reason: fmt.Sprintf("invalid number %q", y.Value)}
			}
			return NewNumeric(f), nil
		case "!!null":
			return NewText(""), nil
		case "!!str":
			return NewText(y.Value), nil
		}
		return nil, &parsererror.SchemaError{Path: path, Reason: fmt.Sprintf("unsupported leaf type %s", y.ShortTag())}
	}

	return nil, &parsererror.SchemaError{Path: path, Reason: "lists are not supported in templates"}
}
