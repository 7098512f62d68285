package common

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/balance-sheet/internal/logging"
)

// MarshalIndent renders v as two-space indented JSON. Values with their own
// MarshalJSON, such as schema trees, keep their key order.
func MarshalIndent(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// WriteJSONFile writes v as indented JSON, creating parent directories.
func WriteJSONFile(v any, path string, logger logging.Logger) error {
	logger = loggerOrDefault(logger)

	data, err := MarshalIndent(v)
	if err != nil {
		return fmt.Errorf("error encoding JSON: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("error writing JSON file: %w", err)
	}

	logger.Info("Wrote JSON file", logging.Field{Key: logging.FieldFile, Value: path})
	return nil
}
