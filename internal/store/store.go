// Package store locates and loads the balance-sheet template.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/balance-sheet/internal/common"
	"fjacquet/balance-sheet/internal/logging"
	"fjacquet/balance-sheet/internal/schema"
)

// TemplateLoader provides the template used to populate statements.
type TemplateLoader interface {
	Load() (*schema.Node, error)
}

// TemplateStore loads the template from a JSON or YAML file.
type TemplateStore struct {
	TemplateFile string
	logger       logging.Logger
}

// NewTemplateStore creates a store for templateFile. An empty name selects the
// built-in template.
func NewTemplateStore(templateFile string, logger logging.Logger) *TemplateStore {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &TemplateStore{TemplateFile: templateFile, logger: logger}
}

// FindConfigFile looks for filename in the standard locations: as given, under
// ./config/, then under ~/.config/balance-sheet/.
func (s *TemplateStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(homeDir, ".config", "balance-sheet", filename))
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}
	return "", os.ErrNotExist
}

// Load returns the configured template. When no file is configured or the file
// cannot be found, the built-in template is returned. A file that exists but
// does not decode is an error.
func (s *TemplateStore) Load() (*schema.Node, error) {
	if s.TemplateFile == "" {
		s.logger.Debug("No template file configured, using built-in template")
		return schema.DefaultTemplate(), nil
	}

	path, err := s.FindConfigFile(s.TemplateFile)
	if err != nil {
		s.logger.Warn("Template file not found, using built-in template",
			logging.Field{Key: logging.FieldFile, Value: s.TemplateFile})
		return schema.DefaultTemplate(), nil
	}

	f, err := os.Open(path) // #nosec G304 -- template path comes from configuration
	if err != nil {
		return nil, fmt.Errorf("error opening template file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.WithError(err).Warn("Failed to close template file")
		}
	}()

	root, err := schema.Load(f)
	if err != nil {
		return nil, fmt.Errorf("error loading template %s: %w", path, err)
	}

	s.logger.Debug("Loaded template", logging.Field{Key: logging.FieldFile, Value: path})
	return root, nil
}

// Save writes root to path as indented JSON in template order.
func (s *TemplateStore) Save(root *schema.Node, path string) error {
	if !root.IsSection() {
		return fmt.Errorf("cannot save a template whose root is not a section")
	}
	return common.WriteJSONFile(root, path, s.logger)
}
