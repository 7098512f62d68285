package store

import "fjacquet/balance-sheet/internal/schema"

// MockTemplateStore is a TemplateLoader for tests.
type MockTemplateStore struct {
	Template *schema.Node
	LoadErr  error
}

// Load returns a copy of the mock template, the built-in one when unset.
func (m *MockTemplateStore) Load() (*schema.Node, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Template == nil {
		return schema.DefaultTemplate(), nil
	}
	return m.Template.Clone(), nil
}

var (
	_ TemplateLoader = (*TemplateStore)(nil)
	_ TemplateLoader = (*MockTemplateStore)(nil)
)
