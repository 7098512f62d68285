// Package parser provides the base parser functionality and common interfaces.
package parser

import (
	"fjacquet/balance-sheet/internal/common"
	"fjacquet/balance-sheet/internal/logging"
	"fjacquet/balance-sheet/internal/schema"
)

// BaseParser provides common functionality for parser implementations.
// Parsers embed it to inherit logger handling and the JSON writer:
//
//	type MyParser struct {
//		parser.BaseParser
//		// parser-specific fields
//	}
type BaseParser struct {
	logger logging.Logger
}

// NewBaseParser creates a BaseParser. A nil logger is replaced by the default one.
func NewBaseParser(logger logging.Logger) BaseParser {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return BaseParser{logger: logger}
}

// SetLogger implements LoggerConfigurable. A nil logger is ignored.
func (b *BaseParser) SetLogger(logger logging.Logger) {
	if logger != nil {
		b.logger = logger
	}
}

// GetLogger returns the current logger, falling back to the default one for a
// zero BaseParser.
func (b *BaseParser) GetLogger() logging.Logger {
	if b.logger == nil {
		b.logger = logging.GetLogger()
	}
	return b.logger
}

// WriteToJSON writes a populated tree to path as indented JSON in template order.
func (b *BaseParser) WriteToJSON(root *schema.Node, path string) error {
	b.GetLogger().Debug("Writing populated balance sheet",
		logging.Field{Key: logging.FieldOutputFile, Value: path})
	return common.WriteJSONFile(root, path, b.GetLogger())
}
