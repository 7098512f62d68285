package parser

import (
	"io"

	"fjacquet/balance-sheet/internal/logging"
	"fjacquet/balance-sheet/internal/schema"
)

// Parser turns the flattened text of a statement into a populated balance-sheet tree.
type Parser interface {
	// Parse reads the whole text from r. Fields that cannot be located are left at
	// zero; an error is returned only when the template itself is malformed.
	Parse(r io.Reader) (*schema.Node, error)
}

// LoggerConfigurable is implemented by components whose logger can be replaced
// after construction.
type LoggerConfigurable interface {
	SetLogger(logger logging.Logger)
}
