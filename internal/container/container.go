// Package container provides dependency injection for the balance-sheet application.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"fmt"

	"fjacquet/balance-sheet/internal/batch"
	"fjacquet/balance-sheet/internal/common"
	"fjacquet/balance-sheet/internal/config"
	"fjacquet/balance-sheet/internal/logging"
	"fjacquet/balance-sheet/internal/parser"
	"fjacquet/balance-sheet/internal/pdfparser"
	"fjacquet/balance-sheet/internal/populator"
	"fjacquet/balance-sheet/internal/report"
	"fjacquet/balance-sheet/internal/statement"
	"fjacquet/balance-sheet/internal/store"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation: all fields are private and can only
// be accessed through getter methods.
type Container struct {
	logger    logging.Logger
	config    *config.Config
	store     *store.TemplateStore
	extractor pdfparser.TextExtractor
	populator *populator.Populator
	processor *statement.Processor
	runner    *batch.Runner
	reporter  *report.ReportGenerator

	parsers map[parser.InputKind]parser.Parser
}

// Option customizes how NewContainer builds its dependencies.
type Option func(*options)

type options struct {
	extractor pdfparser.TextExtractor
	loader    store.TemplateLoader
}

// WithExtractor replaces the real PDF text extractor.
func WithExtractor(extractor pdfparser.TextExtractor) Option {
	return func(o *options) { o.extractor = extractor }
}

// WithTemplateLoader replaces the configured template store as the source of
// the template.
func WithTemplateLoader(loader store.TemplateLoader) Option {
	return func(o *options) { o.loader = loader }
}

// NewContainer creates and wires all application dependencies.
// This is the main entry point for dependency injection in the application.
func NewContainer(cfg *config.Config, opts ...Option) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	// Create logger first as it's needed by other components
	logger := logging.NewLogrusAdapterFromLogger(config.ConfigureLoggingFromConfig(cfg))

	common.SetDelimiter(cfg.DelimiterRune())

	templateStore := store.NewTemplateStore(cfg.Template.File, logger)
	o := options{loader: templateStore}
	for _, opt := range opts {
		opt(&o)
	}
	if o.loader == nil {
		o.loader = templateStore
	}

	tmpl, err := o.loader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load template: %w", err)
	}

	extractor := o.extractor
	if extractor == nil {
		extractor = pdfparser.NewRealPDFExtractor()
	}

	pop := populator.NewPopulator(logger, tmpl)
	processor := statement.NewProcessor(pop, logger)
	runner := batch.NewRunner(extractor, processor, cfg.Dirs.Data, cfg.Batch.Workers, logger)

	parsers := map[parser.InputKind]parser.Parser{
		parser.Text: pop,
		parser.PDF:  pdfparser.NewAdapter(logger, extractor, pop),
	}

	logger.Debug("Container initialized successfully",
		logging.Field{Key: "parsers_count", Value: len(parsers)},
		logging.Field{Key: "template_file", Value: cfg.Template.File},
		logging.Field{Key: "workers", Value: cfg.Batch.Workers})

	return &Container{
		logger:    logger,
		config:    cfg,
		store:     templateStore,
		extractor: extractor,
		populator: pop,
		processor: processor,
		runner:    runner,
		reporter:  report.NewReportGenerator(logger),
		parsers:   parsers,
	}, nil
}

// GetParser returns the parser for the given input kind.
func (c *Container) GetParser(kind parser.InputKind) (parser.Parser, error) {
	p, ok := c.parsers[kind]
	if !ok {
		return nil, fmt.Errorf("unknown input kind: %s", kind)
	}
	return p, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetStore returns the template store.
func (c *Container) GetStore() *store.TemplateStore {
	return c.store
}

// GetExtractor returns the PDF text extractor.
func (c *Container) GetExtractor() pdfparser.TextExtractor {
	return c.extractor
}

// GetPopulator returns the populator bound to the loaded template.
func (c *Container) GetPopulator() *populator.Populator {
	return c.populator
}

// GetProcessor returns the statement processor.
func (c *Container) GetProcessor() *statement.Processor {
	return c.processor
}

// GetRunner returns the batch runner.
func (c *Container) GetRunner() *batch.Runner {
	return c.runner
}

// GetReportGenerator returns the accuracy report generator.
func (c *Container) GetReportGenerator() *report.ReportGenerator {
	return c.reporter
}

// Close performs cleanup of container resources.
func (c *Container) Close() error {
	c.logger.Debug("Container closed")
	return nil
}
