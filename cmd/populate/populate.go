// Package populate handles the populate command
package populate

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"fjacquet/balance-sheet/cmd/common"
	"fjacquet/balance-sheet/cmd/root"
	"fjacquet/balance-sheet/internal/container"
	"fjacquet/balance-sheet/internal/parser"
	"fjacquet/balance-sheet/internal/pdfparser"
	"fjacquet/balance-sheet/internal/populator"
	"fjacquet/balance-sheet/internal/store"

	"github.com/spf13/cobra"
)

// TemplateFile overrides the configured template for this run.
var TemplateFile string

// Cmd represents the populate command
var Cmd = &cobra.Command{
	Use:   "populate",
	Short: "Populate the balance-sheet template from a statement",
	Long: `Populate the balance-sheet template from the text of a statement.

The input may be an extracted text file (.txt) or a PDF, whose text is
extracted first. Fields that cannot be found are left at zero.

Example:
  balance-sheet populate -i data/statement_text.txt -o data/statement_populated.json`,
	Run: populateFunc,
}

func init() {
	Cmd.Flags().StringVar(&TemplateFile, "template", "", "Template file (JSON or YAML) overriding the configured one")
}

func populateFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()
	appContainer := root.GetContainer()
	if appContainer == nil {
		logger.Fatal("Container not initialized")
	}

	if err := run(appContainer, root.SharedFlags.Input, root.SharedFlags.Output, TemplateFile, root.SharedFlags.Validate, cmd.OutOrStdout()); err != nil {
		logger.Fatalf("Error populating balance sheet: %v", err)
	}
}

func run(c *container.Container, input, output, templateFile string, validate bool, out io.Writer) error {
	logger := c.GetLogger()
	if input == "" {
		return fmt.Errorf("an input file must be specified with -i")
	}
	if output == "" {
		output = DefaultOutput(c.GetConfig().Dirs.Data, input)
	}

	kind, err := parser.DetectInputKind(input)
	if err != nil {
		return err
	}

	p, err := c.GetParser(kind)
	if err != nil {
		return err
	}
	if templateFile != "" {
		tmpl, err := store.NewTemplateStore(templateFile, logger).Load()
		if err != nil {
			return err
		}
		pop := populator.NewPopulator(logger, tmpl)
		p = pop
		if kind == parser.PDF {
			p = pdfparser.NewAdapter(logger, c.GetExtractor(), pop)
		}
	}

	populated, err := common.ProcessFile(p, input, output, validate, logger)
	if err != nil {
		return err
	}

	common.PrintPopulationSummary(out, populated)
	_, _ = fmt.Fprintf(out, "Populated balance sheet saved to: %s\n", output)
	return nil
}

// DefaultOutput names the populated JSON for input inside dataDir. A trailing
// "_text" on the input stem is dropped.
func DefaultOutput(dataDir, input string) string {
	stem := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	stem = strings.TrimSuffix(stem, "_text")
	return filepath.Join(dataDir, stem+"_populated.json")
}
