// Package pdf handles PDF text extraction commands
package pdf

import (
	"fmt"
	"io"

	"fjacquet/balance-sheet/cmd/root"
	"fjacquet/balance-sheet/internal/batch"
	"fjacquet/balance-sheet/internal/container"
	"fjacquet/balance-sheet/internal/fileutils"
	"fjacquet/balance-sheet/internal/logging"
	"fjacquet/balance-sheet/internal/pdfparser"

	"github.com/spf13/cobra"
)

// Cmd represents the pdf command
var Cmd = &cobra.Command{
	Use:   "pdf",
	Short: "Extract the text of PDF statements",
	Long: `Extract the text of a PDF statement, or of every PDF below a directory,
into "<name>_text.txt" files ready for the populate command.

Example:
  balance-sheet pdf -i downloads/ -o data/`,
	Run: pdfFunc,
}

func pdfFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()
	appContainer := root.GetContainer()
	if appContainer == nil {
		logger.Fatal("Container not initialized")
	}

	if _, err := run(appContainer, root.SharedFlags.Input, root.SharedFlags.Output, cmd.OutOrStdout()); err != nil {
		logger.Fatalf("Error extracting PDF text: %v", err)
	}
}

// run converts input, a PDF or a directory of PDFs, and returns the written
// text files. A directory run skips the documents that fail.
func run(c *container.Container, input, outputDir string, out io.Writer) ([]string, error) {
	logger := c.GetLogger()
	if input == "" {
		return nil, fmt.Errorf("an input file or directory must be specified with -i")
	}
	if outputDir == "" {
		outputDir = c.GetConfig().Dirs.Data
	}

	if !fileutils.DirectoryExists(input) {
		written, err := pdfparser.ConvertToText(input, outputDir, c.GetExtractor(), logger)
		if err != nil {
			return nil, err
		}
		_, _ = fmt.Fprintf(out, "Saved text to: %s\n", written)
		return []string{written}, nil
	}

	files, err := batch.DiscoverPDFs(input)
	if err != nil {
		return nil, err
	}
	_, _ = fmt.Fprintf(out, "Found %d PDF files to process\n", len(files))

	stems := pdfparser.UniqueStems(files)
	var written []string
	for i, file := range files {
		_, _ = fmt.Fprintf(out, "Processing PDF %d/%d: %s\n", i+1, len(files), file)
		path, err := pdfparser.ConvertToTextAs(file, outputDir, stems[i], c.GetExtractor(), logger)
		if err != nil {
			logger.WithError(err).Error("Failed to extract PDF text",
				logging.Field{Key: logging.FieldFile, Value: file})
			continue
		}
		_, _ = fmt.Fprintf(out, "  -> Saved text to: %s\n", path)
		written = append(written, path)
	}
	_, _ = fmt.Fprintf(out, "Processed %d PDF files\n", len(files))
	return written, nil
}
