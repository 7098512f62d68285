// Package validate handles the validate command
package validate

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"

	"fjacquet/balance-sheet/cmd/common"
	"fjacquet/balance-sheet/cmd/root"
	"fjacquet/balance-sheet/internal/container"
	"fjacquet/balance-sheet/internal/fileutils"
	"fjacquet/balance-sheet/internal/logging"
	"fjacquet/balance-sheet/internal/schema"
	"fjacquet/balance-sheet/internal/validation"

	"github.com/spf13/cobra"
)

// Move places the checked file in the validated or mistakes directory.
var Move bool

// Cmd represents the validate command
var Cmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a populated balance sheet",
	Long: `Check that a populated balance sheet balances and report which fields
were not extracted.

With --move the file is moved to the validated directory when it balances,
and to the mistakes directory otherwise.

Example:
  balance-sheet validate -i data/statement_populated.json --move`,
	Run: validateFunc,
}

func init() {
	Cmd.Flags().BoolVar(&Move, "move", false, "Move the file to the validated or mistakes directory")
}

func validateFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()
	appContainer := root.GetContainer()
	if appContainer == nil {
		logger.Fatal("Container not initialized")
	}

	if _, err := run(appContainer, root.SharedFlags.Input, Move, cmd.OutOrStdout()); err != nil {
		logger.Fatalf("Error validating balance sheet: %v", err)
	}
}

// run checks input and returns where the file ended up.
func run(c *container.Container, input string, move bool, out io.Writer) (string, error) {
	if err := validation.IsValidInputFile(input); err != nil {
		return "", err
	}

	data, err := fileutils.ReadFile(input)
	if err != nil {
		return "", err
	}
	populated, err := schema.Load(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to decode %s: %w", input, err)
	}

	res, err := c.GetProcessor().Analyze(filepath.Base(input), populated)
	if err != nil {
		return "", err
	}
	if err := common.PrintValidation(out, res); err != nil {
		return "", err
	}

	if !move {
		return input, nil
	}

	dirs := c.GetConfig().Dirs
	dstDir := dirs.Mistakes
	if res.Balance.IsBalanced {
		_, _ = fmt.Fprintf(out, "Balance sheet is VALID. Moving to %s folder.\n", dirs.Validated)
		dstDir = dirs.Validated
	} else {
		_, _ = fmt.Fprintf(out, "Balance sheet is INVALID. Moving to %s folder.\n", dirs.Mistakes)
	}

	dst, err := fileutils.MoveFile(input, dstDir)
	if err != nil {
		return "", err
	}
	c.GetLogger().Info("Moved balance sheet",
		logging.Field{Key: logging.FieldInputFile, Value: input},
		logging.Field{Key: logging.FieldOutputFile, Value: dst},
		logging.Field{Key: logging.FieldBalanced, Value: res.Balance.IsBalanced})
	return dst, nil
}
