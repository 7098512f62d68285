// Package template handles the template command
package template

import (
	"fmt"
	"io"

	"fjacquet/balance-sheet/cmd/root"
	"fjacquet/balance-sheet/internal/container"

	"github.com/spf13/cobra"
)

// DefaultOutput is written when no -o is given.
const DefaultOutput = "template.json"

// Cmd represents the template command
var Cmd = &cobra.Command{
	Use:   "template",
	Short: "Write the balance-sheet template",
	Long: `Write the template in use, the configured one or the built-in default,
as JSON. The file can be edited and passed back with --template or
template.file.

Example:
  balance-sheet template -o template.json`,
	Run: templateFunc,
}

func templateFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()
	appContainer := root.GetContainer()
	if appContainer == nil {
		logger.Fatal("Container not initialized")
	}

	if _, err := run(appContainer, root.SharedFlags.Output, cmd.OutOrStdout()); err != nil {
		logger.Fatalf("Error writing template: %v", err)
	}
}

func run(c *container.Container, output string, out io.Writer) (string, error) {
	if output == "" {
		output = DefaultOutput
	}
	if err := c.GetStore().Save(c.GetPopulator().Template(), output); err != nil {
		return "", err
	}
	_, _ = fmt.Fprintf(out, "Template saved to: %s\n", output)
	return output, nil
}
