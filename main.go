package main

import (
	"fmt"
	"os"
	"strings"

	"fjacquet/balance-sheet/cmd/batch"
	"fjacquet/balance-sheet/cmd/pdf"
	"fjacquet/balance-sheet/cmd/populate"
	"fjacquet/balance-sheet/cmd/root"
	"fjacquet/balance-sheet/cmd/template"
	"fjacquet/balance-sheet/cmd/validate"
	"fjacquet/balance-sheet/internal/config"
	"fjacquet/balance-sheet/internal/logging"

	"github.com/sirupsen/logrus"
)

func init() {
	// 1. Load .env before anything logs
	config.LoadEnv()

	// 2. Set the global log level early; PersistentPreRun refines it from config
	logging.SetAllLogLevels(logLevelFromEnv())

	// 3. Initialize root command and add all subcommands
	root.Init()
	root.Cmd.AddCommand(populate.Cmd)
	root.Cmd.AddCommand(validate.Cmd)
	root.Cmd.AddCommand(pdf.Cmd)
	root.Cmd.AddCommand(batch.Cmd)
	root.Cmd.AddCommand(template.Cmd)
}

// logLevelFromEnv reads BSHEET_LOG_LEVEL, defaulting to info.
func logLevelFromEnv() logrus.Level {
	level, err := logrus.ParseLevel(strings.ToLower(config.GetEnv(config.EnvPrefix+"_LOG_LEVEL", "info")))
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
