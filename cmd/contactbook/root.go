// Root command for the contactbook CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tartampluch/go-contactbook/internal/book"
	"github.com/tartampluch/go-contactbook/internal/config"
	"github.com/tartampluch/go-contactbook/internal/dispatch"
)

// Global flag values.
var (
	flagDebug     bool
	flagBook      string
	flagConfigDir string
	flagLang      string
)

// settings holds the configuration loaded by PersistentPreRunE, with flag
// overrides already applied.
var settings *config.Settings

var rootCmd = &cobra.Command{
	Use:     config.BinaryName,
	Short:   "Contactbook is an interactive personal phone directory",
	Version: config.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogging(flagDebug)
		logStartupInfo()

		configDir, err := config.ResolveConfigDir(flagConfigDir)
		if err != nil {
			return err
		}

		settings, err = config.LoadSettings(configDir)
		if err != nil {
			return err
		}

		if flagBook != "" {
			settings.BookPath = flagBook
		}
		if flagLang != "" {
			settings.Language = flagLang
		}
		return nil
	},
	RunE: runRoot,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagDebug, config.FlagDebug, false, config.FlagDescDebug)
	rootCmd.PersistentFlags().StringVar(&flagBook, config.FlagBook, "", config.FlagDescBook)
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, config.FlagConfigDir, "", config.FlagDescConfigDir)
	rootCmd.PersistentFlags().StringVar(&flagLang, config.FlagLang, "", config.FlagDescLang)

	rootCmd.AddCommand(versionCmd)
}

// runRoot loads the address book and runs the interpreter loop until exit.
func runRoot(cmd *cobra.Command, args []string) error {
	b := book.NewAddressBook(settings.PageSize)
	if err := b.Load(settings.BookPath); err != nil {
		return fmt.Errorf("load address book: %w", err)
	}

	tr := dispatch.NewTranslator(settings.Language)
	d := dispatch.NewDispatcher(b, book.RealClock{}, tr, settings.BookPath, settings.ReminderTrigger)
	repl := dispatch.NewREPL(d, os.Stdin, os.Stdout)

	return repl.Run(cmd.Context())
}
