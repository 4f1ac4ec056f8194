package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/hilite"
	"github.com/iw2rmb/hilite/internal/log"
)

type options struct {
	contactsPath string
	debug        bool
	logPath      string
	noColor      bool
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:     "hilite-demo",
		Short:   "Search a contact list with prefix and dial-pad highlighting",
		Version: hilite.Version(),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.contactsPath, "contacts", "f", "", "YAML contacts file (default: built-in sample)")
	cmd.Flags().BoolVarP(&opts.debug, "debug", "d", false, "write a debug log (also enabled by HILITE_DEBUG)")
	cmd.Flags().StringVar(&opts.logPath, "log-file", "hilite-debug.log", "debug log path")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "disable colors and text attributes")
	return cmd
}

func run(opts options) error {
	if opts.debug || os.Getenv("HILITE_DEBUG") != "" {
		cleanup, err := log.Init(opts.logPath, "hilite")
		if err != nil {
			return err
		}
		defer cleanup()
	}

	contacts := defaultContacts()
	if opts.contactsPath != "" {
		loaded, err := loadContacts(opts.contactsPath)
		if err != nil {
			log.ErrorErr(log.CatConfig, "load contacts", err, "path", opts.contactsPath)
			return err
		}
		contacts = loaded
	}
	log.Info(log.CatConfig, "starting", "contacts", len(contacts), "version", hilite.Version())

	r := lipgloss.DefaultRenderer()
	if opts.noColor {
		r.SetColorProfile(termenv.Ascii)
	}

	p := tea.NewProgram(newModel(contacts, r), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
