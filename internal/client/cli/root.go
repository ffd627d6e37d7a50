// Package cli is the cobra command tree of the campusfind binary. Running
// the bare command starts the terminal UI; subcommands cover one-shot,
// scriptable operations such as registration.
package cli

import (
	"fmt"
	"os"
	"time"

	"campusfind/internal/client/api"
	"campusfind/internal/client/config"
	"campusfind/internal/client/services"
	"campusfind/internal/client/session"
	"campusfind/internal/client/tui"
	"campusfind/internal/logging"

	"github.com/spf13/cobra"
)

// App carries flag values and the wired dependencies shared by all
// commands.
type App struct {
	cfg *config.Config
	log logging.Logger

	serverURL string
	timeout   time.Duration
	logFile   string
	// configFile is consumed by the config loader before cobra parses;
	// the flag is registered so it shows in help and does not error.
	configFile string

	logClose func() error
}

// NewRootCmd builds the command tree on top of the layered configuration.
// Flags win over config file and environment.
func NewRootCmd(cfg *config.Config) *cobra.Command {
	app := &App{cfg: cfg}

	cmd := &cobra.Command{
		Use:          "campusfind",
		Short:        "Terminal client for the CampusFind lost-and-found portal",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := app.wire(cmd)
			if err != nil {
				return err
			}
			return tui.Run(deps)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if app.logClose != nil {
				return app.logClose()
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&app.serverURL, "server", "a", cfg.ServerURL, "base URL of the portal API")
	cmd.PersistentFlags().DurationVarP(&app.timeout, "timeout", "t", cfg.RequestTimeout, "per-request timeout")
	cmd.PersistentFlags().StringVarP(&app.configFile, "config", "c", "", "path to a JSON config file")
	cmd.PersistentFlags().StringVar(&app.logFile, "log", cfg.LogFile, "debug log file (empty disables logging)")

	cmd.AddCommand(newRegisterCmd(app))
	cmd.AddCommand(newVersionCmd())
	return cmd
}

// wire applies flag overrides onto the loaded config and builds the
// session, gateway, and services.
func (a *App) wire(cmd *cobra.Command) (tui.Deps, error) {
	if cmd.Flags().Changed("server") {
		a.cfg.ServerURL = a.serverURL
	}
	if cmd.Flags().Changed("timeout") {
		a.cfg.RequestTimeout = a.timeout
	}
	if cmd.Flags().Changed("log") {
		a.cfg.LogFile = a.logFile
	}

	a.log = logging.NewDiscardLogger()
	if a.cfg.LogFile != "" {
		f, err := os.OpenFile(a.cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return tui.Deps{}, fmt.Errorf("open log file: %w", err)
		}
		a.log = logging.NewFileLogger(f)
		a.logClose = f.Close
	}

	sess := session.New()
	client := api.NewHTTPClient(a.cfg.ServerURL, a.cfg.RequestTimeout, a.log)

	return tui.Deps{
		Session:  sess,
		Auth:     services.NewAuthService(client, sess),
		Items:    services.NewItemService(client),
		Messages: services.NewMessageService(client),
		ACM:      services.NewACMService(client),
		Log:      a.log,
	}, nil
}
