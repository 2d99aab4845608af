// Package cli is the scriptable command surface. Running cardapio with no
// subcommand starts the interactive TUI.
package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"cardapio-cli/internal/api"
	"cardapio-cli/internal/config"
	"cardapio-cli/internal/session"
	"cardapio-cli/internal/tui"
)

// App carries the composition-root state shared by all commands. The
// restaurant id lives in the session store, never in a global.
type App struct {
	Config  *config.Config
	Client  *api.Client
	Session session.Store
	Log     zerolog.Logger

	// Flag overrides.
	apiURL  string
	dataDir string
	yes     bool
	asJSON  bool
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "cardapio",
		Short:        "Restaurant menu administration (CLI + TUI)",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive console
  cardapio

  # Scriptable commands
  cardapio login --email owner@example.com
  cardapio categories list
  cardapio products pause <product-id>
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.HasSubCommands() && len(args) == 0 {
				return tui.Run(app.Client, app.Session, app.Config.Timeout)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.apiURL, "api", "", "API base URL (overrides config)")
	cmd.PersistentFlags().StringVar(&app.dataDir, "data-dir", "", "local data directory (overrides config)")
	cmd.PersistentFlags().BoolVar(&app.yes, "yes", false, "skip confirmation prompts")
	cmd.PersistentFlags().BoolVar(&app.asJSON, "json", false, "machine-readable output where supported")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if app.apiURL != "" {
			cfg.APIBaseURL = strings.TrimRight(app.apiURL, "/")
		}
		if app.dataDir != "" {
			cfg.DataDir = app.dataDir
		}
		app.Config = cfg

		level, err := zerolog.ParseLevel(cfg.LogLevel)
		if err != nil {
			level = zerolog.WarnLevel
		}
		app.Log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).
			With().Timestamp().Logger()

		app.Client = api.NewClient(api.Config{
			BaseURL: cfg.APIBaseURL,
			Timeout: cfg.Timeout,
			Logger:  app.Log,
		})
		app.Session = session.Store{Dir: cfg.DataDir}
		return nil
	}

	cmd.AddCommand(newLoginCmd(app))
	cmd.AddCommand(newLogoutCmd(app))
	cmd.AddCommand(newRestaurantsCmd(app))
	cmd.AddCommand(newUsersCmd(app))
	cmd.AddCommand(newCategoriesCmd(app))
	cmd.AddCommand(newProductsCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

// opCtx is the context for one remote operation.
func (app *App) opCtx() (context.Context, context.CancelFunc) {
	timeout := 15 * time.Second
	if app.Config != nil && app.Config.Timeout > 0 {
		timeout = app.Config.Timeout
	}
	return context.WithTimeout(context.Background(), timeout)
}

// restaurantID loads the stored tenant id or explains how to get one.
func (app *App) restaurantID(ctx context.Context) (string, error) {
	id, err := app.Session.RestaurantID(ctx)
	if err != nil {
		return "", fmt.Errorf("%w (run `cardapio login` or `cardapio restaurants register`)", err)
	}
	return id, nil
}

// confirmDestructive prompts y/N on stdin unless --yes was passed.
func (app *App) confirmDestructive(cmd *cobra.Command, prompt string) bool {
	if app.yes {
		return true
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N]: ", prompt)
	var answer string
	_, _ = fmt.Fscanln(cmd.InOrStdin(), &answer)
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
