package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/claude/ironlog/internal/api"
	"github.com/claude/ironlog/internal/auth"
	"github.com/claude/ironlog/internal/config"
	"github.com/claude/ironlog/internal/tui"
	"github.com/spf13/cobra"
	"tailscale.com/tsnet"
)

var (
	configPath string
	verbose    bool

	buildVersion = "dev"
)

var rootCmd = &cobra.Command{
	Use:   "ironlog",
	Short: "Terminal client for the IronLog training tracker",
	Long: `ironlog is a terminal client for the IronLog training tracker.
Run it with no arguments to open the interactive UI: home stats, the
exercise catalog, a live workout session with a rest timer, history,
and quick logging.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	DisableAutoGenTag: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := setup()
		if err != nil {
			return err
		}
		defer app.Close()

		if !app.provider.SignedIn(cmd.Context()) {
			return fmt.Errorf("not signed in: run `ironlog login` first")
		}
		return tui.Run(cmd.Context(), app.client, app.log)
	},
}

// Execute is the entry point called from main.
func Execute(version string) {
	buildVersion = version
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/ironlog/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(loginCmd, signupCmd, confirmCmd, resendCmd, logoutCmd, mcpCmd, versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(buildVersion)
	},
}

// app bundles the wired dependencies shared by the commands.
type app struct {
	cfg      *config.Config
	log      *slog.Logger
	store    *auth.Store
	provider *auth.Provider
	client   *api.Client

	tsServer *tsnet.Server
}

func (a *app) Close() {
	if a.tsServer != nil {
		a.tsServer.Close()
	}
	if a.store != nil {
		a.store.Close()
	}
}

func setup() (*app, error) {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	store, err := auth.OpenStore(cfg.Auth.StateDir)
	if err != nil {
		return nil, fmt.Errorf("opening session store: %w", err)
	}

	provider := auth.NewProvider(cfg.Auth.ProviderURL, cfg.Auth.ClientID, store, log)
	client := api.New(cfg.API.BaseURL, provider, log)

	a := &app{cfg: cfg, log: log, store: store, provider: provider, client: client}

	// Deployments that expose the API only on the tailnet need requests
	// dialed through tsnet.
	if cfg.Tailscale.Enabled {
		ts := &tsnet.Server{
			Hostname: cfg.Tailscale.Hostname,
			Dir:      cfg.Tailscale.StateDir,
		}
		if err := ts.Start(); err != nil {
			store.Close()
			return nil, fmt.Errorf("tsnet start: %w", err)
		}
		client.SetHTTPClient(ts.HTTPClient())
		a.tsServer = ts
		log.Info("tsnet transport enabled", "hostname", cfg.Tailscale.Hostname)
	}

	return a, nil
}
