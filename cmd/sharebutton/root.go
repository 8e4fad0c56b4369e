package main

import (
	"context"
	"fmt"
	"net"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/its-jojoo/sharebutton/internal/adapter/storage"
	"github.com/its-jojoo/sharebutton/internal/adapter/storage/memory"
	"github.com/its-jojoo/sharebutton/internal/adapter/storage/sqlite"
	"github.com/its-jojoo/sharebutton/internal/api"
	"github.com/its-jojoo/sharebutton/internal/config"
	"github.com/its-jojoo/sharebutton/internal/logutil"
	"github.com/its-jojoo/sharebutton/internal/usecase/share"
)

func newRootCmd() *cobra.Command {
	v := config.New()
	var configFile string

	cmd := &cobra.Command{
		Use:   "sharebutton",
		Short: "Example share target server for the Android share button.",
		Long: `Serves the share button protocol: clients fetch /api/config to learn ` +
			`where to send content, then POST shares to /api/share. Shares are ` +
			`kept in memory and dropped when the process exits.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.LoadDotEnv(); err != nil {
				return err
			}
			cfg, err := config.Load(v, configFile)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configFile, "config", "", "config file (default searches ./sharebutton.yaml and /etc/sharebutton/)")
	flags.Int("port", config.DefaultPort, "port to listen on")
	flags.Bool("debug", false, "enable debug logging")
	flags.String("store", config.StoreMemory, "share store backend: memory or sqlite (in-memory)")
	flags.String("public-host", config.DefaultPublicHost, "host advertised in the config endpoint")

	bindFlags(v, cmd, map[string]string{
		"port":        "port",
		"debug":       "debug",
		"store":       "store",
		"public-host": "publicHost",
	})

	return cmd
}

func bindFlags(v *viper.Viper, cmd *cobra.Command, keys map[string]string) {
	for flag, key := range keys {
		_ = v.BindPFlag(key, cmd.Flags().Lookup(flag))
	}
}

func run(parent context.Context, cfg *config.Config) error {
	log := logutil.New(cfg.Debug)

	st, err := openStore(cfg.Store)
	if err != nil {
		return err
	}
	defer st.Close()

	target := cfg.ShareTarget()
	srv := api.NewServer(share.New(st, log), target, log)

	l, err := net.Listen("tcp", cfg.ListenAddr())
	if err != nil {
		return errors.Wrapf(err, "listen on %s", cfg.ListenAddr())
	}

	printBanner(log, cfg)

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Serve(ctx, l); err != nil {
		log.WithError(err).Error("server stopped")
		return err
	}
	log.Info("server stopped")
	return nil
}

func openStore(kind string) (storage.Store, error) {
	switch kind {
	case config.StoreSQLite:
		return sqlite.OpenMemory()
	default:
		return memory.New(), nil
	}
}

func printBanner(log *logrus.Logger, cfg *config.Config) {
	base := fmt.Sprintf("http://%s:%d", cfg.PublicHost, cfg.Port)

	log.WithFields(logrus.Fields{
		"addr":  cfg.ListenAddr(),
		"store": cfg.Store,
		"debug": cfg.Debug,
	}).Info("Share button example server running")
	log.Infof("GET  %s/api/config  - Configuration", base)
	log.Infof("POST %s/api/share   - Receive shares", base)
	log.Infof("GET  %s/api/shares  - View all shares", base)
	log.Infof("GET  %s/health      - Health check", base)
	log.Infof("Point the app at http://<this machine's IP>:%d/api/config", cfg.Port)
	if !cfg.Debug {
		log.Info("Debug logging is off; set DEBUG=1 to enable it")
	}
}
