package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/apex/log"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
	"github.com/subosito/gotenv"

	"github.com/c2fo/netstorage/backend/ftp"
	"github.com/c2fo/netstorage/cache"
	"github.com/c2fo/netstorage/config"
	"github.com/c2fo/netstorage/logging"
	"github.com/c2fo/netstorage/nssimple"
	"github.com/c2fo/netstorage/options"
)

// storageOptions are applied to every storage the registry builds.
var storageOptions []options.NewFileSystemOption[ftp.Storage]

type app struct {
	configPath string
	envFile    string
	logLevel   string

	cfg      *config.Config
	registry *config.Registry
	store    cache.Store
}

// setup loads the env file and configuration, then configures logging.
func (a *app) setup() error {
	if a.envFile != "" {
		if err := gotenv.Load(a.envFile); err != nil {
			return err
		}
	}

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	if err := logging.Setup(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	}); err != nil {
		return err
	}

	a.cfg = cfg
	a.registry = config.NewRegistry(cfg.Storages, storageOptions...)
	return nil
}

func (a *app) storage(uri string) (*ftp.Storage, string, error) {
	return nssimple.NewStorage(a.registry, uri)
}

func (a *app) cacheStore() (cache.Store, error) {
	if a.store != nil {
		return a.store, nil
	}
	store, err := config.CreateCacheStore(&a.cfg.Cache)
	if err != nil {
		return nil, err
	}
	a.store = store
	return store, nil
}

func (a *app) close() error {
	var result *multierror.Error
	if a.registry != nil {
		if err := a.registry.Close(); err != nil {
			result = multierror.Append(result, err)
		}
	}
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			result = multierror.Append(result, err)
		}
	}
	if err := logging.Close(); err != nil {
		result = multierror.Append(result, err)
	}
	return result.ErrorOrNil()
}

// newRootCmd builds the command tree around a fresh app.
func newRootCmd() (*cobra.Command, *app) {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "netstorage",
		Short: "Work with FTP content stores and their local tree cache",
		Long: `netstorage reads and writes files on FTP content stores configured by storage key,
and mirrors the directory structure of a store into a local cache.

Remote paths are URIs of the form ns://<storage-key>/<path>.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default is "+config.GetDefaultConfigPath()+")")
	rootCmd.PersistentFlags().StringVar(&a.envFile, "env-file", "", "dotenv file loaded before the configuration")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "overrides logging.level")

	rootCmd.AddCommand(
		newSyncCmd(a),
		newTreeCmd(a),
		newLsCmd(a),
		newGetCmd(a),
		newPutCmd(a),
		newRmCmd(a),
		newExistsCmd(a),
		newSizeCmd(a),
		newURLCmd(a),
	)
	return rootCmd, a
}

// run executes args against a fresh command tree and releases everything it opened.
func run(ctx context.Context, args []string) error {
	rootCmd, a := newRootCmd()
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(ctx)
	if closeErr := a.close(); closeErr != nil {
		log.WithError(closeErr).Warn("shutdown")
	}
	return err
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:])
	stop()
	if err != nil {
		os.Exit(1)
	}
}
