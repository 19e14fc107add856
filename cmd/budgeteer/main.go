// Command budgeteer is the offline command-line front end: catalog search,
// store comparison, shopping lists and the AI helpers over the same services
// the API serves.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ghuser/budgeteer/pkg/app"
	"github.com/ghuser/budgeteer/pkg/cache"
	"github.com/ghuser/budgeteer/pkg/config"
	"github.com/ghuser/budgeteer/pkg/logger"
	"github.com/ghuser/budgeteer/pkg/upstream"
	assistSvcs "github.com/ghuser/budgeteer/services/assist/application/services"
	catalogSvcs "github.com/ghuser/budgeteer/services/catalog/application/services"
	listSvcs "github.com/ghuser/budgeteer/services/shoppinglist/application/services"
)

func main() {
	if err := newRootCmd(&cli{}).Execute(); err != nil {
		os.Exit(1)
	}
}

// cli carries flags and lazily wired services across subcommands.
type cli struct {
	cfg     *config.Config
	verbose bool
	asJSON  bool
	shopper string

	catalogSource string
	csvPath       string
	listStore     string

	a       *app.Application
	catalog *catalogSvcs.Services
	lists   *listSvcs.Services
	assist  *assistSvcs.Services
	closers []func() error
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:           "budgeteer",
		Short:         "Compare grocery prices across stores",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.loadConfig()
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return c.close()
		},
	}

	f := root.PersistentFlags()
	f.BoolVarP(&c.verbose, "verbose", "v", false, "log at info level to stderr")
	f.BoolVar(&c.asJSON, "json", false, "print JSON instead of tables")
	f.StringVar(&c.shopper, "shopper", "local", "shopping list owner id")
	f.StringVar(&c.catalogSource, "catalog", "", "catalog source: backend, csv or synthetic (default from CATALOG_SOURCE)")
	f.StringVar(&c.csvPath, "csv", "", "catalog CSV path; implies --catalog=csv")
	f.StringVar(&c.listStore, "list-store", "", "shopping list store: memory, redis or postgres (default memory)")

	root.AddCommand(
		newSearchCmd(c),
		newCompareCmd(c),
		newListCmd(c),
		newAssistCmd(c),
		newMigrateCmd(c),
	)
	return root
}

// loadConfig reads the environment unless a config was injected, then
// applies flag overrides. Lists default to memory so the CLI runs without
// Redis.
func (c *cli) loadConfig() error {
	if c.cfg == nil {
		cfg, err := config.LoadEnv()
		if err != nil {
			return err
		}
		cfg.ShoppingListStore = config.StoreMemory
		c.cfg = cfg
	}
	if c.csvPath != "" {
		c.cfg.CatalogSource, c.cfg.CatalogCSVPath = config.CatalogSourceCSV, c.csvPath
	}
	if c.catalogSource != "" {
		c.cfg.CatalogSource = c.catalogSource
	}
	if c.listStore != "" {
		c.cfg.ShoppingListStore = c.listStore
	}
	if c.verbose {
		c.cfg.LogLevel = "info"
	} else {
		c.cfg.LogLevel = "warn"
	}
	return config.Validate(c.cfg)
}

// services wires the application once per invocation.
func (c *cli) services(ctx context.Context) error {
	if c.catalog != nil {
		return nil
	}
	log := logger.NewWithWriter(c.cfg, os.Stderr)
	c.a = &app.Application{
		Config: c.cfg,
		Logger: log,
		Upstream: upstream.NewClient(c.cfg.BackendURL, upstream.Options{
			Timeout:   c.cfg.BackendTimeout,
			RateLimit: c.cfg.BackendRateLimit,
		}, log),
	}

	switch c.cfg.ShoppingListStore {
	case config.StoreRedis:
		rc, err := cache.NewRedisClient(c.cfg)
		if err != nil {
			return err
		}
		c.a.Redis = rc
		c.closers = append(c.closers, rc.Close)
	case config.StorePostgres:
		db, err := openDatabase(ctx, c.cfg, log)
		if err != nil {
			return err
		}
		c.a.Db = db
		c.closers = append(c.closers, func() error { db.Close(); return nil })
	}

	catalog := catalogSvcs.New(c.a)
	if _, err := catalog.Catalog.Load(ctx); err != nil {
		return err
	}
	lists, err := listSvcs.New(c.a, catalog.Catalog)
	if err != nil {
		return err
	}
	c.catalog, c.lists = catalog, lists
	c.assist = assistSvcs.New(c.a, catalog.Catalog, lists.List)
	return nil
}

func (c *cli) close() error {
	var first error
	for _, fn := range c.closers {
		if err := fn(); err != nil && first == nil {
			first = err
		}
	}
	c.closers = nil
	return first
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
