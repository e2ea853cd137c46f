// bladegen inspects a database schema and scaffolds Blade CRUD views
// for each table: index/show/create/edit pages, reusable components,
// form partials, layouts and table partials, in Bootstrap or Tailwind
// flavor.
package main

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	// Database drivers used by the schema inspector.
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/bladegen/bladegen/config"
)

var (
	flagConfig     string
	flagEnv        string
	flagDriver     string
	flagDSN        string
	flagAtlasURL   string
	flagFramework  string
	flagOutput     string
	flagStubDir    string
	flagFeatures   []string
	flagCategories []string
	flagCacheDir   string
	flagCacheTTL   time.Duration
	flagWorkers    int
	flagVerbose    bool
)

var log = logrus.New()

// rootCmd is the base command; every verb hangs off it.
var rootCmd = &cobra.Command{
	Use:   "bladegen",
	Short: "Generate Blade CRUD views from a database schema",
	Long: "bladegen reads table definitions from MySQL, Postgres or SQLite and renders " +
		"Blade view files (CRUD pages, components, forms, layouts and table partials) " +
		"from customizable stubs.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		if flagVerbose {
			log.SetLevel(logrus.DebugLevel)
		}
		if err := config.LoadEnvFile(flagEnv); err != nil {
			log.WithError(err).Warn("env file not loaded")
		}
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "path to a bladegen.yaml config file")
	pf.StringVar(&flagEnv, "env", ".env", "path to a .env file with DB_* variables")
	pf.StringVar(&flagDriver, "driver", "", "database driver: mysql, postgres or sqlite")
	pf.StringVar(&flagDSN, "dsn", "", "database connection string")
	pf.StringVar(&flagAtlasURL, "url", "", "inspect through Atlas using a database URL instead of --driver/--dsn")
	pf.StringVar(&flagFramework, "framework", "", "UI framework: bootstrap or tailwind")
	pf.StringVar(&flagOutput, "output", "", "output directory for generated views")
	pf.StringVar(&flagStubDir, "stub-dir", "", "directory of custom stubs shadowing the embedded set")
	pf.StringSliceVar(&flagFeatures, "features", nil, "feature switches (search,sorting,ajax,...)")
	pf.StringSliceVar(&flagCategories, "categories", nil, "view categories (crud,components,forms,layouts,tables)")
	pf.StringVar(&flagCacheDir, "cache-dir", "", "cache schema snapshots under this directory")
	pf.DurationVar(&flagCacheTTL, "cache-ttl", time.Hour, "snapshot cache expiry")
	pf.IntVar(&flagWorkers, "workers", 0, "parallel file writers (0 = GOMAXPROCS)")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
}

// loadConfig resolves the effective configuration for a command run:
// defaults, then the config file, then environment, then flags.
func loadConfig() (*config.Config, error) {
	var opts []config.Option
	if flagFramework != "" {
		opts = append(opts, config.WithFramework(flagFramework))
	}
	if flagOutput != "" {
		opts = append(opts, config.WithOutput(flagOutput))
	}
	if flagDriver != "" || flagDSN != "" {
		opts = append(opts, config.WithDatabase(flagDriver, flagDSN))
	}
	if len(flagFeatures) > 0 {
		opts = append(opts, config.WithFeatures(flagFeatures...))
	}
	cfg, err := config.Load(flagConfig, opts...)
	if err != nil {
		return nil, err
	}
	if len(flagCategories) > 0 {
		cfg.Categories = flagCategories
	}
	if flagStubDir != "" {
		cfg.StubDir = flagStubDir
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Error("command failed")
		os.Exit(1)
	}
}
