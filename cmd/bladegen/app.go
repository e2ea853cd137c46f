package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/bladegen/bladegen/config"
	"github.com/bladegen/bladegen/gen"
	"github.com/bladegen/bladegen/inspect"
	"github.com/bladegen/bladegen/plan"
)

// app carries the resolved configuration and generation options shared
// by the verbs.
type app struct {
	cfg      *config.Config
	log      *logrus.Logger
	atlasURL string
	cacheDir string
	cacheTTL time.Duration
	workers  int
	dryRun   bool
}

func newApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return &app{
		cfg:      cfg,
		log:      log,
		atlasURL: flagAtlasURL,
		cacheDir: flagCacheDir,
		cacheTTL: flagCacheTTL,
		workers:  flagWorkers,
	}, nil
}

// source opens the configured schema source. The returned cleanup
// closes the underlying connection.
func (a *app) source(ctx context.Context) (inspect.Source, func(), error) {
	if a.atlasURL != "" {
		src, err := inspect.OpenAtlas(ctx, a.atlasURL)
		if err != nil {
			return nil, nil, err
		}
		return a.cached(src, a.atlasURL), func() { src.Close() }, nil
	}
	src, db, err := inspect.Open(a.cfg.Driver, a.cfg.DSN)
	if err != nil {
		return nil, nil, err
	}
	return a.cached(src, a.cfg.DSN), func() { db.Close() }, nil
}

func (a *app) cached(src inspect.Source, dsn string) inspect.Source {
	if a.cacheDir == "" {
		return src
	}
	return inspect.WithCache(src, inspect.NewCache(a.cacheDir, a.cacheTTL), dsn)
}

func (a *app) generateTable(ctx context.Context, src inspect.Source, table string) error {
	tbl, err := src.Table(ctx, table)
	if err != nil {
		return err
	}
	flags, err := a.cfg.PlanFeatures()
	if err != nil {
		return err
	}
	cats, err := a.cfg.PlanCategories()
	if err != nil {
		return err
	}
	vars, err := gen.Vars(tbl.Name, tbl.Columns, flags, a.cfg.Framework)
	if err != nil {
		return err
	}
	entries := plan.Manifest(tbl.Name, cats, flags)

	store, err := gen.NewStore(a.cfg.Framework)
	if err != nil {
		return err
	}
	if a.cfg.StubDir != "" {
		store.WithDir(a.cfg.StubDir)
	}
	w := gen.NewWriter(store, a.cfg.Output).
		WithWorkers(a.workers).
		WithForce(a.cfg.Force).
		WithBackup(a.cfg.Backup).
		WithDryRun(a.dryRun).
		WithLogger(a.log)

	if existing := w.Existing(entries); len(existing) > 0 && !a.cfg.Force && !a.dryRun {
		a.log.WithFields(logrus.Fields{
			"table": table,
			"count": len(existing),
		}).Warn("existing files will be skipped; use --force to overwrite")
	}
	res, err := w.Generate(ctx, entries, vars)
	if err != nil {
		return err
	}
	a.log.WithFields(logrus.Fields{
		"table":   table,
		"written": len(res.Written),
		"skipped": len(res.Skipped),
	}).Info("table done")
	return nil
}
