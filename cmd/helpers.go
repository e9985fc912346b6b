package cmd

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/evera-world/legalmigrate/internal/config"
	"github.com/evera-world/legalmigrate/internal/journal"
	"github.com/evera-world/legalmigrate/internal/locale"
	"github.com/evera-world/legalmigrate/internal/migrate"
	"github.com/evera-world/legalmigrate/internal/progress"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `legalmigrate init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func currentLogger() *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

// openJournal opens the configured journal. It returns nil values when the
// journal is disabled.
func openJournal(cfg *config.Config) (*journal.DB, *journal.Store, error) {
	path := cfg.JournalFile()
	if path == "" {
		return nil, nil, nil
	}
	database, err := journal.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening journal: %w", err)
	}
	return database, journal.NewStore(database), nil
}

// parseLocales converts --locale values into editions.
func parseLocales(raw []string) ([]locale.Locale, error) {
	var out []locale.Locale
	for _, r := range raw {
		loc, ok := locale.Parse(r)
		if !ok {
			return nil, fmt.Errorf("unknown locale %q: must be one of en, ru", r)
		}
		out = append(out, loc)
	}
	return out, nil
}

// runMigration runs one migration over the configured site.
func runMigration(ctx context.Context, cfg *config.Config, locales []locale.Locale, withJournal bool) (*migrate.Summary, error) {
	opts := migrate.Options{
		SiteRoot: cfg.SiteRoot,
		Exclude:  cfg.Exclude,
		DryRun:   cfg.DryRun,
		Locales:  locales,
		Logger:   currentLogger(),
		Reporter: progress.NewReporter(),
	}
	if withJournal {
		database, store, err := openJournal(cfg)
		if err != nil {
			return nil, err
		}
		if database != nil {
			defer database.Close()
			opts.Logger.Debug("journal opened", zap.String("path", database.Path()))
			opts.Journal = store
		}
	}
	return migrate.NewRunner(opts).Run(ctx)
}

// printSummary writes a per-document report followed by the totals.
func printSummary(w io.Writer, s *migrate.Summary) {
	if s == nil {
		return
	}
	for _, o := range s.Outcomes {
		if o.Status == migrate.StatusUnchanged || o.Status == migrate.StatusSkipped {
			continue
		}
		line := fmt.Sprintf("  %-12s %s", o.Status, o.Entry.RelPath)
		if len(o.AssignedIDs) > 0 {
			line += fmt.Sprintf(" (+%d heading ids)", len(o.AssignedIDs))
		}
		if o.Err != nil {
			line += ": " + o.Err.Error()
		}
		fmt.Fprintln(w, line)
	}
	fmt.Fprintf(w, "\n%d written, %d would write, %d unchanged, %d skipped, %d failed\n",
		s.Count(migrate.StatusWritten),
		s.Count(migrate.StatusWouldWrite),
		s.Count(migrate.StatusUnchanged),
		s.Count(migrate.StatusSkipped),
		s.Count(migrate.StatusFailed),
	)
}
