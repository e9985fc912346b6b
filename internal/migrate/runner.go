// Package migrate drives the migration of every legal document under a site
// root: it loads the chrome of each locale, transforms every document and
// writes back the ones that changed.
package migrate

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/evera-world/legalmigrate/internal/docset"
	"github.com/evera-world/legalmigrate/internal/journal"
	"github.com/evera-world/legalmigrate/internal/layout"
	"github.com/evera-world/legalmigrate/internal/locale"
	"github.com/evera-world/legalmigrate/internal/progress"
	"github.com/evera-world/legalmigrate/internal/transform"
)

// Options configures a Runner. SiteRoot is required; everything else is
// optional.
type Options struct {
	SiteRoot string
	Exclude  []string
	DryRun   bool
	// Locales restricts the run to these editions; empty means all.
	Locales  []locale.Locale
	Logger   *zap.Logger
	Reporter progress.Reporter
	Journal  *journal.Store
}

// Runner migrates one site.
type Runner struct {
	opts   Options
	logger *zap.Logger
}

// NewRunner creates a Runner.
func NewRunner(opts Options) *Runner {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Reporter == nil {
		opts.Reporter = progress.Discard
	}
	return &Runner{opts: opts, logger: opts.Logger}
}

// Run migrates every document. A chrome extraction failure aborts the run
// before any document is touched and returns a nil Summary. Otherwise every
// document is attempted; the returned error joins the failures of the
// individual documents.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	runID := uuid.New().String()
	log := r.logger.With(zap.String("run_id", runID), zap.Bool("dry_run", r.opts.DryRun))

	entries, err := docset.Resolve(r.opts.SiteRoot)
	if err != nil {
		return nil, err
	}
	locales := r.locales()
	entries = onlyLocales(entries, locales)

	layouts := make(map[locale.Locale]*layout.Fragments, len(locales))
	for _, loc := range locales {
		frags, err := layout.Load(r.opts.SiteRoot, loc)
		if err != nil {
			log.Error("loading reference layout failed", zap.String("locale", loc.String()), zap.Error(err))
			return nil, fmt.Errorf("loading layout: %w", err)
		}
		log.Debug("reference layout loaded",
			zap.String("locale", loc.String()),
			zap.Int("chrome_ids", len(frags.IDs())),
		)
		layouts[loc] = frags
	}

	kept, skipped := docset.Filter(entries, r.opts.Exclude)
	summary := &Summary{RunID: runID, DryRun: r.opts.DryRun}
	var errs []error

	r.opts.Reporter.Start(len(entries))
	done := 0
	finish := func(o Outcome) {
		done++
		summary.Outcomes = append(summary.Outcomes, o)
		r.opts.Reporter.Update(done, o.Entry.RelPath+": "+string(o.Status))
		r.logOutcome(log, o)
		if o.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", o.Entry.RelPath, o.Err))
		}
		if err := r.record(ctx, runID, o); err != nil {
			log.Warn("journal write failed", zap.String("path", o.Entry.RelPath), zap.Error(err))
			errs = append(errs, err)
		}
	}

	for _, e := range skipped {
		finish(Outcome{Entry: e, Status: StatusSkipped})
	}
	for _, e := range kept {
		finish(r.process(e, layouts[e.Locale]))
	}
	r.opts.Reporter.Finish()

	log.Info("migration finished",
		zap.Int("written", summary.Count(StatusWritten)),
		zap.Int("would_write", summary.Count(StatusWouldWrite)),
		zap.Int("unchanged", summary.Count(StatusUnchanged)),
		zap.Int("skipped", summary.Count(StatusSkipped)),
		zap.Int("failed", summary.Count(StatusFailed)),
	)
	return summary, errors.Join(errs...)
}

// locales returns the requested editions in processing order.
func (r *Runner) locales() []locale.Locale {
	if len(r.opts.Locales) == 0 {
		return locale.All
	}
	var out []locale.Locale
	for _, loc := range locale.All {
		for _, want := range r.opts.Locales {
			if loc == want {
				out = append(out, loc)
				break
			}
		}
	}
	return out
}

func onlyLocales(entries []docset.Entry, locales []locale.Locale) []docset.Entry {
	var out []docset.Entry
	for _, e := range entries {
		for _, loc := range locales {
			if e.Locale == loc {
				out = append(out, e)
				break
			}
		}
	}
	return out
}

// process reads, transforms and, when needed, rewrites one document.
func (r *Runner) process(e docset.Entry, frags *layout.Fragments) Outcome {
	o := Outcome{Entry: e}

	src, err := os.ReadFile(e.Path)
	if err != nil {
		o.Status, o.Err = StatusFailed, fmt.Errorf("reading document: %w", err)
		return o
	}
	o.InputHash = docset.ContentHash(src)

	res, err := transform.Transform(src, e.Locale, e.Slug, frags)
	if err != nil {
		o.Status, o.Err = StatusFailed, err
		return o
	}
	o.Shape = res.Shape
	o.AssignedIDs = res.AssignedIDs
	o.OutputHash = docset.ContentHash(res.Output)

	switch {
	case bytes.Equal(src, res.Output):
		o.Status = StatusUnchanged
	case r.opts.DryRun:
		o.Status = StatusWouldWrite
	default:
		if err := writeFileAtomic(e.Path, res.Output); err != nil {
			o.Status, o.Err = StatusFailed, err
			return o
		}
		o.Status = StatusWritten
	}
	return o
}

func (r *Runner) logOutcome(log *zap.Logger, o Outcome) {
	fields := []zap.Field{
		zap.String("locale", o.Entry.Locale.String()),
		zap.String("slug", o.Entry.Slug.String()),
		zap.String("path", o.Entry.RelPath),
		zap.String("status", string(o.Status)),
	}
	if o.Shape != "" {
		fields = append(fields, zap.String("shape", string(o.Shape)))
	}
	if len(o.AssignedIDs) > 0 {
		fields = append(fields, zap.Strings("assigned_ids", o.AssignedIDs))
	}

	if o.Err != nil {
		log.Error("document failed", append(fields, zap.Error(o.Err))...)
		return
	}
	log.Debug("document processed", fields...)
}

func (r *Runner) record(ctx context.Context, runID string, o Outcome) error {
	if r.opts.Journal == nil {
		return nil
	}
	rec := journal.Record{
		RunID:       runID,
		Locale:      o.Entry.Locale.String(),
		Slug:        o.Entry.Slug.String(),
		RelPath:     o.Entry.RelPath,
		Shape:       string(o.Shape),
		Status:      string(o.Status),
		AssignedIDs: o.AssignedIDs,
		InputHash:   o.InputHash,
		OutputHash:  o.OutputHash,
	}
	if o.Err != nil {
		rec.Error = o.Err.Error()
	}
	return r.opts.Journal.Record(ctx, rec)
}
