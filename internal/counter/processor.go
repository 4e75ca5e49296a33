package counter

import (
	"context"
	"log/slog"

	"fillercount/internal/episodes"
	"fillercount/internal/logging"
	"fillercount/internal/services"
	"fillercount/internal/textutil"
)

// Episode categories looked up on every show page.
const (
	CategoryFiller = "filler"
	CategoryCanon  = "canon"
)

// Page is a fetched show page.
type Page interface {
	// Field returns the raw episode list text for a category label.
	Field(category string) (string, bool)
}

// titledPage is implemented by pages that know the show's display title.
type titledPage interface {
	Title() string
}

// Fetcher retrieves the page for a show slug. Implementations report an
// unknown show with an error wrapping services.ErrNotFound.
type Fetcher interface {
	Fetch(ctx context.Context, show string) (Page, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, show string) (Page, error)

func (f FetcherFunc) Fetch(ctx context.Context, show string) (Page, error) {
	return f(ctx, show)
}

// Options configures a Processor.
type Options struct {
	// Strict rejects episode lists that fail the grammar check.
	Strict bool
	// NormalizeNames converts show titles into page slugs before fetching.
	NormalizeNames bool
	Logger         *slog.Logger
}

// Processor counts filler and canon episodes for show requests.
type Processor struct {
	fetcher   Fetcher
	strict    bool
	normalize bool
	logger    *slog.Logger
}

// Tally is the outcome for one episode category.
type Tally struct {
	Category string
	// Present is false when the page has no list for the category.
	Present    bool
	Text       string
	WellFormed bool
	Episodes   episodes.RangeSet
	Count      int
}

// Result holds the counts for one show.
type Result struct {
	Request Request
	Slug    string
	// Title is the page heading when the page exposes one.
	Title  string
	Filler Tally
	Canon  Tally
}

// Total returns the filler and canon counts combined.
func (r *Result) Total() int {
	return r.Filler.Count + r.Canon.Count
}

// Outcome is the result or failure for one batch argument.
type Outcome struct {
	Request Request
	Result  *Result
	Err     error
}

// Status classifies the outcome.
func (o Outcome) Status() services.Outcome {
	return services.Classify(o.Err)
}

// NewProcessor constructs a Processor that reads pages through fetcher.
func NewProcessor(fetcher Fetcher, opts Options) *Processor {
	return &Processor{
		fetcher:   fetcher,
		strict:    opts.Strict,
		normalize: opts.NormalizeNames,
		logger:    logging.NewComponentLogger(opts.Logger, "counter"),
	}
}

// Process fetches the page for req and counts its filler and canon episodes
// within req.Bound.
func (p *Processor) Process(ctx context.Context, req Request) (*Result, error) {
	slug := req.Show
	if p.normalize {
		slug = textutil.ShowSlug(req.Show)
		if slug == "" {
			return nil, &ArgumentError{Arg: req.Arg, Reason: "show name has no letters or digits"}
		}
	}
	ctx = services.WithShow(ctx, slug)
	logger := logging.WithContext(ctx, p.logger)

	logger.Debug("fetching show page", logging.String("bound", req.Bound.String()))
	page, err := p.fetcher.Fetch(ctx, slug)
	if err != nil {
		return nil, err
	}

	result := &Result{Request: req, Slug: slug}
	if titled, ok := page.(titledPage); ok {
		result.Title = titled.Title()
	}
	if result.Filler, err = p.tally(ctx, page, slug, CategoryFiller, req.Bound); err != nil {
		return nil, err
	}
	if result.Canon, err = p.tally(ctx, page, slug, CategoryCanon, req.Bound); err != nil {
		return nil, err
	}
	logger.Info("show counted",
		logging.Int("filler", result.Filler.Count),
		logging.Int("canon", result.Canon.Count),
		logging.Int("total", result.Total()),
	)
	return result, nil
}

func (p *Processor) tally(ctx context.Context, page Page, slug, category string, bound episodes.Bound) (Tally, error) {
	ctx = services.WithCategory(ctx, category)
	logger := logging.WithContext(ctx, p.logger)

	text, ok := page.Field(category)
	tally := Tally{Category: category, Present: ok, Text: text}
	if !ok {
		logger.Info("category missing from page; counting as empty")
		tally.WellFormed = true
		tally.Episodes = episodes.RangeSet{}
		return tally, nil
	}

	tally.WellFormed = episodes.IsWellFormed(text)
	if !tally.WellFormed {
		if p.strict {
			return tally, services.Wrap(services.ErrFormat, slug, "validate "+category, "",
				&episodes.FormatError{Input: text, Reason: "episode list does not match the expected grammar"})
		}
		logging.WarnWithContext(logger, "episode list is malformed; counting anyway", "episode_text_malformed",
			logging.String("text", text),
			logging.String(logging.FieldImpact, "count may be inaccurate"),
			logging.String(logging.FieldErrorHint, "rerun with --strict to treat this as an error"),
		)
	}

	set, err := episodes.Parse(text)
	if err != nil {
		return tally, services.Wrap(services.ErrFormat, slug, "parse "+category, "", err)
	}
	tally.Episodes = set.Clip(bound)
	tally.Count = tally.Episodes.Count()
	logger.Debug("episodes counted",
		logging.Int("parsed", set.Count()),
		logging.Int("count", tally.Count),
	)
	return tally, nil
}

// Run processes args one at a time and calls report for each. Failures are
// reported and do not stop the batch; only context cancellation does. It
// returns the number of failed arguments.
func (p *Processor) Run(ctx context.Context, args []string, report func(Outcome)) (int, error) {
	failed := 0
	for _, arg := range args {
		if err := ctx.Err(); err != nil {
			return failed, err
		}
		outcome := p.runOne(ctx, arg)
		if outcome.Err != nil {
			failed++
			p.logFailure(ctx, outcome)
		}
		if report != nil {
			report(outcome)
		}
	}
	return failed, nil
}

// logFailure logs expected per-show failures at info level and transport or
// unclassified failures as errors.
func (p *Processor) logFailure(ctx context.Context, outcome Outcome) {
	logger := logging.WithContext(services.WithShow(ctx, outcome.Request.Show), p.logger)
	status := outcome.Status()
	switch status {
	case services.OutcomeFetchError, services.OutcomeError:
		logging.ErrorWithContext(logger, "show fetch failed", "show_fetch_failed",
			logging.String("arg", outcome.Request.Arg),
			logging.String("outcome", string(status)),
			logging.Error(outcome.Err),
			logging.String(logging.FieldErrorHint, "check network access and source.base_url"),
		)
	default:
		logger.Info("show failed",
			logging.String("arg", outcome.Request.Arg),
			logging.String("outcome", string(status)),
			logging.Error(outcome.Err),
		)
	}
}

func (p *Processor) runOne(ctx context.Context, arg string) Outcome {
	req, err := ParseRequest(arg)
	if err != nil {
		return Outcome{Request: Request{Arg: arg}, Err: err}
	}
	result, err := p.Process(ctx, req)
	if err != nil {
		return Outcome{Request: req, Err: err}
	}
	return Outcome{Request: req, Result: result}
}
