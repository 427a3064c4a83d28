// Package search runs a brewery search from form submission to rendered
// results.
package search

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"brewfinder/internal/models"
	"brewfinder/internal/render"
	"brewfinder/internal/validation"
)

// Form is a submitted search form.
type Form struct {
	Query string `query:"q" form:"q" json:"q" validate:"max=100"`
	Type  string `query:"type" form:"type" json:"type" validate:"brewery_type"`
}

// Directory fetches breweries for a classified query.
type Directory interface {
	Search(ctx context.Context, q models.Query) ([]models.Brewery, error)
}

// History records the visitor's searches.
type History interface {
	Record(query string) error
	Recent() []string
}

// ErrorSurface displays the inline error after the form.
type ErrorSurface interface {
	ShowError(message string)
	ClearError()
}

// Surface is everything a search draws onto.
type Surface interface {
	render.CardSurface
	ErrorSurface
	Markers() render.MapSurface
}

// OutcomeFunc is told the outcome of every submission.
type OutcomeFunc func(kind, outcome string)

// Controller handles search form submissions.
type Controller struct {
	directory Directory
	outcome   OutcomeFunc
	log       *slog.Logger
}

// NewController creates a search controller. outcome may be nil.
func NewController(directory Directory, outcome OutcomeFunc, log *slog.Logger) *Controller {
	if outcome == nil {
		outcome = func(string, string) {}
	}
	if log == nil {
		log = slog.Default()
	}
	return &Controller{directory: directory, outcome: outcome, log: log}
}

// OnSubmit runs one search. The query is recorded in history before the
// directory is asked, so failed searches are remembered too. Markers and
// cards are cleared at the start of every search cycle and stay empty on
// failure. The returned error is one of ErrEmptyInput, ErrNoResults or
// ErrFetchFailed; its message has already been shown on surface.
func (c *Controller) OnSubmit(ctx context.Context, form Form, history History, surface Surface) (models.Query, error) {
	surface.ClearError()

	raw := validation.NormalizeQuery(form.Query)
	if raw == "" {
		return models.Query{}, c.fail(surface, models.KindNone, models.OutcomeEmptyInput, ErrEmptyInput)
	}

	q := models.NewQuery(raw, form.Type)
	log := c.log.With("search_id", uuid.NewString(), "kind", q.Kind, "type", q.Type)

	if err := history.Record(q.Raw); err != nil {
		log.Warn("failed to persist search history", "error", err)
	}

	surface.Markers().Clear()
	surface.ClearCards()

	records, err := c.directory.Search(ctx, q)
	if err != nil {
		log.Error("brewery search failed", "error", err)
		return q, c.fail(surface, q.Kind, models.OutcomeFetchFailed, fmt.Errorf("%w: %w", ErrFetchFailed, err))
	}

	if len(records) == 0 {
		log.Info("brewery search returned no results")
		return q, c.fail(surface, q.Kind, models.OutcomeNoResults, ErrNoResults)
	}

	surface.ClearError()
	render.New(surface, surface.Markers()).Render(records)

	log.Debug("brewery search rendered", "results", len(records))
	c.outcome(string(q.Kind), models.OutcomeOK)
	return q, nil
}

// fail counts the outcome and shows the message for err.
func (c *Controller) fail(surface ErrorSurface, kind models.QueryKind, outcome string, err error) error {
	c.outcome(string(kind), outcome)
	surface.ShowError(Message(err))
	return err
}
