package browse

import (
	"context"
	"errors"
	"log/slog"

	"github.com/taibuivan/bookshelf/internal/catalog"
	"github.com/taibuivan/bookshelf/internal/platform/apperr"
	"github.com/taibuivan/bookshelf/internal/platform/constants"
	"github.com/taibuivan/bookshelf/internal/platform/validate"
	"github.com/taibuivan/bookshelf/pkg/pagination"
)

// maxSelectorLength caps genre and author ids accepted from clients.
const maxSelectorLength = 128

// # Inputs & Outputs

// SearchInput is the body of a filter submission.
//
// A genre or author of "any" selects every book; any other value, the empty
// string included, is matched as an id.
type SearchInput struct {
	Title  string `json:"title"`
	Genre  string `json:"genre"`
	Author string `json:"author"`
}

// Filters echoes the criteria a page was computed from.
type Filters struct {
	Title  string `json:"title"`
	Genre  string `json:"genre"`
	Author string `json:"author"`
}

// Page is one response of a session: either the cumulative view or an
// incremental batch, with the pager state after the operation.
type Page struct {
	SessionID string            `json:"session_id"`
	Filters   Filters           `json:"filters"`
	Books     []catalog.Summary `json:"books"`
	Meta      pagination.Meta   `json:"-"`
}

// DefaultSearchInput is the unfiltered submission. Fields omitted from a
// request body keep these values.
func DefaultSearchInput() SearchInput {
	return SearchInput{Genre: catalog.AnyValue, Author: catalog.AnyValue}
}

// # Service

// Service implements the browse operations on top of a shared library.
type Service struct {
	library  *catalog.Library
	store    *Store
	pageSize int
	logger   *slog.Logger
}

// NewService wires a browse service. pageSize is validated on [Service.Start].
func NewService(library *catalog.Library, store *Store, pageSize int, logger *slog.Logger) *Service {
	return &Service{
		library:  library,
		store:    store,
		pageSize: pageSize,
		logger:   logger,
	}
}

// Start opens a session on the unfiltered library and returns its first page.
func (service *Service) Start(ctx context.Context) (Page, error) {
	browser, err := catalog.New(service.library, service.pageSize)
	if err != nil {
		return Page{}, apperr.Internal(err)
	}

	session := service.store.Create(browser)
	service.logger.InfoContext(ctx, "browse_session_started",
		slog.String("session_id", session.ID),
		slog.Int("matches", browser.Matches().Len()),
	)

	return service.page(session.ID, browser, browser.CurrentBatch()), nil
}

// Search applies new filters to a session and returns the first page of the
// resulting match set.
func (service *Service) Search(ctx context.Context, sessionID string, input SearchInput) (Page, error) {
	validator := sessionValidator(sessionID)
	validator.
		MaxLen("title", input.Title, constants.MaxTitleQueryLength).
		MaxLen("genre", input.Genre, maxSelectorLength).
		MaxLen("author", input.Author, maxSelectorLength)
	if err := validator.Err(); err != nil {
		return Page{}, err
	}

	session, err := service.session(sessionID)
	if err != nil {
		return Page{}, err
	}

	request := catalog.FilterRequest{
		Title:  input.Title,
		Genre:  catalog.ParseSelector(input.Genre),
		Author: catalog.ParseSelector(input.Author),
	}

	var page Page
	err = session.With(func(browser *catalog.Catalog) error {
		result := browser.SubmitFilters(request)
		page = service.page(sessionID, browser, result.Batch)

		service.logger.InfoContext(ctx, "browse_filters_submitted",
			slog.String("session_id", sessionID),
			slog.String("genre", request.Genre.String()),
			slog.String("author", request.Author.String()),
			slog.Int("matches", browser.Matches().Len()),
			slog.Bool("empty", result.Empty),
		)
		return nil
	})
	return page, err
}

// More reveals the next batch of a session. Only the newly revealed books are
// returned; an exhausted match set yields a NO_MORE_RESULTS error.
func (service *Service) More(ctx context.Context, sessionID string) (Page, error) {
	session, err := service.validSession(sessionID)
	if err != nil {
		return Page{}, err
	}

	var page Page
	err = session.With(func(browser *catalog.Catalog) error {
		result, err := browser.LoadMore()
		if errors.Is(err, catalog.ErrNoMoreResults) {
			return apperr.NoMoreResults()
		}
		if err != nil {
			return apperr.Internal(err)
		}

		page = service.page(sessionID, browser, result.Batch)
		return nil
	})
	return page, err
}

// View returns every book revealed in a session since its last submission.
func (service *Service) View(ctx context.Context, sessionID string) (Page, error) {
	session, err := service.validSession(sessionID)
	if err != nil {
		return Page{}, err
	}

	var page Page
	err = session.With(func(browser *catalog.Catalog) error {
		page = service.page(sessionID, browser, browser.CurrentBatch())
		return nil
	})
	return page, err
}

// End discards a session.
func (service *Service) End(ctx context.Context, sessionID string) error {
	if err := sessionValidator(sessionID).Err(); err != nil {
		return err
	}

	if !service.store.Delete(sessionID) {
		return apperr.NotFound("Session")
	}

	service.logger.InfoContext(ctx, "browse_session_ended", slog.String("session_id", sessionID))
	return nil
}

// # Helpers

func (service *Service) validSession(sessionID string) (*Session, error) {
	if err := sessionValidator(sessionID).Err(); err != nil {
		return nil, err
	}
	return service.session(sessionID)
}

// sessionValidator starts a chain with the session id checks. A missing id
// reports only the required rule.
func sessionValidator(sessionID string) *validate.Validator {
	validator := &validate.Validator{}
	if validator.Required("session_id", sessionID).HasErrors() {
		return validator
	}
	return validator.UUID("session_id", sessionID)
}

func (service *Service) session(sessionID string) (*Session, error) {
	session, ok := service.store.Get(sessionID)
	if !ok {
		return nil, apperr.NotFound("Session")
	}
	return session, nil
}

func (service *Service) page(sessionID string, browser *catalog.Catalog, batch []catalog.Book) Page {
	filters := browser.Filters()

	return Page{
		SessionID: sessionID,
		Filters: Filters{
			Title:  filters.Title,
			Genre:  filters.Genre.String(),
			Author: filters.Author.String(),
		},
		Books: browser.Summaries(batch),
		Meta:  pagination.NewMeta(browser.PageIndex(), browser.PageSize(), browser.Matches().Len()),
	}
}
