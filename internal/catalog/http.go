package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/bookshelf/internal/platform/apperr"
	requestutil "github.com/taibuivan/bookshelf/internal/platform/request"
	"github.com/taibuivan/bookshelf/internal/platform/respond"
)

// # Handler Implementation

// Handler serves the read-only parts of a [Library]: picker options and the
// detail view of a single book.
type Handler struct {
	library *Library
}

// NewHandler constructs a catalog [Handler] over library.
func NewHandler(library *Library) *Handler {
	return &Handler{library: library}
}

// Routes returns a [chi.Router] with the catalog's lookup endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/genres", handler.listGenres)
	router.Get("/authors", handler.listAuthors)
	router.Get("/books/{id}", handler.getBook)

	return router
}

func (handler *Handler) listGenres(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.library.GenreOptions())
}

func (handler *Handler) listAuthors(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.library.AuthorOptions())
}

func (handler *Handler) getBook(writer http.ResponseWriter, request *http.Request) {
	detail, ok := handler.library.Detail(requestutil.Param(request, "id"))
	if !ok {
		respond.Error(writer, request, apperr.NotFound("Book"))
		return
	}
	respond.OK(writer, detail)
}
