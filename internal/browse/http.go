package browse

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/bookshelf/internal/platform/request"
	"github.com/taibuivan/bookshelf/internal/platform/respond"
)

// # Handler Implementation

// Handler translates session HTTP requests into [Service] calls.
type Handler struct {
	service *Service
}

// NewHandler constructs a browse [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the session endpoints.
//
// # Routing
//
//   - POST /            open a session, 201 with the first page
//   - GET /{id}         every book shown since the last search
//   - POST /{id}/search submit filters, first page of the new match set
//   - POST /{id}/more   next batch only, 409 once exhausted
//   - DELETE /{id}      discard the session
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", handler.startSession)
	router.Get("/{id}", handler.viewSession)
	router.Post("/{id}/search", handler.search)
	router.Post("/{id}/more", handler.loadMore)
	router.Delete("/{id}", handler.endSession)

	return router
}

func (handler *Handler) startSession(writer http.ResponseWriter, request *http.Request) {
	page, err := handler.service.Start(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.PaginatedCreated(writer, page, page.Meta)
}

func (handler *Handler) viewSession(writer http.ResponseWriter, request *http.Request) {
	page, err := handler.service.View(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, page, page.Meta)
}

func (handler *Handler) search(writer http.ResponseWriter, request *http.Request) {
	input := DefaultSearchInput()
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	page, err := handler.service.Search(request.Context(), requestutil.Param(request, "id"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, page, page.Meta)
}

func (handler *Handler) loadMore(writer http.ResponseWriter, request *http.Request) {
	page, err := handler.service.More(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, page, page.Meta)
}

func (handler *Handler) endSession(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.End(request.Context(), requestutil.Param(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
