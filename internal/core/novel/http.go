package novel

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/webndb/webndb/internal/platform/apperr"
	requestutil "github.com/webndb/webndb/internal/platform/request"
	"github.com/webndb/webndb/internal/platform/respond"
	"github.com/webndb/webndb/pkg/pagination"
	"github.com/webndb/webndb/pkg/query"
	"github.com/webndb/webndb/pkg/slice"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.listNovels)
	router.Post("/", handler.createNovel)
	router.Get("/{id}", handler.getNovel)
	router.Patch("/{id}", handler.updateNovel)
	router.Get("/{id}/releases", handler.listReleases)
	return router
}

// listNovels handles GET /?status=ongoing,completed&original_language=ja.
func (handler *Handler) listNovels(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	filter := ListFilter{
		Statuses: slice.Map(query.StringSlice(request.URL.Query().Get("status")),
			func(s string) Status { return Status(s) }),
		Languages: slice.Map(query.StringSlice(request.URL.Query().Get("original_language")),
			func(s string) Language { return Language(s) }),
	}

	items, total, err := handler.service.ListNovels(request.Context(), filter, params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, items, pagination.NewMeta(params.Page, params.Limit, total))
}

func (handler *Handler) getNovel(writer http.ResponseWriter, request *http.Request) {
	id, err := parseNovelID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.GetNovel(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, result)
}

func (handler *Handler) createNovel(writer http.ResponseWriter, request *http.Request) {
	var input CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.CreateNovel(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}

func (handler *Handler) updateNovel(writer http.ResponseWriter, request *http.Request) {
	id, err := parseNovelID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input UpdateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.UpdateNovel(request.Context(), id, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *Handler) listReleases(writer http.ResponseWriter, request *http.Request) {
	id, err := parseNovelID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	params := pagination.FromRequest(request)

	releases, total, err := handler.service.ListReleases(request.Context(), id, params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, releases, pagination.NewMeta(params.Page, params.Limit, total))
}

// parseNovelID extracts and validates the {id} URL parameter.
func parseNovelID(request *http.Request) (int64, error) {
	raw := requestutil.Param(request, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, apperr.ValidationError("Invalid novel ID")
	}
	return id, nil
}
