// Copyright (c) 2026 WebNDB. All rights reserved.

package search

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/webndb/webndb/internal/platform/request"
	"github.com/webndb/webndb/internal/platform/respond"
	"github.com/webndb/webndb/internal/search/filter"
	"github.com/webndb/webndb/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes mounts the search-session surface.
//
// Mutations return the full snapshot so the client can re-render the whole
// filter panel from one response instead of tracking per-field deltas.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/session", handler.createSession)
	router.Route("/session/{sid}", func(router chi.Router) {
		router.Get("/", handler.getSnapshot)
		router.Delete("/", handler.closeSession)

		router.Post("/selections", handler.addSelection)
		router.Delete("/selections", handler.removeSelection)
		router.Post("/tags/{slug}/toggle", handler.toggleTag)
		router.Put("/bounds/{criterion}", handler.setBoundValue)
		router.Post("/bounds/{criterion}/toggle", handler.toggleBoundMode)
		router.Put("/sort", handler.setSort)
		router.Put("/dates/{bound}", handler.setReleaseDate)
		router.Post("/reset", handler.reset)

		router.Get("/results", handler.results)
	})

	return router
}

// sessionResponse is returned on session creation.
type sessionResponse struct {
	SessionID string          `json:"session_id"`
	State     filter.Snapshot `json:"state"`
}

// tagToggleResponse reports where the toggled tag landed alongside the state.
type tagToggleResponse struct {
	Slug  string          `json:"slug"`
	State string          `json:"state"`
	Full  filter.Snapshot `json:"full_state"`
}

type selectionPayload struct {
	Category string `json:"category"`
	Value    string `json:"value"`
}

type boundPayload struct {
	// Value carries the raw form input; empty or garbage coerces to 0.
	Value string `json:"value"`
}

type sortPayload struct {
	Key string `json:"key"`
}

type datePayload struct {
	// Date is YYYY-MM-DD, or empty to clear the bound.
	Date string `json:"date"`
}

func (handler *Handler) createSession(writer http.ResponseWriter, request *http.Request) {
	id, snap := handler.service.CreateSession()
	respond.Created(writer, sessionResponse{SessionID: id, State: snap})
}

func (handler *Handler) getSnapshot(writer http.ResponseWriter, request *http.Request) {
	snap, err := handler.service.GetSnapshot(requestutil.Param(request, "sid"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, snap)
}

func (handler *Handler) closeSession(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.CloseSession(requestutil.Param(request, "sid")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) addSelection(writer http.ResponseWriter, request *http.Request) {
	var payload selectionPayload
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	snap, err := handler.service.AddSelection(
		requestutil.Param(request, "sid"), filter.Category(payload.Category), payload.Value)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, snap)
}

func (handler *Handler) removeSelection(writer http.ResponseWriter, request *http.Request) {
	var payload selectionPayload
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	snap, err := handler.service.RemoveSelection(
		requestutil.Param(request, "sid"), filter.Category(payload.Category), payload.Value)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, snap)
}

func (handler *Handler) toggleTag(writer http.ResponseWriter, request *http.Request) {
	slug := requestutil.Param(request, "slug")

	state, snap, err := handler.service.ToggleTag(requestutil.Param(request, "sid"), slug)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, tagToggleResponse{Slug: slug, State: state.String(), Full: snap})
}

func (handler *Handler) setBoundValue(writer http.ResponseWriter, request *http.Request) {
	var payload boundPayload
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	snap, err := handler.service.SetBoundValue(
		requestutil.Param(request, "sid"),
		filter.Criterion(requestutil.Param(request, "criterion")),
		payload.Value)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, snap)
}

func (handler *Handler) toggleBoundMode(writer http.ResponseWriter, request *http.Request) {
	snap, err := handler.service.ToggleBoundMode(
		requestutil.Param(request, "sid"),
		filter.Criterion(requestutil.Param(request, "criterion")))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, snap)
}

func (handler *Handler) setSort(writer http.ResponseWriter, request *http.Request) {
	var payload sortPayload
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	snap, err := handler.service.SetSort(
		requestutil.Param(request, "sid"), filter.SortKey(payload.Key))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, snap)
}

func (handler *Handler) setReleaseDate(writer http.ResponseWriter, request *http.Request) {
	var payload datePayload
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	snap, err := handler.service.SetReleaseDate(
		requestutil.Param(request, "sid"),
		requestutil.Param(request, "bound"),
		payload.Date)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, snap)
}

func (handler *Handler) reset(writer http.ResponseWriter, request *http.Request) {
	snap, err := handler.service.Reset(requestutil.Param(request, "sid"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, snap)
}

func (handler *Handler) results(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	results, total, err := handler.service.Search(
		request.Context(), requestutil.Param(request, "sid"), params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, results, pagination.NewMeta(params.Page, params.Limit, total))
}
