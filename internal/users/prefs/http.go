// Copyright (c) 2026 WebNDB. All rights reserved.

package prefs

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/webndb/webndb/internal/platform/request"
	"github.com/webndb/webndb/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.getPreferences)
	router.Put("/", handler.savePreferences)
	return router
}

func (handler *Handler) getPreferences(writer http.ResponseWriter, request *http.Request) {
	clientID, err := requestutil.ClientID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	preferences, err := handler.service.GetPreferences(request.Context(), clientID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, preferences)
}

func (handler *Handler) savePreferences(writer http.ResponseWriter, request *http.Request) {
	clientID, err := requestutil.ClientID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var preferences Preferences
	if err := requestutil.DecodeJSON(request, &preferences); err != nil {
		respond.Error(writer, request, err)
		return
	}

	saved, err := handler.service.SavePreferences(request.Context(), clientID, preferences)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, saved)
}
