// Copyright (c) 2026 WebNDB. All rights reserved.

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/webndb/webndb/internal/platform/apperr"
	"github.com/webndb/webndb/internal/platform/ctxutil"
	"github.com/webndb/webndb/internal/platform/validate"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: interface{} (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
Param retrieves a named URL parameter (ID/Slug) from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
ClientID returns the anonymous client identifier attached by the ClientID
middleware.

Returns:
  - string: Client ID (UUID)
  - error: apperr.ValidationError if the middleware did not run
*/
func ClientID(request *http.Request) (string, error) {
	clientID := ctxutil.GetClientID(request.Context())
	if clientID == "" {
		return "", apperr.ValidationError("Missing client identity")
	}
	return clientID, nil
}
