// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog/internal/app"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/utils"
)

// methodNotAllowed is registered as the router's MethodNotAllowed handler
// via [chi.Mux.MethodNotAllowed].
//
// Chi's default behaviour is to respond with HTTP 405 Method Not Allowed
// whenever a request path matches a registered route but the HTTP method
// is not handled. This handler answers with the same 404 envelope as for an
// unknown path instead, which hides the existence of the route from callers
// that use an unsupported method.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Debug().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("method is not registered for route")

	notFound(w, r)
}

// notFound writes the 404 envelope for unknown routes.
func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, app.MsgRouteNotFound, http.StatusNotFound)
}
