// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/asset-tracker/internal/app"
	"github.com/MKhiriev/asset-tracker/internal/utils"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// Chi's default behaviour is to respond with HTTP 405 whenever a request path
// matches a registered route but the method is not handled. This handler
// responds with 404 instead, hiding the route from callers that use an
// unsupported method. The lookup goes through [chi.Mux.Match], so
// parameterised patterns such as /assets/{id} and mounted sub-routers are
// resolved the same way the router resolves them.
//
// If the method IS registered for the path, the request is forwarded to the
// router's normal ServeHTTP pipeline.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		notFound(w, r)
	}
}

// notFound writes a JSON 404 body in the shape of every other API error.
func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteError(w, http.StatusNotFound, app.MsgNotFound, nil)
}
