// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is the MethodNotAllowed handler of the router. A path
// served under another method is answered with 404 rather than 405, so
// service paths cannot be discovered with GET.
//
// Only literal route patterns are compared; parameterised store routes
// always get 404.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, route := range flatten(router.Routes(), "") {
			if route.Pattern != r.URL.Path {
				continue
			}
			if _, ok := route.Handlers[r.Method]; ok {
				router.ServeHTTP(w, r)
				return
			}
			break
		}
		w.WriteHeader(http.StatusNotFound)
	}
}

// flatten expands mounted sub-routers into full patterns.
func flatten(routes []chi.Route, prefix string) []chi.Route {
	var out []chi.Route
	for _, route := range routes {
		pattern := prefix + route.Pattern
		if route.SubRoutes != nil {
			sub := pattern
			if len(sub) >= 2 && sub[len(sub)-2:] == "/*" {
				sub = sub[:len(sub)-2]
			}
			out = append(out, flatten(route.SubRoutes.Routes(), sub)...)
			continue
		}
		out = append(out, chi.Route{Pattern: pattern, Handlers: route.Handlers})
	}
	return out
}
