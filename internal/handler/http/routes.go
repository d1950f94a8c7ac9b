// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withMetrics, withGZip)
	if h.timeout > 0 {
		router.Use(middleware.Timeout(h.timeout))
	}

	router.Get("/version", h.getServerVersion)
	router.Method("GET", "/metrics", promhttp.HandlerFor(h.registry, promhttp.HandlerOpts{DisableCompression: true}))

	router.Route("/api/v0", func(r chi.Router) {
		r.Post("/session", h.login)

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(h.authSession)

			r.Delete("/session", h.logout)
			r.Post("/session/keepalive", h.keepAlive)

			r.Route("/container", func(r chi.Router) {
				r.Post("/hierarchy", serve(h.loadContainerHierarchy))
				r.Post("/hierarchies", serve(h.findContainerHierarchies))
				r.Post("/annotations", serve(h.findAnnotations))
				r.Post("/images", serve(h.getImages))
				r.Post("/user-images", serve(h.getUserImages))
				r.Post("/count", serve(h.getCollectionCount))
			})

			r.Route("/query", func(r chi.Router) {
				r.Post("/get", serve(h.get))
				r.Post("/find", serve(h.find))
				r.Post("/find-all", serve(h.findAll))
				r.Post("/find-links", serve(h.findLinks))
			})

			r.Route("/update", func(r chi.Router) {
				r.Post("/save", serve(h.save))
				r.Post("/save-array", serve(h.saveArray))
				r.Post("/delete", serve(h.delete))
			})

			r.Route("/admin", func(r chi.Router) {
				r.Post("/event-context", serve(h.getEventContext))
				r.Post("/experimenter", serve(h.getExperimenter))
				r.Post("/experimenters", serve(h.lookupExperimenters))
				r.Post("/groups", serve(h.lookupGroups))
				r.Post("/update-self", serve(h.updateSelf))
				r.Post("/password", serve(h.changePassword))
			})

			r.Route("/repository", func(r chi.Router) {
				r.Post("/used", serve(h.getUsedSpace))
				r.Post("/free", serve(h.getFreeSpace))
			})

			r.Route("/stores", func(r chi.Router) {
				r.Post("/", h.createStore)
				r.Delete("/{handle}", h.closeStore)
				r.Post("/{handle}/{method}", h.callStore)
			})
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
