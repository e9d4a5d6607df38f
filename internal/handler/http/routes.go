package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const apiPrefix = "/api/letters"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Post(apiPrefix+"/upload", h.upload)
	router.Post(apiPrefix+"/process", h.process)
	router.Get(apiPrefix+"/status", h.status)
	router.Get(apiPrefix+"/download_all", h.downloadAll)
	router.Get(apiPrefix+"/download/{filename}", h.download)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
