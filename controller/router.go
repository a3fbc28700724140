package controller

import (
	"net/http"

	"portfolio-backend/middleware"
	"portfolio-backend/util"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewRouter mounts every controller behind the shared middleware stack.
func NewRouter(controllers ...*ResourceController) chi.Router {
	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(middleware.RequestLogger)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.SetupCORS())

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		util.WriteErrorResponse(w, http.StatusNotFound, "Not found")
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		util.WriteErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	router.Get("/health", HandleHealth)
	for _, c := range controllers {
		c.Routes(router)
	}
	return router
}

func HandleHealth(w http.ResponseWriter, r *http.Request) {
	util.WriteSuccessResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}
