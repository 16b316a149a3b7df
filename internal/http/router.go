package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"classroom-relay/internal/handlers"
	"classroom-relay/internal/service"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	CompletionService service.CompletionService
	LMSService        service.LMSService
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(LoggerMiddleware)
	r.Use(RequestLogger)
	r.Use(Recoverer)
	r.Use(CORS)

	askHandler := handlers.NewAskHandler(deps.CompletionService)
	promptHandler := handlers.NewPromptHandler(deps.CompletionService)
	lmsHandler := handlers.NewLMSHandler(deps.LMSService)

	r.Method(http.MethodPost, "/ask", askHandler)
	r.Method(http.MethodPost, "/checkAnswer", promptHandler)
	r.Method(http.MethodPost, "/question-generator", promptHandler)

	r.Post("/canvasProxy", lmsHandler.Course)
	r.Get("/sections", lmsHandler.Sections)
	r.Post("/sections", lmsHandler.Sections)
	r.Get("/students", lmsHandler.Students)
	r.Post("/students", lmsHandler.Students)
	r.Post("/announcements", lmsHandler.Announcements)

	r.Get("/test", handlers.Ping)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSONError(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSONError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	return r
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"error":"` + message + `"}` + "\n"))
}
