package main

import (
	"net/http"
)

func composeRoutes(app *application) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthcheck", app.healthCheckHandler)

	mux.HandleFunc("POST /auth/register", app.registerUserHandler)
	mux.HandleFunc("POST /auth/login", app.loginUserHandler)

	mux.HandleFunc("GET /tasks", app.requireAuth(app.getTasksHandler))
	mux.HandleFunc("POST /tasks", app.requireAuth(app.createTaskHandler))
	mux.HandleFunc("GET /tasks/{id}", app.requireAuth(app.getTaskHandler))
	mux.HandleFunc("POST /tasks/{id}", app.requireAuth(app.updateTaskHandler))
	mux.HandleFunc("DELETE /tasks/{id}", app.requireAuth(app.deleteTaskHandler))

	var handler http.Handler = app.enableCORS(mux)
	if app.config.env == "production" {
		handler = redirectToTLS(handler)
	}
	if app.config.limiter.enabled {
		handler = app.rateLimit(handler)
	}
	return recoverPanic(handler)
}
