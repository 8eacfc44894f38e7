package main

import (
	"encoding/json"
	"log"
	"net/http"
)

// problem is the error envelope used for every non-2xx response.
type problem struct {
	Title  string            `json:"title"`
	Detail string            `json:"detail,omitempty"`
	Status int               `json:"status"`
	Errors map[string]string `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Println(err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(data)
}

func writeProblem(w http.ResponseWriter, statusCode int, title, detail string) {
	h := w.Header()
	h.Del("Content-Length")
	h.Set("X-Content-Type-Options", "nosniff")
	writeJSON(w, statusCode, problem{
		Title:  title,
		Detail: detail,
		Status: statusCode,
	})
}

func writeValidationProblem(w http.ResponseWriter, v *validator) {
	writeJSON(w, http.StatusBadRequest, problem{
		Title:  "Validation failed",
		Status: http.StatusBadRequest,
		Errors: v.errors,
	})
}

func writeBadRequest(w http.ResponseWriter, detail string) {
	writeProblem(w, http.StatusBadRequest, "Bad request", detail)
}

func writeUnauthorized(w http.ResponseWriter, detail string) {
	writeProblem(w, http.StatusUnauthorized, "Unauthorized", detail)
}

func writeServerError(w http.ResponseWriter, err error) {
	log.Println(err)
	writeProblem(w, http.StatusInternalServerError, "Internal server error", "something went wrong processing the request")
}

func writeTaskNotFound(w http.ResponseWriter, id string) {
	writeProblem(w, http.StatusNotFound, "Task not found", "task "+id+" doesn't exist")
}
