package main

import (
	"net/http"

	"github.com/google/uuid"
)

func (app *application) getTasksHandler(w http.ResponseWriter, r *http.Request) {
	u := getUserFromRequest(r)
	if u == nil {
		writeUnauthorized(w, "authentication required")
		return
	}
	tasks, err := app.store.getTasksForUser(u.ID)
	if err != nil {
		writeServerError(w, err)
		return
	}
	res := make([]taskResponse, 0, len(tasks))
	for i := range tasks {
		res = append(res, composeTaskResponse(&tasks[i]))
	}
	writeJSON(w, http.StatusOK, res)
}

func (app *application) getTaskHandler(w http.ResponseWriter, r *http.Request) {
	u := getUserFromRequest(r)
	if u == nil {
		writeUnauthorized(w, "authentication required")
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeTaskNotFound(w, r.PathValue("id"))
		return
	}
	t, err := app.store.getTask(id, u.ID)
	if err != nil {
		writeServerError(w, err)
		return
	}
	if t == nil {
		writeTaskNotFound(w, id.String())
		return
	}
	writeJSON(w, http.StatusOK, composeTaskResponse(t))
}

func (app *application) createTaskHandler(w http.ResponseWriter, r *http.Request) {
	u := getUserFromRequest(r)
	if u == nil {
		writeUnauthorized(w, "authentication required")
		return
	}
	var input struct {
		Title       string  `json:"title"`
		Description *string `json:"description"`
	}
	err := decodeJSON(r, &input)
	if err != nil {
		writeBadRequest(w, "body must be valid JSON")
		return
	}

	v := newValidator()
	v.checkTitle(input.Title)
	v.checkDescription(input.Description)
	if v.hasErrors() {
		writeValidationProblem(w, v)
		return
	}

	// a new task is never born completed, whatever the payload says
	t := &task{
		UserID:      u.ID,
		Title:       input.Title,
		Description: input.Description,
		IsCompleted: false,
	}
	err = app.store.insertTask(t)
	if err != nil {
		writeServerError(w, err)
		return
	}

	w.Header().Set("Location", "/tasks/"+t.ID.String())
	writeJSON(w, http.StatusCreated, composeTaskResponse(t))
}

func (app *application) updateTaskHandler(w http.ResponseWriter, r *http.Request) {
	u := getUserFromRequest(r)
	if u == nil {
		writeUnauthorized(w, "authentication required")
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeTaskNotFound(w, r.PathValue("id"))
		return
	}
	var input struct {
		Title       string  `json:"title"`
		Description *string `json:"description"`
		IsCompleted bool    `json:"isCompleted"`
	}
	err = decodeJSON(r, &input)
	if err != nil {
		writeBadRequest(w, "body must be valid JSON")
		return
	}

	v := newValidator()
	v.checkTitle(input.Title)
	v.checkDescription(input.Description)
	if v.hasErrors() {
		writeValidationProblem(w, v)
		return
	}

	t := &task{
		ID:          id,
		UserID:      u.ID,
		Title:       input.Title,
		Description: input.Description,
		IsCompleted: input.IsCompleted,
	}
	found, err := app.store.updateTask(t)
	if err != nil {
		writeServerError(w, err)
		return
	}
	if !found {
		writeTaskNotFound(w, id.String())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (app *application) deleteTaskHandler(w http.ResponseWriter, r *http.Request) {
	u := getUserFromRequest(r)
	if u == nil {
		writeUnauthorized(w, "authentication required")
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeTaskNotFound(w, r.PathValue("id"))
		return
	}
	found, err := app.store.deleteTask(id, u.ID)
	if err != nil {
		writeServerError(w, err)
		return
	}
	if !found {
		writeTaskNotFound(w, id.String())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
