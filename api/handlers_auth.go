package main

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func (app *application) registerUserHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	err := decodeJSON(r, &input)
	if err != nil {
		writeBadRequest(w, "body must be valid JSON")
		return
	}
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))

	v := newValidator()
	v.checkName(input.Name)
	v.checkEmail(input.Email)
	v.checkPassword(input.Password)
	if v.hasErrors() {
		writeValidationProblem(w, v)
		return
	}

	existing, err := app.store.getUserByEmail(input.Email)
	if err != nil {
		writeServerError(w, err)
		return
	}
	if existing != nil {
		writeProblem(w, http.StatusConflict, "Registration failed", "account could not be created")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		writeServerError(w, err)
		return
	}
	u := &user{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
	}
	err = app.store.insertUser(u)
	if err != nil {
		// two registrations racing on one email: the unique index decides
		if errors.Is(err, errDuplicateEmail) {
			writeProblem(w, http.StatusConflict, "Registration failed", "account could not be created")
			return
		}
		writeServerError(w, err)
		return
	}

	if app.mailer != nil {
		go func() {
			defer func() {
				if v := recover(); v != nil {
					log.Println(v)
				}
			}()
			err := app.mailer.sendWelcome(u)
			if err != nil {
				log.Println(err)
			}
		}()
	}

	writeJSON(w, http.StatusCreated, struct {
		UserID uuid.UUID `json:"userId"`
		Email  string    `json:"email"`
	}{
		UserID: u.ID,
		Email:  u.Email,
	})
}

func (app *application) loginUserHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	err := decodeJSON(r, &input)
	if err != nil {
		writeBadRequest(w, "body must be valid JSON")
		return
	}
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))

	// unknown email and wrong password must be indistinguishable
	u, err := app.store.getUserByEmail(input.Email)
	if err != nil {
		writeServerError(w, err)
		return
	}
	if u == nil {
		writeUnauthorized(w, "invalid email or password")
		return
	}
	err = bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(input.Password))
	if err != nil {
		writeUnauthorized(w, "invalid email or password")
		return
	}

	token, err := signToken(app.config, u)
	if err != nil {
		writeServerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Token string `json:"token"`
	}{
		Token: token,
	})
}
