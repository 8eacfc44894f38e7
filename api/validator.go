package main

import (
	"regexp"
	"unicode/utf8"
)

var emailRegexp = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$")

// validator accumulates field errors; every rule runs, the first
// message per field wins.
type validator struct {
	errors map[string]string
}

func newValidator() *validator {
	return &validator{
		errors: make(map[string]string),
	}
}

func (v *validator) hasErrors() bool {
	return len(v.errors) != 0
}

func (v *validator) checkCond(cond bool, key, msg string) {
	if cond {
		return
	}
	if _, ok := v.errors[key]; !ok {
		v.errors[key] = msg
	}
}

func (v *validator) checkName(name string) {
	v.checkCond(name != "", "name", "must be provided")
	v.checkCond(utf8.RuneCountInString(name) <= 255, "name", "must be atmost 255 characters")
}

func (v *validator) checkEmail(email string) {
	v.checkCond(email != "", "email", "must be provided")
	v.checkCond(emailRegexp.MatchString(email), "email", "must be a valid email address")
}

func (v *validator) checkPassword(password string) {
	v.checkCond(password != "", "password", "must be provided")
	v.checkCond(len(password) >= 8, "password", "must be atleast 8 characters long")
	v.checkCond(len(password) <= 72, "password", "must be atmost 72 characters long")
}

func (v *validator) checkTitle(title string) {
	n := utf8.RuneCountInString(title)
	v.checkCond(title != "", "title", "must be provided")
	v.checkCond(n >= 3, "title", "must be atleast 3 characters")
	v.checkCond(n <= 200, "title", "must be atmost 200 characters")
}

func (v *validator) checkDescription(description *string) {
	if description == nil {
		return
	}
	v.checkCond(utf8.RuneCountInString(*description) <= 1000, "description", "must be atmost 1000 characters")
}
