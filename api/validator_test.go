package main

import (
	"strings"
	"testing"
)

func TestCheckTitle(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		wantErr bool
	}{
		{"empty", "", true},
		{"below minimum", "ab", true},
		{"minimum length", "abc", false},
		{"maximum length", strings.Repeat("a", 200), false},
		{"above maximum", strings.Repeat("a", 201), true},
		{"multibyte at maximum", strings.Repeat("é", 200), false},
		{"multibyte above maximum", strings.Repeat("é", 201), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newValidator()
			v.checkTitle(tt.title)
			if v.hasErrors() != tt.wantErr {
				t.Fatalf("checkTitle(%q): hasErrors() = %v, want %v (errors: %v)", tt.title, v.hasErrors(), tt.wantErr, v.errors)
			}
			if tt.wantErr {
				if _, ok := v.errors["title"]; !ok {
					t.Fatalf("checkTitle(%q): expected an error keyed on title, got %v", tt.title, v.errors)
				}
			}
		})
	}
}

func TestCheckDescription(t *testing.T) {
	long := strings.Repeat("d", 1000)
	tooLong := strings.Repeat("d", 1001)
	tests := []struct {
		name        string
		description *string
		wantErr     bool
	}{
		{"absent", nil, false},
		{"empty", ptr(""), false},
		{"at maximum", &long, false},
		{"above maximum", &tooLong, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newValidator()
			v.checkDescription(tt.description)
			if v.hasErrors() != tt.wantErr {
				t.Fatalf("hasErrors() = %v, want %v (errors: %v)", v.hasErrors(), tt.wantErr, v.errors)
			}
			if tt.wantErr {
				if _, ok := v.errors["description"]; !ok {
					t.Fatalf("expected an error keyed on description, got %v", v.errors)
				}
			}
		})
	}
}

func TestCheckEmail(t *testing.T) {
	tests := []struct {
		email   string
		wantErr bool
	}{
		{"", true},
		{"not-an-email", true},
		{"missing@tld", false},
		{"someone@example.com", false},
	}
	for _, tt := range tests {
		v := newValidator()
		v.checkEmail(tt.email)
		if v.hasErrors() != tt.wantErr {
			t.Fatalf("checkEmail(%q): hasErrors() = %v, want %v", tt.email, v.hasErrors(), tt.wantErr)
		}
	}
}

func TestCheckPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"empty", "", true},
		{"too short", strings.Repeat("p", 7), true},
		{"minimum length", strings.Repeat("p", 8), false},
		{"maximum length", strings.Repeat("p", 72), false},
		{"too long", strings.Repeat("p", 73), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newValidator()
			v.checkPassword(tt.password)
			if v.hasErrors() != tt.wantErr {
				t.Fatalf("hasErrors() = %v, want %v", v.hasErrors(), tt.wantErr)
			}
		})
	}
}

func TestValidatorAccumulatesAllFields(t *testing.T) {
	v := newValidator()
	v.checkTitle("")
	v.checkDescription(ptr(strings.Repeat("d", 1001)))
	if len(v.errors) != 2 {
		t.Fatalf("expected errors for both fields, got %v", v.errors)
	}
}

func ptr(s string) *string {
	return &s
}
