package main

import (
	"testing"

	"github.com/google/uuid"
)

func testTokenConfig() config {
	var cfg config
	cfg.jwt.secret = "test-secret-that-is-long-enough"
	cfg.jwt.issuer = "taskflow-test"
	cfg.jwt.audience = "taskflow-clients"
	cfg.jwt.expiresInHours = 1
	return cfg
}

func TestTokenRoundTrip(t *testing.T) {
	cfg := testTokenConfig()
	u := &user{ID: uuid.New(), Email: "someone@example.com"}

	tokenStr, err := signToken(cfg, u)
	if err != nil {
		t.Fatalf("signToken: %v", err)
	}
	userID, err := parseToken(cfg, tokenStr)
	if err != nil {
		t.Fatalf("parseToken: %v", err)
	}
	if userID != u.ID {
		t.Fatalf("parseToken subject = %s, want %s", userID, u.ID)
	}
}

func TestTokenRejections(t *testing.T) {
	cfg := testTokenConfig()
	u := &user{ID: uuid.New(), Email: "someone@example.com"}

	tests := []struct {
		name   string
		sign   func() config
		verify func() config
	}{
		{
			"wrong secret",
			func() config { return cfg },
			func() config { c := cfg; c.jwt.secret = "a-completely-different-secret"; return c },
		},
		{
			"wrong issuer",
			func() config { c := cfg; c.jwt.issuer = "someone-else"; return c },
			func() config { return cfg },
		},
		{
			"wrong audience",
			func() config { c := cfg; c.jwt.audience = "other-clients"; return c },
			func() config { return cfg },
		},
		{
			"expired",
			func() config { c := cfg; c.jwt.expiresInHours = -1; return c },
			func() config { return cfg },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenStr, err := signToken(tt.sign(), u)
			if err != nil {
				t.Fatalf("signToken: %v", err)
			}
			_, err = parseToken(tt.verify(), tokenStr)
			if err == nil {
				t.Fatal("parseToken accepted a token it should have rejected")
			}
		})
	}
}

func TestTokenGarbage(t *testing.T) {
	cfg := testTokenConfig()
	for _, tokenStr := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := parseToken(cfg, tokenStr); err == nil {
			t.Fatalf("parseToken(%q) accepted garbage", tokenStr)
		}
	}
}
