package jwt

import (
	"errors"
	"strings"
	"testing"
)

const secret = "0123456789abcdef0123456789abcdef"

func TestNew(t *testing.T) {
	if _, err := New(Config{SecretKey: "short"}); !errors.Is(err, ErrSecretTooShort) {
		t.Errorf("New() short secret error = %v", err)
	}
}

func TestVerify(t *testing.T) {
	issuer, err := New(Config{SecretKey: secret, Issuer: "callaudit"})
	if err != nil {
		t.Fatal(err)
	}
	token, err := issuer.GenerateToken("u1", "qa@example.com", "admin")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	otherIssuer, _ := New(Config{SecretKey: secret, Issuer: "someone-else"})
	otherSecret, _ := New(Config{SecretKey: strings.Repeat("z", 32), Issuer: "callaudit"})

	tests := []struct {
		name    string
		m       IManager
		token   string
		wantErr bool
	}{
		{name: "valid", m: issuer, token: token},
		{name: "wrong issuer", m: otherIssuer, token: token, wantErr: true},
		{name: "wrong secret", m: otherSecret, token: token, wantErr: true},
		{name: "garbage", m: issuer, token: "not-a-jwt", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := tt.m.Verify(tt.token)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Verify() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if p.UserID != "u1" || p.Role != "admin" || p.Username != "qa@example.com" {
				t.Errorf("payload = %+v", p)
			}
			if p.ExpiresAt <= p.IssuedAt {
				t.Errorf("exp %d <= iat %d", p.ExpiresAt, p.IssuedAt)
			}
		})
	}
}
