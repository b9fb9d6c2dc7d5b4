package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/TuancoderLo/perfume-api/internal/auth"
	"github.com/TuancoderLo/perfume-api/internal/members"
	"github.com/google/uuid"
)

type stubAuthService struct {
	auth.Service

	registerErr error
	loginResult *auth.LoginResponse
	loginErr    error
}

func (s *stubAuthService) Register(context.Context, auth.RegisterRequest) error {
	return s.registerErr
}

func (s *stubAuthService) Login(context.Context, auth.LoginRequest) (*auth.LoginResponse, error) {
	return s.loginResult, s.loginErr
}

func (s *stubAuthService) GoogleLogin(context.Context, auth.GoogleLoginRequest) (*auth.GoogleLoginResponse, error) {
	return &auth.GoogleLoginResponse{Token: "t-google", User: members.MemberDTO{ID: uuid.New(), Name: "Riley"}}, nil
}

func TestRegisterReturns201WithMessageOnly(t *testing.T) {
	handler := Register(&stubAuthService{}, nil)

	body := `{"name":"Riley","email":"riley@example.com","password":"long-enough-pw","YOB":1994}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var resp map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if string(resp["message"]) != `"Registered"` {
		t.Fatalf("unexpected message %s", resp["message"])
	}
	if _, ok := resp["token"]; ok {
		t.Fatal("registration must not issue a token")
	}
}

func TestLoginReturnsBareToken(t *testing.T) {
	svc := &stubAuthService{loginResult: &auth.LoginResponse{Token: "t-abc"}}
	handler := AuthLogin(svc, nil)

	body := `{"email":"riley@example.com","password":"long-enough-pw"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if string(resp["token"]) != `"t-abc"` {
		t.Fatalf("unexpected token %s", resp["token"])
	}
	if len(resp) != 1 {
		t.Fatalf("login payload carries only the token, got %v", resp)
	}
}

func TestGoogleLoginReturnsTokenAndUser(t *testing.T) {
	handler := AuthGoogleLogin(&stubAuthService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/google", strings.NewReader(`{"idToken":"raw"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp struct {
		Token string            `json:"token"`
		User  members.MemberDTO `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Token != "t-google" || resp.User.Name != "Riley" {
		t.Fatalf("unexpected payload %+v", resp)
	}
}
