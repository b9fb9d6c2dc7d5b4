package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestMetadataForKnownCodes(t *testing.T) {
	cases := []struct {
		code   Code
		status int
	}{
		{CodeValidation, http.StatusBadRequest},
		{CodeInvalidCredentials, http.StatusBadRequest},
		{CodeConflict, http.StatusBadRequest},
		{CodeUnauthorized, http.StatusUnauthorized},
		{CodeForbidden, http.StatusForbidden},
		{CodeNotFound, http.StatusNotFound},
		{CodeRateLimit, http.StatusTooManyRequests},
		{CodeInternal, http.StatusInternalServerError},
		{CodeDependency, http.StatusServiceUnavailable},
	}
	for _, tc := range cases {
		if got := MetadataFor(tc.code).HTTPStatus; got != tc.status {
			t.Fatalf("code %s: expected status %d, got %d", tc.code, tc.status, got)
		}
	}
}

func TestMetadataForUnknownCodeFallsBackToInternal(t *testing.T) {
	meta := MetadataFor(Code("NOPE"))
	if meta.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected internal fallback, got %d", meta.HTTPStatus)
	}
}

func TestForbiddenAllowsDetails(t *testing.T) {
	if !MetadataFor(CodeForbidden).DetailsAllowed {
		t.Fatal("forbidden must allow details so blocked responses can carry reason/timestamp")
	}
	if MetadataFor(CodeInvalidCredentials).DetailsAllowed {
		t.Fatal("invalid credentials must never leak details")
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stdErrors.New("boom")
	err := Wrap(CodeInternal, cause, "wrapped")

	if !stdErrors.Is(err, cause) {
		t.Fatal("expected wrapped error to unwrap to cause")
	}
	if typed := As(fmt.Errorf("outer: %w", err)); typed == nil || typed.Code() != CodeInternal {
		t.Fatalf("expected typed error through the chain, got %v", typed)
	}
}

func TestDumpCollectsChain(t *testing.T) {
	err := Wrap(CodeNotFound, stdErrors.New("row missing"), "lookup brand")
	d := Dump(err)
	if d.Code != CodeNotFound {
		t.Fatalf("expected code in dump, got %s", d.Code)
	}
	if len(d.Chain) < 2 {
		t.Fatalf("expected full chain, got %v", d.Chain)
	}
}
