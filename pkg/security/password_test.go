package security

import (
	"errors"
	"strings"
	"testing"

	"github.com/TuancoderLo/perfume-api/pkg/config"
)

func testParams() config.PasswordConfig {
	// Small parameters keep the test fast; production values come from env.
	return config.PasswordConfig{
		ArgonMemoryKB:    8,
		ArgonTime:        1,
		ArgonParallelism: 1,
		ArgonSaltLen:     8,
		ArgonKeyLen:      16,
	}
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct horse", testParams())
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if !strings.HasPrefix(hash, "$argon2id$") {
		t.Fatalf("unexpected hash format %q", hash)
	}

	ok, err := VerifyPassword("correct horse", hash)
	if err != nil {
		t.Fatalf("verify password: %v", err)
	}
	if !ok {
		t.Fatal("expected password to verify")
	}

	ok, err = VerifyPassword("wrong horse", hash)
	if err != nil {
		t.Fatalf("verify wrong password: %v", err)
	}
	if ok {
		t.Fatal("wrong password must not verify")
	}
}

func TestHashPasswordRejectsEmpty(t *testing.T) {
	if _, err := HashPassword("", testParams()); err == nil {
		t.Fatal("expected error for empty password")
	}
}

func TestVerifyPasswordRejectsSentinel(t *testing.T) {
	ok, err := VerifyPassword("anything", ExternalAuthSentinel)
	if ok {
		t.Fatal("sentinel must never verify")
	}
	if !errors.Is(err, ErrInvalidHash) {
		t.Fatalf("expected ErrInvalidHash, got %v", err)
	}
}

func TestVerifyPasswordRejectsMalformedHash(t *testing.T) {
	if _, err := VerifyPassword("pw", "$argon2id$v=19$m=8,t=1$short"); !errors.Is(err, ErrInvalidHash) {
		t.Fatalf("expected ErrInvalidHash, got %v", err)
	}
}
