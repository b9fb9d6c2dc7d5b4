package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AccessTokenClaims is the payload carried by every access token. IsAdmin is
// advisory only; route guards always re-check the live member record.
type AccessTokenClaims struct {
	MemberID uuid.UUID `json:"member_id"`
	IsAdmin  bool      `json:"is_admin"`
	jwt.RegisteredClaims
}
