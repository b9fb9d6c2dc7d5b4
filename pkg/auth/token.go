package auth

import (
	"fmt"
	"time"

	"github.com/TuancoderLo/perfume-api/pkg/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Minter issues and parses signed access tokens.
type Minter struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

func NewMinter(cfg config.JWTConfig) *Minter {
	return &Minter{
		secret: []byte(cfg.Secret),
		issuer: cfg.Issuer,
		ttl:    time.Duration(cfg.ExpirationMinutes) * time.Minute,
		now:    time.Now,
	}
}

// Mint returns a signed HS256 access token for the member.
func (m *Minter) Mint(memberID uuid.UUID, isAdmin bool) (string, error) {
	now := m.now()
	claims := AccessTokenClaims{
		MemberID: memberID,
		IsAdmin:  isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   memberID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("signing access token: %w", err)
	}
	return signed, nil
}

// ParseAccessToken validates the signature, expiry and issuer of a token and
// returns its claims.
func (m *Minter) ParseAccessToken(raw string) (*AccessTokenClaims, error) {
	claims := &AccessTokenClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Header["alg"])
		}
		return m.secret, nil
	},
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return m.now() }),
	)
	if err != nil {
		return nil, fmt.Errorf("parsing access token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid access token")
	}
	if claims.MemberID == uuid.Nil {
		return nil, fmt.Errorf("access token missing member id")
	}
	return claims, nil
}
