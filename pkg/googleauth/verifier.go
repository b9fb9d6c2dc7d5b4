package googleauth

import (
	"context"
	"fmt"

	"google.golang.org/api/idtoken"
)

// Payload is the subset of a verified Google ID token the API needs.
type Payload struct {
	Subject  string
	Email    string
	Name     string
	PhotoURL string
}

// Verifier validates Google-issued ID tokens for a client ID.
type Verifier interface {
	Verify(ctx context.Context, rawToken string) (*Payload, error)
}

type verifier struct {
	clientID string
}

func New(clientID string) Verifier {
	return &verifier{clientID: clientID}
}

func (v *verifier) Verify(ctx context.Context, rawToken string) (*Payload, error) {
	payload, err := idtoken.Validate(ctx, rawToken, v.clientID)
	if err != nil {
		return nil, fmt.Errorf("validating google id token: %w", err)
	}

	out := &Payload{Subject: payload.Subject}
	if email, ok := payload.Claims["email"].(string); ok {
		out.Email = email
	}
	if name, ok := payload.Claims["name"].(string); ok {
		out.Name = name
	}
	if picture, ok := payload.Claims["picture"].(string); ok {
		out.PhotoURL = picture
	}

	if out.Email == "" {
		return nil, fmt.Errorf("google id token missing email claim")
	}
	return out, nil
}
