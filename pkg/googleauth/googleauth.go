package googleauth

import (
	"context"
	"fmt"

	"google.golang.org/api/idtoken"
)

// Payload holds the identity claims extracted from a verified Google ID token.
type Payload struct {
	Email   string
	Name    string
	Picture string
}

// Verifier validates a Google ID token and returns its identity claims.
type Verifier interface {
	Verify(ctx context.Context, idToken string) (*Payload, error)
}

// IDTokenVerifier implements Verifier against Google's token endpoint,
// checking the signature and that the token was issued for our client ID.
type IDTokenVerifier struct {
	audience string
}

// NewIDTokenVerifier creates an IDTokenVerifier bound to the given OAuth client ID.
func NewIDTokenVerifier(audience string) (*IDTokenVerifier, error) {
	if audience == "" {
		return nil, fmt.Errorf("google client ID not provided")
	}
	return &IDTokenVerifier{audience: audience}, nil
}

// Verify validates the token and extracts the email, name and picture claims.
func (v *IDTokenVerifier) Verify(ctx context.Context, token string) (*Payload, error) {
	payload, err := idtoken.Validate(ctx, token, v.audience)
	if err != nil {
		return nil, fmt.Errorf("invalid Google ID token: %w", err)
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return nil, fmt.Errorf("google ID token has no email claim")
	}

	p := &Payload{Email: email}
	if name, ok := payload.Claims["name"].(string); ok {
		p.Name = name
	}
	if picture, ok := payload.Claims["picture"].(string); ok {
		p.Picture = picture
	}
	return p, nil
}
