package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	apperrors "github.com/diegorodrguez7/carta-digital-qr/internal/errors"
)

const (
	googleTokenInfoURL = "https://oauth2.googleapis.com/tokeninfo"
	verifyTimeout      = 10 * time.Second
)

// IdentityPayload is the subset of a verified external identity we consume.
type IdentityPayload struct {
	Email   string
	Name    string
	Picture string
}

// IdentityVerifier validates an opaque external credential and returns the
// identity it asserts.
type IdentityVerifier interface {
	Verify(ctx context.Context, credential string) (*IdentityPayload, error)
}

// GoogleVerifier verifies Google ID tokens against the tokeninfo endpoint,
// checking that the token was issued for our OAuth client.
type GoogleVerifier struct {
	clientID   string
	httpClient *http.Client
}

// Ensure GoogleVerifier implements IdentityVerifier
var _ IdentityVerifier = (*GoogleVerifier)(nil)

// NewGoogleVerifier creates a verifier for the given OAuth client ID.
func NewGoogleVerifier(clientID string) *GoogleVerifier {
	return &GoogleVerifier{
		clientID:   clientID,
		httpClient: &http.Client{Timeout: verifyTimeout},
	}
}

type tokenInfoResponse struct {
	Aud     string `json:"aud"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// Verify resolves a Google ID token into an identity payload.
func (v *GoogleVerifier) Verify(ctx context.Context, credential string) (*IdentityPayload, error) {
	if v.clientID == "" {
		return nil, fmt.Errorf("%w: GOOGLE_CLIENT_ID not configured", apperrors.ErrIdentityVerification)
	}

	endpoint := googleTokenInfoURL + "?id_token=" + url.QueryEscape(credential)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrIdentityVerification, err)
	}

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrIdentityVerification, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: tokeninfo returned %d", apperrors.ErrIdentityVerification, resp.StatusCode)
	}

	var info tokenInfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrIdentityVerification, err)
	}

	if info.Aud != v.clientID {
		return nil, fmt.Errorf("%w: token audience mismatch", apperrors.ErrIdentityVerification)
	}
	if info.Email == "" {
		return nil, apperrors.ErrMissingEmailClaim
	}

	return &IdentityPayload{
		Email:   info.Email,
		Name:    info.Name,
		Picture: info.Picture,
	}, nil
}
