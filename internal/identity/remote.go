package identity

import (
	"context"
	"net/http"
	"time"

	"github.com/supabase-community/gotrue-go"
	"github.com/supabase-community/supabase-go"
)

// RemoteVerifier resolves tokens through the provider's user endpoint.
// Used when the JWT signing secret is not configured.
type RemoteVerifier struct {
	auth gotrue.Client
}

// NewRemoteVerifier rebinds the auth client onto an HTTP client with the
// given timeout so a stalled provider cannot hang requests.
func NewRemoteVerifier(client *supabase.Client, timeout time.Duration) *RemoteVerifier {
	return &RemoteVerifier{
		auth: client.Auth.WithClient(http.Client{Timeout: timeout}),
	}
}

func (v *RemoteVerifier) Verify(_ context.Context, token string) (Identity, error) {
	user, err := v.auth.WithToken(token).GetUser()
	if err != nil {
		return Identity{}, ErrInvalidToken
	}
	return Identity{UserID: user.ID.String(), Email: user.Email}, nil
}
