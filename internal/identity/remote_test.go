package identity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/supabase-community/supabase-go"
)

func TestRemoteVerifierResolvesUser(t *testing.T) {
	const uid = "8d6d3a7d-0a3e-4d7b-9a2f-0f3c2a1b4c5d"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"` + uid + `","email":"ana@example.com"}`))
	}))
	defer srv.Close()

	sb, err := supabase.NewClient(srv.URL, "service-key", nil)
	require.NoError(t, err)

	id, err := NewRemoteVerifier(sb, time.Second).Verify(context.Background(), "tok")
	require.NoError(t, err)
	require.Equal(t, uid, id.UserID)
	require.Equal(t, "ana@example.com", id.Email)
}

func TestRemoteVerifierStalledProvider(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer srv.Close()

	sb, err := supabase.NewClient(srv.URL, "service-key", nil)
	require.NoError(t, err)

	v := NewRemoteVerifier(sb, 50*time.Millisecond)

	start := time.Now()
	_, err = v.Verify(context.Background(), "tok")
	require.ErrorIs(t, err, ErrInvalidToken)
	require.Less(t, time.Since(start), 250*time.Millisecond)
}
