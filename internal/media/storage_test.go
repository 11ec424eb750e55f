package media

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/supabase-community/supabase-go"
)

func TestUploadStalledStorage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer srv.Close()

	sb, err := supabase.NewClient(srv.URL, "service-key", nil)
	require.NoError(t, err)

	s := NewSupabaseStorage(sb, "wave_app", 50*time.Millisecond)

	start := time.Now()
	_, err = s.Upload(context.Background(), "x.png", "image/png", strings.NewReader("png-bytes"))
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.Less(t, time.Since(start), 250*time.Millisecond)
}
