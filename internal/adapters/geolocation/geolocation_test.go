package geolocation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"poi-viewer/internal/domain"
	"poi-viewer/internal/platform/httpclient"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPProvider_CurrentPosition(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		want    domain.Coordinate
		wantErr error
	}{
		{
			name:   "ip-api fields",
			status: http.StatusOK,
			body:   `{"status":"success","lat":37.5665,"lon":126.978}`,
			want:   domain.Coordinate{Lat: 37.5665, Lng: 126.978},
		},
		{
			name:   "ipapi fields",
			status: http.StatusOK,
			body:   `{"latitude":35.1796,"longitude":129.0756}`,
			want:   domain.Coordinate{Lat: 35.1796, Lng: 129.0756},
		},
		{
			name:    "lookup refused",
			status:  http.StatusOK,
			body:    `{"status":"fail","message":"private range"}`,
			wantErr: ErrUnavailable,
		},
		{name: "no coordinates", status: http.StatusOK, body: `{"status":"success"}`},
		{name: "rate limited", status: http.StatusTooManyRequests, body: `slow down`},
		{name: "malformed", status: http.StatusOK, body: `<html>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			p, err := NewHTTPProvider(srv.URL, httpclient.New(0))
			require.NoError(t, err)

			got, err := p.CurrentPosition(context.Background())
			if tt.want == (domain.Coordinate{}) {
				require.Error(t, err)
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePosition(t *testing.T) {
	c, err := ParsePosition(" 33.4996, 126.5312 ")
	require.NoError(t, err)
	assert.Equal(t, domain.Coordinate{Lat: 33.4996, Lng: 126.5312}, c)

	for _, bad := range []string{"", "37.5", "abc,127", "37.5,east", "95,127"} {
		_, err := ParsePosition(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestStaticAndUnavailableProviders(t *testing.T) {
	p, err := NewStaticProvider("37.5512,126.9882")
	require.NoError(t, err)

	got, err := p.CurrentPosition(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Coordinate{Lat: 37.5512, Lng: 126.9882}, got)

	_, err = Unavailable{}.CurrentPosition(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}
