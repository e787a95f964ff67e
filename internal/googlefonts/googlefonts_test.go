package googlefonts

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNormalizeFamily(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Inter", "inter"},
		{" Open Sans ", "opensans,open-sans"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := strings.Join(NormalizeFamily(tt.in), ","); got != tt.want {
			t.Errorf("NormalizeFamily(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// newServer serves a directory listing per folder; raw is the allowed download prefix.
func newServer(t *testing.T, listings map[string]string) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		folder := strings.TrimPrefix(r.URL.Path, "/ofl/")
		body, ok := listings[folder]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)
	return &Client{APIBase: srv.URL + "/ofl", RawPrefix: "https://raw.example/fonts/", HTTP: srv.Client()}
}

func TestFetchDownloadURL(t *testing.T) {
	c := newServer(t, map[string]string{
		"inter": `[
			{"name":"OFL.txt","type":"file","download_url":"https://raw.example/fonts/ofl/inter/OFL.txt"},
			{"name":"Inter-Italic.ttf","type":"file","download_url":"https://raw.example/fonts/ofl/inter/Inter-Italic.ttf"},
			{"name":"Evil.ttf","type":"file","download_url":"https://elsewhere.example/Evil.ttf"},
			{"name":"Inter.ttf","type":"file","download_url":"https://raw.example/fonts/ofl/inter/Inter.ttf"}
		]`,
		"slanted": `[{"name":"Slanted-Italic.otf","type":"file","download_url":"https://raw.example/fonts/ofl/slanted/Slanted-Italic.otf"}]`,
		"empty":   `[{"name":"static","type":"dir","download_url":""}]`,
	})
	ctx := context.Background()

	got, err := c.FetchDownloadURL(ctx, "inter")
	if err != nil || got != "https://raw.example/fonts/ofl/inter/Inter.ttf" {
		t.Errorf("inter = %q, %v; want upright Inter.ttf", got, err)
	}
	got, err = c.FetchDownloadURL(ctx, "slanted")
	if err != nil || !strings.HasSuffix(got, "Slanted-Italic.otf") {
		t.Errorf("slanted = %q, %v; want italic fallback", got, err)
	}
	if _, err := c.FetchDownloadURL(ctx, "empty"); err == nil {
		t.Error("empty: error = nil")
	}
	if _, err := c.FetchDownloadURL(ctx, "missing"); err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("missing: error = %v, want not found", err)
	}
}

func TestFetchByFamilyTriesVariants(t *testing.T) {
	c := newServer(t, map[string]string{
		"open-sans": `[{"name":"OpenSans.ttf","type":"file","download_url":"https://raw.example/fonts/ofl/open-sans/OpenSans.ttf"}]`,
	})
	folder, u, err := c.FetchByFamily(context.Background(), "Open Sans")
	if err != nil {
		t.Fatalf("FetchByFamily() error: %v", err)
	}
	if folder != "open-sans" || !strings.HasSuffix(u, "OpenSans.ttf") {
		t.Errorf("FetchByFamily() = %q, %q", folder, u)
	}
	if _, _, err := c.FetchByFamily(context.Background(), "  "); err == nil {
		t.Error("blank name: error = nil")
	}
}
