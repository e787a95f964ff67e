package fonts

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mesh-editor/internal/googlefonts"
)

func TestFetcherResolve(t *testing.T) {
	var srvURL string
	var downloads int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ofl/lobster":
			fmt.Fprintf(w, `[{"name":"Lobster-Regular.ttf","type":"file","download_url":%q}]`, srvURL+"/raw/Lobster-Regular.ttf")
		case "/raw/Lobster-Regular.ttf":
			downloads++
			w.Write([]byte("font"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()
	srvURL = srv.URL

	local := t.TempDir()
	writeFiles(t, local, "Inter/Inter-Regular.ttf")
	dest := t.TempDir()
	f := &Fetcher{
		Search: []string{local, dest},
		Dir:    dest,
		Google: &googlefonts.Client{APIBase: srv.URL + "/ofl", RawPrefix: srv.URL + "/raw/", HTTP: srv.Client()},
		HTTP:   srv.Client(),
	}
	ctx := context.Background()

	path, fetched, err := f.Resolve(ctx, "inter")
	if err != nil || fetched || !strings.HasSuffix(filepath.ToSlash(path), "Inter/Inter-Regular.ttf") {
		t.Errorf("Resolve(inter) = %q, %v, %v; want local file", path, fetched, err)
	}

	path, fetched, err = f.Resolve(ctx, "Lobster")
	if err != nil || !fetched {
		t.Fatalf("Resolve(Lobster) = %q, %v, %v; want fetched", path, fetched, err)
	}
	if want := filepath.Join(dest, "lobster", "Lobster-Regular.ttf"); path != want {
		t.Errorf("Resolve(Lobster) path = %q, want %q", path, want)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("fetched file: %v", err)
	}

	// Second lookup finds the downloaded copy.
	if _, fetched, err := f.Resolve(ctx, "Lobster"); err != nil || fetched {
		t.Errorf("second Resolve(Lobster) fetched = %v, err = %v; want local hit", fetched, err)
	}
	if downloads != 1 {
		t.Errorf("downloads = %d, want 1", downloads)
	}

	if _, _, err := f.Resolve(ctx, "Nonexistent Family"); err == nil {
		t.Error("Resolve(unknown) error = nil")
	}
}
