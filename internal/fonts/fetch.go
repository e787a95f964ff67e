package fonts

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"

	"mesh-editor/internal/download"
	"mesh-editor/internal/googlefonts"
)

// Fetcher resolves a font name to a file, fetching it from Google Fonts when no local file matches.
type Fetcher struct {
	// Search lists directories looked in first (see BaseDirs).
	Search []string
	// Dir receives fetched fonts, one folder per family (e.g. assets/fonts/inter/Inter.ttf).
	Dir    string
	Google *googlefonts.Client
	HTTP   *http.Client
}

// NewFetcher searches BaseDirs and saves fetched fonts under assets/fonts.
func NewFetcher() *Fetcher {
	return &Fetcher{
		Search: BaseDirs(),
		Dir:    "assets/fonts",
		Google: googlefonts.New(),
		HTTP:   &http.Client{},
	}
}

// Resolve returns the path of a font matching name. Local files win; otherwise the family is
// looked up on Google Fonts and downloaded into Dir. Safe to call from a goroutine.
func (f *Fetcher) Resolve(ctx context.Context, name string) (path string, fetched bool, err error) {
	if _, full, err := FindFontIn(f.Search, name); err == nil {
		return full, false, nil
	}
	folder, u, err := f.Google.FetchByFamily(ctx, name)
	if err != nil {
		return "", false, fmt.Errorf("font %q: %w", name, err)
	}
	saved, err := download.Font(ctx, f.HTTP, u, filepath.Join(f.Dir, folder))
	if err != nil {
		return "", false, fmt.Errorf("font %q: %w", name, err)
	}
	return saved, true, nil
}
