package googlefonts

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultAPIBase lists the open-licensed families of the google/fonts repository.
	DefaultAPIBase = "https://api.github.com/repos/google/fonts/contents/ofl"
	// DefaultRawPrefix is the only host files are downloaded from; no user-supplied URLs.
	DefaultRawPrefix = "https://raw.githubusercontent.com/google/fonts/"
)

// Client looks up font files in the google/fonts repository.
type Client struct {
	APIBase   string
	RawPrefix string
	HTTP      *http.Client
}

// New returns a client for the public google/fonts repository with a 15s timeout.
func New() *Client {
	return &Client{
		APIBase:   DefaultAPIBase,
		RawPrefix: DefaultRawPrefix,
		HTTP:      &http.Client{Timeout: 15 * time.Second},
	}
}

type githubFile struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	DownloadURL string `json:"download_url"`
}

// NormalizeFamily converts a display name to the folder names used in google/fonts ofl.
// e.g. "Inter" -> ["inter"], "Open Sans" -> ["opensans", "open-sans"].
func NormalizeFamily(name string) []string {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	lower := strings.ToLower(name)
	noSpaces := strings.ReplaceAll(lower, " ", "")
	withHyphens := strings.ReplaceAll(lower, " ", "-")
	out := []string{noSpaces}
	if withHyphens != noSpaces {
		out = append(out, withHyphens)
	}
	return out
}

// FetchDownloadURL returns the raw download URL for a font file in the given folder.
// Prefers a file whose name does not contain "Italic". Only URLs under RawPrefix are returned.
func (c *Client) FetchDownloadURL(ctx context.Context, folder string) (downloadURL string, err error) {
	u := strings.TrimSuffix(c.APIBase, "/") + "/" + url.PathEscape(folder)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", fmt.Errorf("google fonts: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("google fonts: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return "", fmt.Errorf("font %q not found on Google Fonts", folder)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("google fonts: HTTP %d", resp.StatusCode)
	}
	var files []githubFile
	if err := json.NewDecoder(resp.Body).Decode(&files); err != nil {
		return "", fmt.Errorf("google fonts: %w", err)
	}
	var preferred, fallback string
	for _, f := range files {
		if f.Type != "file" || f.DownloadURL == "" {
			continue
		}
		lower := strings.ToLower(f.Name)
		if !strings.HasSuffix(lower, ".ttf") && !strings.HasSuffix(lower, ".otf") {
			continue
		}
		if !strings.HasPrefix(f.DownloadURL, c.RawPrefix) {
			continue
		}
		if strings.Contains(lower, "italic") {
			if fallback == "" {
				fallback = f.DownloadURL
			}
			continue
		}
		preferred = f.DownloadURL
		break
	}
	if preferred != "" {
		return preferred, nil
	}
	if fallback != "" {
		return fallback, nil
	}
	return "", fmt.Errorf("no .ttf/.otf file found for %q on Google Fonts", folder)
}

// FetchByFamily tries the NormalizeFamily variants of name in order and returns the folder that
// matched with its download URL.
func (c *Client) FetchByFamily(ctx context.Context, name string) (folder, downloadURL string, err error) {
	candidates := NormalizeFamily(name)
	if len(candidates) == 0 {
		return "", "", fmt.Errorf("google fonts: empty font name")
	}
	var lastErr error
	for _, f := range candidates {
		u, err := c.FetchDownloadURL(ctx, f)
		if err == nil {
			return f, u, nil
		}
		lastErr = err
	}
	return "", "", lastErr
}
