// Package net looks up published releases so the About screen can offer
// an update hint. Signing itself never touches the network.
package net

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"
)

const (
	releaseAPIURL = "https://api.github.com/repos/vocdoni/vocseal/releases/latest"

	// LatestReleasePageURL is the browser fallback when the API gives no
	// per-release page.
	LatestReleasePageURL = "https://github.com/vocdoni/vocseal/releases/latest"
)

// Release describes the newest published build.
type Release struct {
	Tag string `json:"tag_name"`
	URL string `json:"html_url"`
}

// FetchLatestRelease asks the GitHub API for the newest release.
func FetchLatestRelease(ctx context.Context) (Release, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, releaseAPIURL, nil)
	if err != nil {
		return Release{}, fmt.Errorf("build release request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", "vocseal-update-check")

	client := &http.Client{Timeout: 8 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return Release{}, fmt.Errorf("fetch latest release: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Release{}, fmt.Errorf("release lookup returned %s", resp.Status)
	}

	var rel Release
	if err := json.NewDecoder(resp.Body).Decode(&rel); err != nil {
		return Release{}, fmt.Errorf("decode release response: %w", err)
	}
	if rel.Tag == "" {
		return Release{}, errors.New("release response missing tag_name")
	}
	if rel.URL == "" {
		rel.URL = LatestReleasePageURL
	}
	log.Printf("DEBUG: latest release tag=%s url=%s", rel.Tag, rel.URL)
	return rel, nil
}
