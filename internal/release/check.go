// Package release checks GitHub for newer synthetica releases.
package release

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime"
	"strings"
	"time"

	"golang.org/x/mod/semver"
)

// DevVersion is the version string of builds without release ldflags.
const DevVersion = "(devel)"

var (
	ErrDevBuild   = errors.New("cannot check a development build")
	ErrNoReleases = errors.New("no published releases")
	ErrBadVersion = errors.New("invalid semantic version")
)

const (
	defaultAPIBaseURL = "https://api.github.com"
	defaultOwner      = "abhisek"
	defaultRepo       = "synthetica"
)

// Checker queries the release feed.
type Checker struct {
	client     *http.Client
	apiBaseURL string
	owner      string
	repo       string
}

// Option configures a Checker.
type Option func(*Checker)

// WithTimeout bounds each HTTP request.
func WithTimeout(d time.Duration) Option {
	return func(c *Checker) { c.client.Timeout = d }
}

// WithAPIBaseURL points the checker at another GitHub API host.
func WithAPIBaseURL(u string) Option {
	return func(c *Checker) { c.apiBaseURL = strings.TrimRight(u, "/") }
}

// WithRepository overrides the owner/repo pair.
func WithRepository(owner, repo string) Option {
	return func(c *Checker) { c.owner, c.repo = owner, repo }
}

// NewChecker creates a Checker for the synthetica repository.
func NewChecker(opts ...Option) *Checker {
	c := &Checker{
		client:     &http.Client{Timeout: 10 * time.Second},
		apiBaseURL: defaultAPIBaseURL,
		owner:      defaultOwner,
		repo:       defaultRepo,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CheckInput is the version of the running binary.
type CheckInput struct {
	Version string
}

// CheckResult describes the newest release relative to the running one.
type CheckResult struct {
	CurrentVersion  string
	LatestVersion   string
	UpdateAvailable bool

	// ReleaseURL is the human-facing release page.
	ReleaseURL string

	// AssetURL is the download for this platform, empty when the release
	// has no matching asset.
	AssetURL string
}

type githubRelease struct {
	TagName    string `json:"tag_name"`
	HTMLURL    string `json:"html_url"`
	Draft      bool   `json:"draft"`
	Prerelease bool   `json:"prerelease"`
	Assets     []struct {
		Name               string `json:"name"`
		BrowserDownloadURL string `json:"browser_download_url"`
	} `json:"assets"`
}

// Check fetches the latest release and compares it with input.Version.
func (c *Checker) Check(ctx context.Context, input *CheckInput) (*CheckResult, error) {
	if input.Version == "" || input.Version == DevVersion {
		return nil, ErrDevBuild
	}
	current := canonical(input.Version)
	if !semver.IsValid(current) {
		return nil, fmt.Errorf("%w: %q", ErrBadVersion, input.Version)
	}

	rel, err := c.latest(ctx)
	if err != nil {
		return nil, err
	}
	latest := canonical(rel.TagName)
	if !semver.IsValid(latest) {
		return nil, fmt.Errorf("%w: release tag %q", ErrBadVersion, rel.TagName)
	}

	res := &CheckResult{
		CurrentVersion:  current,
		LatestVersion:   latest,
		UpdateAvailable: semver.Compare(latest, current) > 0,
		ReleaseURL:      rel.HTMLURL,
	}
	if asset, err := AssetName(runtime.GOOS, runtime.GOARCH); err == nil {
		for _, a := range rel.Assets {
			if a.Name == asset {
				res.AssetURL = a.BrowserDownloadURL
				break
			}
		}
	}
	return res, nil
}

func (c *Checker) latest(ctx context.Context) (*githubRelease, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/releases/latest", c.apiBaseURL, c.owner, c.repo)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch latest release: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNoReleases
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("fetch latest release: HTTP %d", resp.StatusCode)
	}

	var rel githubRelease
	if err := json.NewDecoder(resp.Body).Decode(&rel); err != nil {
		return nil, fmt.Errorf("decode release: %w", err)
	}
	if rel.TagName == "" || rel.Draft {
		return nil, ErrNoReleases
	}
	return &rel, nil
}

// canonical adds the "v" prefix semver requires.
func canonical(v string) string {
	v = strings.TrimSpace(v)
	if v != "" && !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return semver.Canonical(v)
}

// AssetName returns the release archive name for a platform.
func AssetName(goos, goarch string) (string, error) {
	arch := goarchToRelease(goarch)
	switch goos {
	case "darwin":
		return "synthetica_Darwin_all.tar.gz", nil
	case "linux":
		if arch == "" {
			return "", fmt.Errorf("unsupported architecture: %s", goarch)
		}
		return fmt.Sprintf("synthetica_Linux_%s.tar.gz", arch), nil
	case "windows":
		if arch == "" {
			return "", fmt.Errorf("unsupported architecture: %s", goarch)
		}
		return fmt.Sprintf("synthetica_Windows_%s.zip", arch), nil
	}
	return "", fmt.Errorf("unsupported operating system: %s", goos)
}

func goarchToRelease(goarch string) string {
	switch goarch {
	case "amd64":
		return "x86_64"
	case "arm64":
		return "arm64"
	case "386":
		return "i386"
	}
	return ""
}
