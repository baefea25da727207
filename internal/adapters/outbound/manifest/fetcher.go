package manifest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/google/go-github/v44/github"
	"github.com/xanzy/go-gitlab"

	"github.com/skillcoder/kubedev-controller/internal/logic/workspace"
)

const (
	manifestFile      = ".gitpod.yml"
	gitlabDefaultRef  = "HEAD"
	gitHubHost        = "github.com"
	defaultGitLabHost = "gitlab.com"
	defaultTimeout    = 5 * time.Second
)

// Options configures the manifest fetcher.
type Options struct {
	Timeout time.Duration
	// GitLabHosts lists hosts served through the GitLab API in addition to
	// gitlab.com.
	GitLabHosts []string
	// HTTPClient is shared by the GitHub and GitLab clients. Defaults to
	// http.DefaultClient.
	HTTPClient *http.Client
	// GitHubBaseURL overrides the GitHub API endpoint.
	GitHubBaseURL string
}

type fetcher struct {
	logger      *slog.Logger
	timeout     time.Duration
	gitlabHosts []string
	httpClient  *http.Client
	github      *github.Client
}

// New creates a ManifestFetcher reading .gitpod.yml from GitHub and GitLab
// repositories.
func New(logger *slog.Logger, opts Options) (workspace.ManifestFetcher, error) {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}

	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}

	gh := github.NewClient(opts.HTTPClient)

	if opts.GitHubBaseURL != "" {
		base, err := url.Parse(strings.TrimSuffix(opts.GitHubBaseURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("parse github base url: %w", err)
		}

		gh.BaseURL = base
	}

	hosts := []string{defaultGitLabHost}
	for _, h := range opts.GitLabHosts {
		h = strings.ToLower(strings.TrimSpace(h))
		if h != "" && !slices.Contains(hosts, h) {
			hosts = append(hosts, h)
		}
	}

	return &fetcher{
		logger:      logger.With("component", "manifest-fetcher"),
		timeout:     opts.Timeout,
		gitlabHosts: hosts,
		httpClient:  opts.HTTPClient,
		github:      gh,
	}, nil
}

var _ workspace.ManifestFetcher = (*fetcher)(nil)

func (f *fetcher) Fetch(ctx context.Context, repoURL string) (*workspace.ManifestOverlay, bool) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	raw, err := f.fetchRaw(ctx, repoURL)
	if err != nil {
		f.logger.DebugContext(ctx, "manifest not fetched", "repo", repoURL, "reason", err)

		return nil, false
	}

	overlay, err := parseGitpod(raw)
	if err != nil {
		f.logger.DebugContext(ctx, "manifest not usable", "repo", repoURL, "reason", err)

		return nil, false
	}

	f.logger.DebugContext(ctx, "manifest overlay loaded",
		"repo", repoURL,
		"image", overlay.Image,
		"ports", overlay.Ports,
	)

	return overlay, true
}

func (f *fetcher) fetchRaw(ctx context.Context, repoURL string) ([]byte, error) {
	u, err := url.Parse(repoURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRepoURL, err)
	}

	projectPath := strings.TrimSuffix(strings.Trim(u.Path, "/"), ".git")
	if strings.Count(projectPath, "/") < 1 {
		return nil, fmt.Errorf("%w: %q has no owner/repository path", ErrInvalidRepoURL, repoURL)
	}

	host := strings.ToLower(u.Host)

	switch {
	case host == gitHubHost:
		return f.fetchGitHub(ctx, projectPath)
	case slices.Contains(f.gitlabHosts, host):
		return f.fetchGitLab(ctx, u.Scheme+"://"+u.Host, projectPath)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedHost, u.Host)
	}
}

func (f *fetcher) fetchGitHub(ctx context.Context, projectPath string) ([]byte, error) {
	owner, repo, _ := strings.Cut(projectPath, "/")
	if strings.Contains(repo, "/") {
		return nil, fmt.Errorf("%w: %q is not owner/repository", ErrInvalidRepoURL, projectPath)
	}

	file, _, _, err := f.github.Repositories.GetContents(ctx, owner, repo, manifestFile, nil)
	if err != nil {
		return nil, fmt.Errorf("get github contents: %w", err)
	}

	if file == nil {
		return nil, fmt.Errorf("get github contents: %s is not a file", manifestFile)
	}

	content, err := file.GetContent()
	if err != nil {
		return nil, fmt.Errorf("decode github contents: %w", err)
	}

	return []byte(content), nil
}

func (f *fetcher) fetchGitLab(ctx context.Context, baseURL, projectPath string) ([]byte, error) {
	client, err := gitlab.NewClient("",
		gitlab.WithBaseURL(baseURL),
		gitlab.WithHTTPClient(f.httpClient),
	)
	if err != nil {
		return nil, fmt.Errorf("create gitlab client: %w", err)
	}

	ref := gitlabDefaultRef

	raw, _, err := client.RepositoryFiles.GetRawFile(
		projectPath,
		manifestFile,
		&gitlab.GetRawFileOptions{Ref: &ref},
		gitlab.WithContext(ctx),
	)
	if err != nil {
		return nil, fmt.Errorf("get gitlab raw file: %w", err)
	}

	return raw, nil
}
