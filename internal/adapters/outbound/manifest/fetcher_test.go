package manifest_test

import (
	"encoding/base64"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/h2non/gock"
	"github.com/stretchr/testify/require"

	"github.com/skillcoder/kubedev-controller/internal/adapters/outbound/manifest"
	"github.com/skillcoder/kubedev-controller/internal/logic/workspace"
)

const gitpodYAML = `
image: python:3.12
tasks:
  - init: pip install -r requirements.txt
    command: python app.py
ports:
  - port: 5000
`

func newGitHubFetcher(t *testing.T) workspace.ManifestFetcher {
	t.Helper()

	client := &http.Client{}
	gock.InterceptClient(client)
	t.Cleanup(func() {
		gock.RestoreClient(client)
		gock.Off()
	})

	f, err := manifest.New(slog.Default(), manifest.Options{
		Timeout:    time.Second,
		HTTPClient: client,
	})
	require.NoError(t, err)

	return f
}

func TestFetch_GitHub(t *testing.T) {
	f := newGitHubFetcher(t)

	gock.New("https://api.github.com").
		Get("/repos/acme/app/contents/.gitpod.yml").
		Reply(200).
		JSON(map[string]string{
			"type":     "file",
			"name":     ".gitpod.yml",
			"encoding": "base64",
			"content":  base64.StdEncoding.EncodeToString([]byte(gitpodYAML)),
		})

	overlay, ok := f.Fetch(t.Context(), "https://github.com/acme/app.git")
	require.True(t, ok)
	require.Equal(t, &workspace.ManifestOverlay{
		Image: "python:3.12",
		Commands: workspace.Commands{
			Init:  "pip install -r requirements.txt",
			Start: "python app.py",
		},
		Ports: []int32{5000},
	}, overlay)
	require.True(t, gock.IsDone())
}

func TestFetch_GitHubMissingManifest(t *testing.T) {
	f := newGitHubFetcher(t)

	gock.New("https://api.github.com").
		Get("/repos/acme/empty/contents/.gitpod.yml").
		Reply(404).
		JSON(map[string]string{"message": "Not Found"})

	overlay, ok := f.Fetch(t.Context(), "https://github.com/acme/empty")
	require.False(t, ok)
	require.Nil(t, overlay)
}

func TestFetch_GitLab(t *testing.T) {
	t.Parallel()

	requests := make(chan *url.URL, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "/repository/files/") {
			return
		}

		requests <- r.URL

		_, _ = w.Write([]byte(gitpodYAML))
	}))
	t.Cleanup(srv.Close)

	base, err := url.Parse(srv.URL)
	require.NoError(t, err)

	f, err := manifest.New(slog.Default(), manifest.Options{
		Timeout:     time.Second,
		GitLabHosts: []string{base.Host},
		HTTPClient:  srv.Client(),
	})
	require.NoError(t, err)

	overlay, ok := f.Fetch(t.Context(), srv.URL+"/group/sub/app.git")
	require.True(t, ok)
	require.Equal(t, "python:3.12", overlay.Image)
	require.Equal(t, []int32{5000}, overlay.Ports)

	got := <-requests
	require.Equal(t, "/api/v4/projects/group%2Fsub%2Fapp/repository/files/.gitpod.yml/raw", got.EscapedPath())
	require.Equal(t, "HEAD", got.Query().Get("ref"))
}

func TestFetch_Timeout(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(release)
		srv.Close()
	})

	base, err := url.Parse(srv.URL)
	require.NoError(t, err)

	f, err := manifest.New(slog.Default(), manifest.Options{
		Timeout:     50 * time.Millisecond,
		GitLabHosts: []string{base.Host},
		HTTPClient:  srv.Client(),
	})
	require.NoError(t, err)

	start := time.Now()
	overlay, ok := f.Fetch(t.Context(), srv.URL+"/acme/slow")
	require.False(t, ok)
	require.Nil(t, overlay)
	require.Less(t, time.Since(start), 5*time.Second)
}

func TestFetch_Unsupported(t *testing.T) {
	t.Parallel()

	f, err := manifest.New(slog.Default(), manifest.Options{})
	require.NoError(t, err)

	tests := []struct {
		name string
		give string
	}{
		{name: "unknown host", give: "https://bitbucket.org/acme/app"},
		{name: "missing repository", give: "https://github.com/acme"},
		{name: "nested github path", give: "https://github.com/acme/app/tree"},
		{name: "not a url", give: "://"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			overlay, ok := f.Fetch(t.Context(), tt.give)
			require.False(t, ok)
			require.Nil(t, overlay)
		})
	}
}
