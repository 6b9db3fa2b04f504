package reddit_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/postcraft-api/internal/config"
	"github.com/phrazzld/postcraft-api/internal/platform/reddit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(baseURL string) config.RedditConfig {
	return config.RedditConfig{
		BaseURL:      baseURL,
		UserAgent:    "PostCraftAI/1.0",
		DefaultLimit: 12,
		MaxLimit:     50,
	}
}

func TestClient_TargetURL(t *testing.T) {
	client := reddit.NewClient(testConfig("https://www.reddit.com/"), nil)

	tests := []struct {
		name  string
		query reddit.Query
		want  string
	}{
		{
			name:  "list uses default limit",
			query: reddit.Query{Mode: reddit.ModeList, Sub: "technology"},
			want:  "https://www.reddit.com/r/technology/hot.json?limit=12&raw_json=1&api_type=json",
		},
		{
			name:  "list caps limit",
			query: reddit.Query{Mode: reddit.ModeList, Sub: "technology", Limit: 500},
			want:  "https://www.reddit.com/r/technology/hot.json?limit=50&raw_json=1&api_type=json",
		},
		{
			name:  "list escapes sub",
			query: reddit.Query{Mode: reddit.ModeList, Sub: "a b/c", Limit: 3},
			want:  "https://www.reddit.com/r/a%20b%2Fc/hot.json?limit=3&raw_json=1&api_type=json",
		},
		{
			name:  "comments strips trailing slashes",
			query: reddit.Query{Mode: reddit.ModeComments, Permalink: "/r/technology/comments/abc123/title//", Limit: 9},
			want:  "https://www.reddit.com/r/technology/comments/abc123/title.json?limit=9&raw_json=1&api_type=json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := client.TargetURL(tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := client.TargetURL(reddit.Query{Mode: "search"})
	assert.ErrorIs(t, err, reddit.ErrInvalidMode)
}

func TestClient_Fetch(t *testing.T) {
	var gotPath, gotQuery, gotAccept, gotAgent string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotAccept = r.Header.Get("Accept")
		gotAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json; charset=UTF-8")
		_, _ = w.Write([]byte(`{"kind":"Listing","data":{"children":[]}}`))
	}))
	defer upstream.Close()

	client := reddit.NewClient(testConfig(upstream.URL), upstream.Client())

	resp, err := client.Fetch(context.Background(), reddit.Query{Mode: reddit.ModeList, Sub: "golang", Limit: 3})
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `{"kind":"Listing","data":{"children":[]}}`, string(body))
	assert.Equal(t, "application/json; charset=UTF-8", resp.Header.Get("Content-Type"))
	assert.Equal(t, "/r/golang/hot.json", gotPath)
	assert.Equal(t, "limit=3&raw_json=1&api_type=json", gotQuery)
	assert.Equal(t, "application/json", gotAccept)
	assert.Equal(t, "PostCraftAI/1.0", gotAgent)
}

func TestClient_FetchFollowsRedirectsAndRelaysStatus(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/r/old/hot.json", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/r/new/hot.json?"+r.URL.RawQuery, http.StatusMovedPermanently)
	})
	mux.HandleFunc("/r/new/hot.json", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"reason":"private"}`))
	})
	upstream := httptest.NewServer(mux)
	defer upstream.Close()

	client := reddit.NewClient(testConfig(upstream.URL), upstream.Client())

	resp, err := client.Fetch(context.Background(), reddit.Query{Mode: reddit.ModeList, Sub: "old"})
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, `{"reason":"private"}`, string(body))
}

func TestClient_FetchTransportError(t *testing.T) {
	upstream := httptest.NewServer(http.NotFoundHandler())
	baseURL := upstream.URL
	upstream.Close()

	client := reddit.NewClient(testConfig(baseURL), nil)

	resp, err := client.Fetch(context.Background(), reddit.Query{Mode: reddit.ModeList, Sub: "golang"})
	assert.Error(t, err)
	assert.Nil(t, resp)
}
