package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/secretcookie/pkg/logger"
	"github.com/dmitrymomot/secretcookie/pkg/segment"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	segments, err := segment.NewFromConfig(
		segment.Config{Key: "demo-test-key"},
		segment.WithLogger(logger.Discard()),
	)
	require.NoError(t, err)

	srv := httptest.NewServer(newRouter(segments))
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, url string, cookies ...*http.Cookie) (*http.Response, string) {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)
	for _, c := range cookies {
		req.AddCookie(c)
	}

	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res, string(body)
}

func TestIndex(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	res, body := get(t, srv.URL+"/")
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "Undefined", body, "the first visit has no stored name yet")

	cookies := res.Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "userInfo", cookies[0].Name)

	// The returning visitor already has the segment; nothing is re-sent.
	res, body = get(t, srv.URL+"/", cookies...)
	assert.Equal(t, "muhammetsafak", body)
	assert.Empty(t, res.Cookies())
}

func TestDebug(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	res, body := get(t, srv.URL+"/debug")
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var got struct {
		Segment     string   `json:"segment"`
		Len         int      `json:"len"`
		Diagnostics []string `json:"diagnostics"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &got))
	assert.Equal(t, "userInfo", got.Segment)
	assert.Zero(t, got.Len)
	assert.Equal(t, []string{"The userInfo segment is not found in the client."}, got.Diagnostics)

	_, body = get(t, srv.URL+"/debug", &http.Cookie{Name: "userInfo", Value: "garbage"})
	require.NoError(t, json.Unmarshal([]byte(body), &got))
	assert.Equal(t, []string{"Segment userInfo could not be decrypted; an empty or invalid value."}, got.Diagnostics)
}

func TestDebug_ReturningVisitor(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	res, _ := get(t, srv.URL+"/")
	_, body := get(t, srv.URL+"/debug", res.Cookies()...)

	var got struct {
		Keys        []string `json:"keys"`
		Len         int      `json:"len"`
		Diagnostics []string `json:"diagnostics"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &got))
	assert.Equal(t, 3, got.Len)
	assert.ElementsMatch(t, []string{"username", "mail", "visitor"}, got.Keys)
	assert.Empty(t, got.Diagnostics)
}
