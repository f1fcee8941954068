package app

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"forum/internal/app/post"
	"forum/internal/app/thread"
	"forum/internal/db/dbtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testApp struct {
	t       *testing.T
	handler http.Handler
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	application, err := Bootstrap(dbtest.Config(t), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.Close() })
	return &testApp{t: t, handler: application.Router.Engine}
}

func (a *testApp) do(method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	a.handler.ServeHTTP(w, req)
	return w
}

func (a *testApp) decode(w *httptest.ResponseRecorder, out any) {
	a.t.Helper()
	require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
}

func (a *testApp) createThread(body string) thread.ThreadResponse {
	a.t.Helper()
	w := a.do(http.MethodPost, "/api/forum/threads", body)
	require.Equal(a.t, http.StatusCreated, w.Code, w.Body.String())
	var th thread.ThreadResponse
	a.decode(w, &th)
	return th
}

func (a *testApp) addPost(threadID uint64, body string) post.PostResponse {
	a.t.Helper()
	w := a.do(http.MethodPost, fmt.Sprintf("/api/forum/threads/%d/posts", threadID), body)
	require.Equal(a.t, http.StatusCreated, w.Code, w.Body.String())
	var p post.PostResponse
	a.decode(w, &p)
	return p
}

func (a *testApp) listThreads() []thread.SummaryResponse {
	a.t.Helper()
	w := a.do(http.MethodGet, "/api/forum/threads", "")
	require.Equal(a.t, http.StatusOK, w.Code)
	var list []thread.SummaryResponse
	a.decode(w, &list)
	return list
}

func (a *testApp) getThread(id uint64) thread.ThreadResponse {
	a.t.Helper()
	w := a.do(http.MethodGet, fmt.Sprintf("/api/forum/threads/%d", id), "")
	require.Equal(a.t, http.StatusOK, w.Code, w.Body.String())
	var th thread.ThreadResponse
	a.decode(w, &th)
	return th
}

func TestForumAPI(t *testing.T) {
	t.Run("create then get returns the same single post", func(t *testing.T) {
		a := newTestApp(t)

		created := a.createThread(`{"title":"Hello","body":"World"}`)
		assert.Equal(t, "Hello", created.Title)
		assert.Equal(t, "Anon", created.Author)
		require.Len(t, created.Posts, 1)
		assert.Equal(t, "Anon", created.Posts[0].Author)
		assert.Equal(t, "World", created.Posts[0].Body)
		assert.Equal(t, created.CreatedAt, created.Posts[0].CreatedAt)
		assert.Regexp(t, `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}Z$`, created.CreatedAt)

		fetched := a.getThread(created.ID)
		assert.Equal(t, created, fetched)
	})

	t.Run("a new thread lists with one post and its own activity time", func(t *testing.T) {
		a := newTestApp(t)
		created := a.createThread(`{"title":"Hello","body":"World","author":"alice"}`)

		list := a.listThreads()
		require.Len(t, list, 1)
		assert.Equal(t, created.ID, list[0].ID)
		assert.Equal(t, "alice", list[0].Author)
		assert.Equal(t, int64(1), list[0].PostsCount)
		assert.Equal(t, created.Posts[0].CreatedAt, list[0].LastPostAt)
	})

	t.Run("empty forum lists as an empty array", func(t *testing.T) {
		a := newTestApp(t)

		w := a.do(http.MethodGet, "/api/forum/threads", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("invalid threads are rejected and not stored", func(t *testing.T) {
		a := newTestApp(t)

		for _, body := range []string{
			`{"title":"","body":"World"}`,
			`{"title":"   ","body":"World"}`,
			`{"title":"Hello","body":""}`,
			`{"title":"Hello","body":" \n "}`,
			`{"title":"Hello"}`,
			`{}`,
			`not json`,
		} {
			w := a.do(http.MethodPost, "/api/forum/threads", body)
			assert.Equal(t, http.StatusBadRequest, w.Code, body)
			assert.JSONEq(t, `{"error":"title and body required"}`, w.Body.String(), body)
		}

		assert.Empty(t, a.listThreads())
	})

	t.Run("blank authors become Anon", func(t *testing.T) {
		a := newTestApp(t)

		created := a.createThread(`{"title":"Hello","body":"World","author":"  "}`)
		assert.Equal(t, "Anon", created.Author)

		reply := a.addPost(created.ID, `{"body":"reply","author":"\t"}`)
		assert.Equal(t, "Anon", reply.Author)

		reply = a.addPost(created.ID, `{"body":"reply"}`)
		assert.Equal(t, "Anon", reply.Author)
	})

	t.Run("replies come back in insertion order", func(t *testing.T) {
		a := newTestApp(t)
		created := a.createThread(`{"title":"Hello","body":"World"}`)

		first := a.addPost(created.ID, `{"body":"one","author":"bob"}`)
		second := a.addPost(created.ID, `{"body":"two","author":"carol"}`)
		assert.Greater(t, second.ID, first.ID)
		assert.LessOrEqual(t, first.CreatedAt, second.CreatedAt)

		fetched := a.getThread(created.ID)
		require.Len(t, fetched.Posts, 3)
		assert.Equal(t, []post.PostResponse{created.Posts[0], first, second}, fetched.Posts)
		for i := 1; i < len(fetched.Posts); i++ {
			assert.LessOrEqual(t, fetched.Posts[i-1].CreatedAt, fetched.Posts[i].CreatedAt)
		}
	})

	t.Run("replying bumps a thread to the top", func(t *testing.T) {
		a := newTestApp(t)
		threadA := a.createThread(`{"title":"A","body":"a"}`)
		threadB := a.createThread(`{"title":"B","body":"b"}`)

		list := a.listThreads()
		require.Len(t, list, 2)
		assert.Equal(t, threadB.ID, list[0].ID)

		a.addPost(threadA.ID, `{"body":"bump"}`)

		list = a.listThreads()
		require.Len(t, list, 2)
		assert.Equal(t, threadA.ID, list[0].ID)
		assert.Equal(t, int64(2), list[0].PostsCount)
		assert.Equal(t, threadB.ID, list[1].ID)
	})

	t.Run("unknown threads", func(t *testing.T) {
		a := newTestApp(t)

		w := a.do(http.MethodGet, "/api/forum/threads/12345", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"thread not found"}`, w.Body.String())

		for _, body := range []string{`{"body":"hi"}`, `{"body":"hi","author":"bob"}`} {
			w = a.do(http.MethodPost, "/api/forum/threads/12345/posts", body)
			assert.Equal(t, http.StatusNotFound, w.Code)
			assert.JSONEq(t, `{"error":"thread not found"}`, w.Body.String())
		}
	})

	t.Run("blank reply bodies are rejected", func(t *testing.T) {
		a := newTestApp(t)
		created := a.createThread(`{"title":"Hello","body":"World"}`)

		w := a.do(http.MethodPost, fmt.Sprintf("/api/forum/threads/%d/posts", created.ID), `{"body":"   "}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"body required"}`, w.Body.String())

		assert.Len(t, a.getThread(created.ID).Posts, 1)
	})
}

func TestServiceEndpoints(t *testing.T) {
	t.Run("health answers ok", func(t *testing.T) {
		a := newTestApp(t)

		w := a.do(http.MethodGet, "/health", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "ok", w.Body.String())
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("api health probes the store", func(t *testing.T) {
		a := newTestApp(t)

		w := a.do(http.MethodGet, "/api/health", "")
		assert.Equal(t, http.StatusOK, w.Code)

		var status struct {
			Status   string `json:"status"`
			Services []struct {
				Name   string `json:"name"`
				Status string `json:"status"`
			} `json:"services"`
		}
		a.decode(w, &status)
		assert.Equal(t, "healthy", status.Status)
		require.Len(t, status.Services, 1)
		assert.Equal(t, "sqlite", status.Services[0].Name)
		assert.Equal(t, "up", status.Services[0].Status)
	})

	t.Run("metrics are exposed", func(t *testing.T) {
		a := newTestApp(t)
		a.do(http.MethodGet, "/api/forum/threads", "")

		w := a.do(http.MethodGet, "/metrics", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `forum_http_requests_total{method="GET",path="/api/forum/threads",status="200"}`)
	})

	t.Run("root page without a template", func(t *testing.T) {
		a := newTestApp(t)

		w := a.do(http.MethodGet, "/", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("root page renders the template", func(t *testing.T) {
		cfg := dbtest.Config(t)
		require.NoError(t, os.MkdirAll(cfg.TemplatesDir, 0o755))
		require.NoError(t, os.WriteFile(
			filepath.Join(cfg.TemplatesDir, "index.html"),
			[]byte(`<html><body data-api="{{ .APIBase }}"></body></html>`),
			0o644,
		))

		application, err := Bootstrap(cfg, zap.NewNop())
		require.NoError(t, err)
		t.Cleanup(func() { _ = application.Close() })

		w := httptest.NewRecorder()
		application.Router.Engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `data-api="/api/forum"`)
	})

	t.Run("seeding creates a welcome thread once", func(t *testing.T) {
		cfg := dbtest.Config(t)
		cfg.SeedWelcome = true

		application, err := Bootstrap(cfg, zap.NewNop())
		require.NoError(t, err)
		require.NoError(t, application.Close())

		application, err = Bootstrap(cfg, zap.NewNop())
		require.NoError(t, err)
		t.Cleanup(func() { _ = application.Close() })

		a := &testApp{t: t, handler: application.Router.Engine}
		list := a.listThreads()
		require.Len(t, list, 1)
		assert.Equal(t, int64(1), list[0].PostsCount)
	})
}
