package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/Maikl76/legislativa"
	lhttp "github.com/Maikl76/legislativa/http"
	"github.com/Maikl76/legislativa/mock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testCatalog() *legislativa.Catalog {
	return &legislativa.Catalog{
		ID:       "c0ffee",
		LoadedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Sources:  []string{"https://x.org/legal/index.html"},
		Documents: []*legislativa.Document{{
			Name:      "report.pdf",
			Category:  legislativa.CategoryLegislation,
			SourceURL: "https://x.org/legal/index.html",
			FileURL:   "https://x.org/legal/report.pdf",
			Content:   "Law A",
		}},
		Status: legislativa.StatusMap{"report.pdf": legislativa.StatusNew},
	}
}

func staticCatalog(c *legislativa.Catalog) *mock.CatalogService {
	return &mock.CatalogService{
		CatalogFn: func() *legislativa.Catalog { return c },
	}
}

func postForm(t *testing.T, h http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestServer_Ask(t *testing.T) {
	t.Parallel()

	t.Run("returns answer", func(t *testing.T) {
		t.Parallel()

		var asked string
		asker := &mock.Asker{
			AskFn: func(_ context.Context, question string) (string, error) {
				asked = question
				return "Section 3 applies.", nil
			},
		}
		s := lhttp.NewServer(asker, staticCatalog(testCatalog()), nil)

		w := postForm(t, s.Handler(), "/ask", url.Values{"question": {"  What applies?  "}})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Section 3 applies.", decode(t, w)["answer"])
		assert.Equal(t, "What applies?", asked)
	})

	t.Run("rejects blank question without asking", func(t *testing.T) {
		t.Parallel()

		asker := &mock.Asker{
			AskFn: func(_ context.Context, _ string) (string, error) {
				t.Fatal("asker must not be called")
				return "", nil
			},
		}
		s := lhttp.NewServer(asker, staticCatalog(testCatalog()), nil)

		for _, q := range []string{"", "   "} {
			w := postForm(t, s.Handler(), "/ask", url.Values{"question": {q}})

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.NotEmpty(t, decode(t, w)["error"])
		}
	})

	t.Run("maps invalid error to 400", func(t *testing.T) {
		t.Parallel()

		asker := &mock.Asker{
			AskFn: func(_ context.Context, _ string) (string, error) {
				return "", legislativa.Errorf(legislativa.EINVALID, "question required")
			},
		}
		s := lhttp.NewServer(asker, staticCatalog(testCatalog()), nil)

		w := postForm(t, s.Handler(), "/ask", url.Values{"question": {"q"}})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "question required", decode(t, w)["error"])
	})

	t.Run("hides internal errors", func(t *testing.T) {
		t.Parallel()

		asker := &mock.Asker{
			AskFn: func(_ context.Context, _ string) (string, error) {
				return "", errors.New("connection refused to 10.0.0.5")
			},
		}
		s := lhttp.NewServer(asker, staticCatalog(testCatalog()), nil)

		w := postForm(t, s.Handler(), "/ask", url.Values{"question": {"q"}})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Internal error.", decode(t, w)["error"])
	})
}

func TestServer_Catalog(t *testing.T) {
	t.Parallel()

	for _, path := range []string{"/", "/api/catalog"} {
		t.Run(path, func(t *testing.T) {
			t.Parallel()

			s := lhttp.NewServer(&mock.Asker{}, staticCatalog(testCatalog()), nil)

			req := httptest.NewRequest(http.MethodGet, path, nil)
			w := httptest.NewRecorder()
			s.Handler().ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)
			body := decode(t, w)
			assert.Equal(t, "c0ffee", body["id"])
			assert.Equal(t, "2026-03-01T12:00:00Z", body["loaded_at"])
			assert.Equal(t, []any{"https://x.org/legal/index.html"}, body["sources"])
			assert.Equal(t, map[string]any{"report.pdf": "new"}, body["status"])
			docs, ok := body["documents"].([]any)
			require.True(t, ok)
			require.Len(t, docs, 1)
			doc := docs[0].(map[string]any)
			assert.Equal(t, "report.pdf", doc["name"])
			assert.Equal(t, "https://x.org/legal/report.pdf", doc["fileUrl"])
		})
	}
}

func TestServer_Reload(t *testing.T) {
	t.Parallel()

	t.Run("returns document count", func(t *testing.T) {
		t.Parallel()

		catalog := &mock.CatalogService{
			ReloadFn: func(_ context.Context) (*legislativa.Catalog, error) {
				return testCatalog(), nil
			},
		}
		s := lhttp.NewServer(&mock.Asker{}, catalog, nil)

		w := postForm(t, s.Handler(), "/reload", url.Values{})

		require.Equal(t, http.StatusOK, w.Code)
		body := decode(t, w)
		assert.InDelta(t, 1, body["documents"], 0)
		assert.Equal(t, "c0ffee", body["id"])
	})

	t.Run("returns 500 on failure", func(t *testing.T) {
		t.Parallel()

		catalog := &mock.CatalogService{
			ReloadFn: func(_ context.Context) (*legislativa.Catalog, error) {
				return nil, errors.New("disk full")
			},
		}
		s := lhttp.NewServer(&mock.Asker{}, catalog, nil)

		w := postForm(t, s.Handler(), "/reload", url.Values{})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, decode(t, w), "error")
	})
}

func TestServer_Health(t *testing.T) {
	t.Parallel()

	s := lhttp.NewServer(&mock.Asker{}, staticCatalog(testCatalog()), nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode(t, w)["status"])
}

func TestServer_OpenClose(t *testing.T) {
	t.Parallel()

	s := lhttp.NewServer(&mock.Asker{}, staticCatalog(testCatalog()), nil)
	require.NoError(t, s.Open("127.0.0.1:0"))

	resp, err := http.Get("http://" + s.Addr() + "/health")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, s.Close())
	_, open := <-s.Err()
	assert.False(t, open)
}
