package handler

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newStaticServer(t *testing.T) (*echo.Echo, string) {
	t.Helper()

	base := t.TempDir()
	root := filepath.Join(base, "public")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "js"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "index.html"), []byte("<h1>planner</h1>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "js", "app.js"), []byte("console.log(1)"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "50%.png"), []byte("png"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(base, "secret.txt"), []byte("secret"), 0o644))

	static, err := NewStaticHandler(root, zap.NewNop())
	require.NoError(t, err)

	e := echo.New()
	e.HTTPErrorHandler = HTTPErrorHandler(zap.NewNop())
	e.GET("/*", static.Serve)
	return e, root
}

func TestStaticServe(t *testing.T) {
	e, _ := newStaticServer(t)

	tests := []struct {
		name     string
		target   string
		wantCode int
		wantBody string
	}{
		{name: "root serves index", target: "/", wantCode: http.StatusOK, wantBody: "<h1>planner</h1>"},
		{name: "nested file", target: "/js/app.js", wantCode: http.StatusOK, wantBody: "console.log(1)"},
		{name: "percent in file name", target: "/50%25.png", wantCode: http.StatusOK, wantBody: "png"},
		{name: "missing file", target: "/missing.css", wantCode: http.StatusNotFound},
		{name: "directory", target: "/js", wantCode: http.StatusNotFound},
		{name: "encoded traversal", target: "/%2e%2e/secret.txt", wantCode: http.StatusNotFound},
		{name: "encoded slash traversal", target: "/..%2fsecret.txt", wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			} else {
				assert.NotContains(t, rec.Body.String(), "secret")
			}
		})
	}
}

func TestStaticResolveRejectsEscapes(t *testing.T) {
	_, root := newStaticServer(t)
	static, err := NewStaticHandler(root, nil)
	require.NoError(t, err)

	_, ok := static.resolve("/../secret.txt")
	assert.False(t, ok)

	_, ok = static.resolve("/../../etc/passwd")
	assert.False(t, ok)

	file, ok := static.resolve("/%2e%2e/secret.txt")
	require.True(t, ok, "escapes are decoded once by the server, not again here")
	assert.Equal(t, filepath.Join(root, "%2e%2e", "secret.txt"), file)

	file, ok = static.resolve("/")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(root, "index.html"), file)
}
