package handler

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Static serves the dashboard assets for any GET not matched by the API
type Static struct {
	root   string
	logger *zap.Logger
}

// NewStaticHandler creates a static handler rooted at dir
func NewStaticHandler(dir string, logger *zap.Logger) (*Static, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	return &Static{root: root, logger: logger}, nil
}

// Serve handles GET /*
func (h *Static) Serve(c echo.Context) error {
	file, ok := h.resolve(c.Request().URL.Path)
	if !ok {
		return echo.ErrNotFound
	}

	info, err := os.Stat(file)
	if err != nil || info.IsDir() {
		return echo.ErrNotFound
	}
	return c.File(file)
}

// resolve maps an already decoded request path to a file under the public
// root. Paths that escape the root are rejected.
func (h *Static) resolve(requestPath string) (string, bool) {
	p := requestPath
	if p == "" || p == "/" {
		p = "index.html"
	}
	p = strings.TrimPrefix(p, "/")

	file, err := filepath.Abs(filepath.Join(h.root, filepath.FromSlash(p)))
	if err != nil {
		return "", false
	}
	if file != h.root && !strings.HasPrefix(file, h.root+string(filepath.Separator)) {
		if h.logger != nil {
			h.logger.Warn("static.path.rejected", zap.String("path", requestPath))
		}
		return "", false
	}
	return file, true
}
