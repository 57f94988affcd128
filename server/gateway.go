package server

import (
	"io"
	"net/http"
	"strings"

	"github.com/existflow/dayplan/internal/logger"
	"github.com/labstack/echo/v4"
)

// handleFetch serves requests cache-first: a hit in the active generation
// is returned directly, a miss goes to the upstream origin, and when both
// fail a navigation request gets the cached root document as the offline
// page. Nothing fetched at runtime is cached; only install populates the
// cache.
func (s *Server) handleFetch(c echo.Context) error {
	req := c.Request()

	// Proxy-form requests target another origin; never intercept those.
	if req.URL.IsAbs() {
		return c.NoContent(http.StatusBadGateway)
	}

	if req.Method == http.MethodGet || req.Method == http.MethodHead {
		asset, ok, err := s.storage.Lookup(s.active, req.URL.Path)
		if err != nil {
			logger.Error("Cache lookup failed",
				logger.F("path", req.URL.Path),
				logger.F("error", err))
		}
		if ok {
			return c.Blob(http.StatusOK, asset.ContentType, asset.Body)
		}
	}

	if handled, err := s.proxyUpstream(c); handled {
		return err
	}

	if isNavigation(req) {
		root, ok, err := s.storage.Lookup(s.active, "/")
		if err == nil && ok {
			logger.Warn("Upstream unreachable, serving offline page",
				logger.F("path", req.URL.Path))
			return c.Blob(http.StatusOK, root.ContentType, root.Body)
		}
	}

	return c.NoContent(http.StatusBadGateway)
}

// proxyUpstream forwards the request to the origin and streams the
// response back unchanged. handled is false only when the origin could
// not be reached and nothing was written yet, so the caller may still
// fall back to the offline page.
func (s *Server) proxyUpstream(c echo.Context) (handled bool, err error) {
	req := c.Request()
	url := strings.TrimSuffix(s.upstream, "/") + req.URL.RequestURI()

	upReq, err := http.NewRequestWithContext(req.Context(), req.Method, url, req.Body)
	if err != nil {
		return false, err
	}
	upReq.Header = req.Header.Clone()

	resp, err := s.client.Do(upReq)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	h := c.Response().Header()
	for k, vv := range resp.Header {
		for _, v := range vv {
			h.Add(k, v)
		}
	}
	c.Response().WriteHeader(resp.StatusCode)
	_, err = io.Copy(c.Response(), resp.Body)
	return true, err
}

// isNavigation reports whether the request expects a full document
func isNavigation(req *http.Request) bool {
	if req.Header.Get("Sec-Fetch-Mode") == "navigate" {
		return true
	}
	return strings.Contains(req.Header.Get("Accept"), "text/html")
}
