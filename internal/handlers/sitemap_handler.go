package handlers

import (
	"net/http"
	"sort"

	"favorites_api/internal/responses"

	"github.com/gin-gonic/gin"
)

type Endpoint struct {
	Path    string   `json:"path"`
	Methods []string `json:"methods"`
}

// SitemapHandler lists every registered route. routes is read on each
// request so the list reflects everything registered after construction.
type SitemapHandler struct {
	routes func() gin.RoutesInfo
}

func NewSitemapHandler(routes func() gin.RoutesInfo) *SitemapHandler {
	return &SitemapHandler{routes: routes}
}

// Sitemap handles GET /
func (h *SitemapHandler) Sitemap(c *gin.Context) {
	responses.JSON(c, http.StatusOK, gin.H{"endpoints": buildSitemap(h.routes())})
}

func buildSitemap(routes gin.RoutesInfo) []Endpoint {
	byPath := make(map[string][]string)
	for _, r := range routes {
		byPath[r.Path] = append(byPath[r.Path], r.Method)
	}

	endpoints := make([]Endpoint, 0, len(byPath))
	for path, methods := range byPath {
		sort.Strings(methods)
		endpoints = append(endpoints, Endpoint{Path: path, Methods: methods})
	}
	sort.Slice(endpoints, func(i, j int) bool {
		return endpoints[i].Path < endpoints[j].Path
	})
	return endpoints
}
