package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSitemap_GroupsMethodsByPath(t *testing.T) {
	r := gin.New()
	noop := func(c *gin.Context) {}
	r.GET("/planet", noop)
	r.POST("/planet", noop)
	r.DELETE("/planet/:id", noop)
	r.GET("/", NewSitemapHandler(r.Routes).Sitemap)

	w := perform(r, http.MethodGet, "/", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"endpoints":[
		{"path":"/","methods":["GET"]},
		{"path":"/planet","methods":["GET","POST"]},
		{"path":"/planet/:id","methods":["DELETE"]}
	]}`, w.Body.String())
}
