package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	graphql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
)

// RegisterGraphQLRoutes mounts the GraphQL endpoint and a health probe.
func RegisterGraphQLRoutes(r *gin.Engine, schema *graphql.Schema) {
	handler := &relay.Handler{Schema: schema}
	r.POST("/graphql", gin.WrapH(handler))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
