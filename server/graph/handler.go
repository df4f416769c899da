package graph

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"
)

type graphqlRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// GinHandler executes GraphQL requests against the schema. Per the
// GraphQL convention, resolver failures are reported in the response's
// errors array with HTTP 200; only an unreadable request body is a
// transport-level error.
func GinHandler(schema graphql.Schema) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req graphqlRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errors": []gin.H{{"message": "invalid request body"}}})
			return
		}

		result := graphql.Do(graphql.Params{
			Schema:         schema,
			RequestString:  req.Query,
			OperationName:  req.OperationName,
			VariableValues: req.Variables,
			Context:        c.Request.Context(),
		})
		c.JSON(http.StatusOK, result)
	}
}
