package graph

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/sociafeed/sociafeed-backend/server/middlewares"
	"github.com/sociafeed/sociafeed-backend/server/resolver"
	"github.com/sociafeed/sociafeed-backend/store"
)

func newTestRouter(t *testing.T) *gin.Engine {
	r := resolver.NewResolver(store.NewFakeStores(), resolver.NewFakeFeedCache())
	schema, err := NewSchema(r)
	assert.Nil(t, err)

	router := gin.New()
	router.Use(middlewares.GinContextToContext())
	router.POST("/api/graphql", GinHandler(schema))
	return router
}

func postGraphql(router *gin.Engine, token string, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/graphql", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestGinHandler_BadBody(t *testing.T) {
	router := newTestRouter(t)

	w := postGraphql(router, "", "{not json")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// Drive register, login and an authenticated feed read through the
// real HTTP stack: middleware, handler and executable schema.
func TestGinHandler_AuthFlow(t *testing.T) {
	router := newTestRouter(t)

	w := postGraphql(router, "", `{"query":"mutation { createAccount(input: {username: \"budisantoso\", email: \"budi@mail.com\", password: \"abcde\"}) { message } }"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var registered struct {
		Data struct {
			CreateAccount struct {
				Message string `json:"message"`
			} `json:"createAccount"`
		} `json:"data"`
	}
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &registered))
	assert.Equal(t, "Success create account", registered.Data.CreateAccount.Message)

	// feed read without a token is rejected
	w = postGraphql(router, "", `{"query":"query { getAllPosts { _id } }"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	var rejected struct {
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &rejected))
	assert.Equal(t, 1, len(rejected.Errors))
	assert.Equal(t, "UNAUTHORIZED", rejected.Errors[0].Message)

	w = postGraphql(router, "", `{"query":"mutation { login(input: {identifier: \"budisantoso\", password: \"abcde\"}) { access_token } }"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	var session struct {
		Data struct {
			Login struct {
				AccessToken string `json:"access_token"`
			} `json:"login"`
		} `json:"data"`
	}
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &session))
	assert.NotEmpty(t, session.Data.Login.AccessToken)

	w = postGraphql(router, session.Data.Login.AccessToken, `{"query":"query { getAllPosts { _id } }"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	var feed struct {
		Data struct {
			GetAllPosts []interface{} `json:"getAllPosts"`
		} `json:"data"`
		Errors []interface{} `json:"errors"`
	}
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &feed))
	assert.Empty(t, feed.Errors)
	assert.Equal(t, 0, len(feed.Data.GetAllPosts))
}
