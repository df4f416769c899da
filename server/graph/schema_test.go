package graph

import (
	"context"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"
	"github.com/stretchr/testify/assert"

	"github.com/sociafeed/sociafeed-backend/server/resolver"
	"github.com/sociafeed/sociafeed-backend/store"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Setenv("JWT_SECRET", "test-secret")
	os.Exit(m.Run())
}

func newTestSchema(t *testing.T) graphql.Schema {
	r := resolver.NewResolver(store.NewFakeStores(), resolver.NewFakeFeedCache())
	schema, err := NewSchema(r)
	assert.Nil(t, err)
	return schema
}

func requestContext(token string) context.Context {
	gc, _ := gin.CreateTestContext(httptest.NewRecorder())
	req := httptest.NewRequest("POST", "/api/graphql", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	gc.Request = req
	return context.WithValue(context.Background(), "GinContextKey", gc)
}

func execute(schema graphql.Schema, ctx context.Context, query string, variables map[string]interface{}) *graphql.Result {
	return graphql.Do(graphql.Params{
		Schema:         schema,
		RequestString:  query,
		VariableValues: variables,
		Context:        ctx,
	})
}

func data(t *testing.T, result *graphql.Result) map[string]interface{} {
	assert.Empty(t, result.Errors)
	payload, ok := result.Data.(map[string]interface{})
	assert.True(t, ok)
	return payload
}

// Register, log in, post, read the feed, comment from a second
// account, and read back the single post, all through the executable
// schema.
func TestSchema_EndToEnd(t *testing.T) {
	schema := newTestSchema(t)
	anon := requestContext("")

	register := `mutation($input: CreateUserInput) { createAccount(input: $input) { message } }`
	result := execute(schema, anon, register, map[string]interface{}{
		"input": map[string]interface{}{
			"name":     "Budi Santoso",
			"username": "budisantoso",
			"email":    "budi@mail.com",
			"password": "abcde",
		},
	})
	payload := data(t, result)
	account := payload["createAccount"].(map[string]interface{})
	assert.Equal(t, "Success create account", account["message"])

	login := `mutation($input: LoginInput) { login(input: $input) { access_token username } }`
	result = execute(schema, anon, login, map[string]interface{}{
		"input": map[string]interface{}{"identifier": "budisantoso", "password": "abcde"},
	})
	payload = data(t, result)
	session := payload["login"].(map[string]interface{})
	assert.Equal(t, "budisantoso", session["username"])
	token := session["access_token"].(string)
	assert.NotEmpty(t, token)
	ctx := requestContext(token)

	createPost := `mutation($input: CreatePostInput) { createPost(input: $input) { _id content tags imgUrl authorId comments { _id } likes { _id } } }`
	result = execute(schema, ctx, createPost, map[string]interface{}{
		"input": map[string]interface{}{
			"content": "hello",
			"tags":    []interface{}{"first"},
			"imgUrl":  "https://img.example/p.jpg",
		},
	})
	payload = data(t, result)
	post := payload["createPost"].(map[string]interface{})
	assert.Equal(t, "hello", post["content"])
	postId := post["_id"].(string)
	assert.Len(t, postId, 24)
	assert.Equal(t, []interface{}{"first"}, post["tags"])
	assert.Equal(t, []interface{}{}, post["comments"])

	feed := `query { getAllPosts { _id content Author { username email } } }`
	result = execute(schema, ctx, feed, nil)
	payload = data(t, result)
	posts := payload["getAllPosts"].([]interface{})
	assert.Equal(t, 1, len(posts))
	first := posts[0].(map[string]interface{})
	assert.Equal(t, postId, first["_id"])
	author := first["Author"].(map[string]interface{})
	assert.Equal(t, "budisantoso", author["username"])

	// second account comments on the post
	execute(schema, anon, register, map[string]interface{}{
		"input": map[string]interface{}{
			"name":     "Siti Aminah",
			"username": "sitiaminah",
			"email":    "siti@mail.com",
			"password": "abcde",
		},
	})
	result = execute(schema, anon, login, map[string]interface{}{
		"input": map[string]interface{}{"identifier": "siti@mail.com", "password": "abcde"},
	})
	payload = data(t, result)
	token2 := payload["login"].(map[string]interface{})["access_token"].(string)
	ctx2 := requestContext(token2)

	addComment := `mutation($input: CreateCommentInput) { addComment(input: $input) { comments { content username } } }`
	result = execute(schema, ctx2, addComment, map[string]interface{}{
		"input": map[string]interface{}{"postId": postId, "content": "nice!"},
	})
	payload = data(t, result)
	comments := payload["addComment"].(map[string]interface{})["comments"].([]interface{})
	assert.Equal(t, 1, len(comments))
	comment := comments[0].(map[string]interface{})
	assert.Equal(t, "nice!", comment["content"])
	assert.Equal(t, "sitiaminah", comment["username"])

	getPost := `query($id: ID!) { getPostById(id: $id) { _id comments { username } } }`
	result = execute(schema, ctx, getPost, map[string]interface{}{"id": postId})
	payload = data(t, result)
	read := payload["getPostById"].(map[string]interface{})
	assert.Equal(t, postId, read["_id"])
	readComments := read["comments"].([]interface{})
	assert.Equal(t, 1, len(readComments))
}

func TestSchema_UnauthorizedSurfacesInErrors(t *testing.T) {
	schema := newTestSchema(t)

	result := execute(schema, requestContext(""), `query { getAllPosts { _id } }`, nil)
	assert.NotEmpty(t, result.Errors)
	assert.Equal(t, "UNAUTHORIZED", result.Errors[0].Message)
}

func TestSchema_FollowRoundTrip(t *testing.T) {
	schema := newTestSchema(t)
	anon := requestContext("")

	register := `mutation($input: CreateUserInput) { createAccount(input: $input) { message } }`
	login := `mutation($input: LoginInput) { login(input: $input) { access_token } }`

	tokens := map[string]string{}
	for _, username := range []string{"budisantoso", "sitiaminah"} {
		execute(schema, anon, register, map[string]interface{}{
			"input": map[string]interface{}{
				"username": username,
				"email":    username + "@mail.com",
				"password": "abcde",
			},
		})
		result := execute(schema, anon, login, map[string]interface{}{
			"input": map[string]interface{}{"identifier": username, "password": "abcde"},
		})
		payload := data(t, result)
		tokens[username] = payload["login"].(map[string]interface{})["access_token"].(string)
	}
	ctx1 := requestContext(tokens["budisantoso"])
	ctx2 := requestContext(tokens["sitiaminah"])

	// resolve siti's id via profile lookup
	result := execute(schema, ctx2, `query { getUserById { _id username } }`, nil)
	payload := data(t, result)
	sitiId := payload["getUserById"].(map[string]interface{})["_id"].(string)

	follow := `mutation($id: ID!) { createFollow(followingId: $id) { message } }`
	result = execute(schema, ctx1, follow, map[string]interface{}{"id": sitiId})
	payload = data(t, result)
	assert.Equal(t, "Follow created successfully",
		payload["createFollow"].(map[string]interface{})["message"])

	result = execute(schema, ctx1, follow, map[string]interface{}{"id": sitiId})
	assert.NotEmpty(t, result.Errors)
	assert.Equal(t, "You are already following this user.", result.Errors[0].Message)

	isFollowing := `query($id: ID!) { isFollowing(followingId: $id) }`
	result = execute(schema, ctx1, isFollowing, map[string]interface{}{"id": sitiId})
	payload = data(t, result)
	assert.Equal(t, true, payload["isFollowing"])

	// siti's profile now lists budi as a follower
	result = execute(schema, ctx2, `query { getUserById { followers { username } following { username } } }`, nil)
	payload = data(t, result)
	profile := payload["getUserById"].(map[string]interface{})
	followers := profile["followers"].([]interface{})
	assert.Equal(t, 1, len(followers))
	assert.Equal(t, "budisantoso", followers[0].(map[string]interface{})["username"])
	assert.Equal(t, 0, len(profile["following"].([]interface{})))

	unfollow := `mutation($id: ID!) { unFollow(followingId: $id) { message } }`
	result = execute(schema, ctx1, unfollow, map[string]interface{}{"id": sitiId})
	payload = data(t, result)
	assert.Equal(t, "Unfollow successfully",
		payload["unFollow"].(map[string]interface{})["message"])

	result = execute(schema, ctx1, isFollowing, map[string]interface{}{"id": sitiId})
	payload = data(t, result)
	assert.Equal(t, false, payload["isFollowing"])
}
