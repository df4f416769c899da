package resolver

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/sociafeed/sociafeed-backend/store"
)

// feedCacheKey is the single global cache key for the author-joined,
// newest-first post feed. There are no per-post entries; every post
// mutation deletes this key.
const feedCacheKey = "posts:all"

// FeedCache is the read-through cache consumed by the post resolvers.
// Get reports a miss with ok=false rather than an error.
type FeedCache interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key string, value string) error
	Del(ctx context.Context, key string) error
}

// It serves as dependency injection for your app, add any dependencies you require here.

type Resolver struct {
	Users   store.UserStore
	Posts   store.PostStore
	Follows store.FollowStore
	Cache   FeedCache
}

func NewResolver(stores *store.Stores, cache FeedCache) *Resolver {
	return &Resolver{
		Users:   stores.Users,
		Posts:   stores.Posts,
		Follows: stores.Follows,
		Cache:   cache,
	}
}

func GetGinContextFromContext(ctx context.Context) (*gin.Context, error) {
	ginContext := ctx.Value("GinContextKey")
	if ginContext == nil {
		err := fmt.Errorf("could not retrieve gin.Context")
		return nil, err
	}
	gc, ok := ginContext.(*gin.Context)
	if !ok {
		err := fmt.Errorf("gin.Context has wrong type")
		return nil, err
	}
	return gc, nil
}
