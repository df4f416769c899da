package resolver

import (
	"context"
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sociafeed/sociafeed-backend/model"
	Logger "github.com/sociafeed/sociafeed-backend/utils/log"
)

// GetAllPosts returns the global feed, newest first, with each post's
// author joined. Reads go through the feed cache: on a hit the cached
// JSON is returned as-is, on a miss the aggregation runs and its
// result is written back. A failing cache read degrades to a miss
// instead of failing the request.
func (r *Resolver) GetAllPosts(ctx context.Context) ([]model.Post, error) {
	if _, err := r.Authenticate(ctx); err != nil {
		return nil, err
	}

	if cached, ok, err := r.Cache.Get(ctx, feedCacheKey); err != nil {
		Logger.LogV2.Errorf("feed cache read failed: %s", err)
	} else if ok {
		posts := []model.Post{}
		if err := json.Unmarshal([]byte(cached), &posts); err == nil {
			return posts, nil
		}
		Logger.LogV2.Errorf("discarding corrupt feed cache entry")
	}

	posts, err := r.Posts.FeedWithAuthors(ctx)
	if err != nil {
		Logger.LogV2.Errorf("fetch feed failed: %s", err)
		return nil, ErrFetchPosts
	}

	if encoded, err := json.Marshal(posts); err != nil {
		Logger.LogV2.Errorf("encode feed for cache failed: %s", err)
	} else if err := r.Cache.Set(ctx, feedCacheKey, string(encoded)); err != nil {
		Logger.LogV2.Errorf("feed cache write failed: %s", err)
	}

	return posts, nil
}

func (r *Resolver) GetPostById(ctx context.Context, id primitive.ObjectID) (*model.Post, error) {
	if _, err := r.Authenticate(ctx); err != nil {
		return nil, err
	}

	post, err := r.Posts.FindByIdWithAuthor(ctx, id)
	if err != nil {
		Logger.LogV2.Errorf("fetch post %s failed: %s", id.Hex(), err)
		return nil, ErrFetchPost
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return post, nil
}

// CreatePost inserts a post owned by the authenticated caller. The
// author is always the caller's identity, never client input.
func (r *Resolver) CreatePost(ctx context.Context, input model.CreatePostInput) (*model.Post, error) {
	identity, err := r.Authenticate(ctx)
	if err != nil {
		return nil, err
	}

	if input.Content == "" {
		return nil, ErrContentRequired
	}
	if input.ImgUrl == "" {
		return nil, ErrImageUrlRequired
	}

	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	now := time.Now()
	post := &model.Post{
		Content:   input.Content,
		Tags:      tags,
		ImgUrl:    input.ImgUrl,
		AuthorId:  identity.Id,
		Comments:  []model.Comment{},
		Likes:     []model.Like{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	id, err := r.Posts.Insert(ctx, post)
	if err != nil {
		Logger.LogV2.Errorf("insert post failed: %s", err)
		return nil, ErrCreatePost
	}
	post.Id = id

	if err := r.invalidateFeed(ctx); err != nil {
		return nil, ErrCreatePost
	}
	return post, nil
}

// AddComment appends a comment to an existing post. The comment's
// username and avatar come from the authenticated identity.
func (r *Resolver) AddComment(ctx context.Context, input model.CreateCommentInput) (*model.Post, error) {
	identity, err := r.Authenticate(ctx)
	if err != nil {
		return nil, err
	}

	if input.Content == "" {
		return nil, ErrContentRequired
	}

	post, err := r.Posts.FindById(ctx, input.PostId)
	if err != nil {
		Logger.LogV2.Errorf("fetch post %s failed: %s", input.PostId.Hex(), err)
		return nil, ErrAddComment
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	now := time.Now()
	comment := model.Comment{
		Id:        primitive.NewObjectID(),
		Content:   input.Content,
		Username:  identity.Username,
		ImgUrl:    identity.ImgUrl,
		CreatedAt: now,
		UpdatedAt: now,
	}

	modified, err := r.Posts.PushComment(ctx, input.PostId, comment)
	if err != nil {
		Logger.LogV2.Errorf("push comment failed: %s", err)
		return nil, ErrAddComment
	}
	if !modified {
		return nil, ErrAddComment
	}

	if err := r.invalidateFeed(ctx); err != nil {
		return nil, ErrAddComment
	}
	return r.refreshedPost(ctx, input.PostId, ErrAddComment)
}

// AddLike records a like keyed by the caller's username. At most one
// like per username per post.
func (r *Resolver) AddLike(ctx context.Context, postId primitive.ObjectID) (*model.Post, error) {
	identity, err := r.Authenticate(ctx)
	if err != nil {
		return nil, err
	}

	post, err := r.Posts.FindById(ctx, postId)
	if err != nil {
		Logger.LogV2.Errorf("fetch post %s failed: %s", postId.Hex(), err)
		return nil, ErrAddLike
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	if post.LikedBy(identity.Username) {
		return nil, ErrAlreadyLiked
	}

	now := time.Now()
	like := model.Like{
		Id:        primitive.NewObjectID(),
		Username:  identity.Username,
		ImgUrl:    identity.ImgUrl,
		CreatedAt: now,
		UpdatedAt: now,
	}

	modified, err := r.Posts.PushLike(ctx, postId, like)
	if err != nil {
		Logger.LogV2.Errorf("push like failed: %s", err)
		return nil, ErrAddLike
	}
	if !modified {
		return nil, ErrAddLike
	}

	if err := r.invalidateFeed(ctx); err != nil {
		return nil, ErrAddLike
	}
	return r.refreshedPost(ctx, postId, ErrAddLike)
}

// RemoveLike removes the caller's like from a post, failing when no
// such like exists.
func (r *Resolver) RemoveLike(ctx context.Context, postId primitive.ObjectID) (*model.Post, error) {
	identity, err := r.Authenticate(ctx)
	if err != nil {
		return nil, err
	}

	post, err := r.Posts.FindById(ctx, postId)
	if err != nil {
		Logger.LogV2.Errorf("fetch post %s failed: %s", postId.Hex(), err)
		return nil, ErrRemoveLike
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	if !post.LikedBy(identity.Username) {
		return nil, ErrNotLiked
	}

	modified, err := r.Posts.PullLike(ctx, postId, identity.Username)
	if err != nil {
		Logger.LogV2.Errorf("pull like failed: %s", err)
		return nil, ErrRemoveLike
	}
	if !modified {
		return nil, ErrRemoveLike
	}

	if err := r.invalidateFeed(ctx); err != nil {
		return nil, ErrRemoveLike
	}
	return r.refreshedPost(ctx, postId, ErrRemoveLike)
}

// invalidateFeed deletes the global feed cache entry. Failures are
// surfaced: a mutation whose invalidation did not land would otherwise
// leave readers on a stale feed indefinitely, since entries carry no
// TTL.
func (r *Resolver) invalidateFeed(ctx context.Context) error {
	if err := r.Cache.Del(ctx, feedCacheKey); err != nil {
		Logger.LogV2.Errorf("feed cache invalidation failed: %s", err)
		return err
	}
	return nil
}

func (r *Resolver) refreshedPost(ctx context.Context, postId primitive.ObjectID, opErr error) (*model.Post, error) {
	post, err := r.Posts.FindById(ctx, postId)
	if err != nil || post == nil {
		Logger.LogV2.Errorf("re-read post %s failed: %v", postId.Hex(), err)
		return nil, opErr
	}
	return post, nil
}
