package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sociafeed/sociafeed-backend/model"
)

// Collection names in the application database.
const (
	UserCollection   = "user"
	PostCollection   = "posts"
	FollowCollection = "follow"
)

// UserStore is the persistence gateway for the user collection. Find
// methods return (nil, nil) when no document matches; errors are
// reserved for store failures.
type UserStore interface {
	FindById(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	// FindByIdentifier matches username or email exactly, for login.
	FindByIdentifier(ctx context.Context, identifier string) (*model.User, error)
	// FindTaken runs the combined uniqueness probe used at
	// registration: any user whose username or email collides.
	FindTaken(ctx context.Context, username string, email string) (*model.User, error)
	// Search matches name or username by case-insensitive substring.
	Search(ctx context.Context, identifier string) ([]model.User, error)
	FindAll(ctx context.Context) ([]model.User, error)
	Insert(ctx context.Context, user *model.User) (primitive.ObjectID, error)
	// Update applies a partial $set to one user and reports whether a
	// document matched.
	Update(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (bool, error)
}

// PostStore is the persistence gateway for the posts collection,
// including the author-joined aggregation reads.
type PostStore interface {
	// FeedWithAuthors returns every post joined with its author
	// profile (password projected out), newest first.
	FeedWithAuthors(ctx context.Context) ([]model.Post, error)
	FindByIdWithAuthor(ctx context.Context, id primitive.ObjectID) (*model.Post, error)
	FindById(ctx context.Context, id primitive.ObjectID) (*model.Post, error)
	FindByAuthor(ctx context.Context, authorId primitive.ObjectID) ([]model.Post, error)
	Insert(ctx context.Context, post *model.Post) (primitive.ObjectID, error)
	PushComment(ctx context.Context, postId primitive.ObjectID, comment model.Comment) (bool, error)
	PushLike(ctx context.Context, postId primitive.ObjectID, like model.Like) (bool, error)
	PullLike(ctx context.Context, postId primitive.ObjectID, username string) (bool, error)
}

// FollowStore is the persistence gateway for the follow edge
// collection and the follower/following join reads.
type FollowStore interface {
	Find(ctx context.Context, followerId primitive.ObjectID, followingId primitive.ObjectID) (*model.Follow, error)
	FindAll(ctx context.Context) ([]model.Follow, error)
	Insert(ctx context.Context, follow *model.Follow) (primitive.ObjectID, error)
	// Delete removes the directed edge and reports whether one existed.
	Delete(ctx context.Context, followerId primitive.ObjectID, followingId primitive.ObjectID) (bool, error)
	Followers(ctx context.Context, userId primitive.ObjectID) ([]model.UserSummary, error)
	Following(ctx context.Context, userId primitive.ObjectID) ([]model.UserSummary, error)
}

// Stores bundles the per-collection gateways for injection into the
// resolvers and the auth guard.
type Stores struct {
	Users   UserStore
	Posts   PostStore
	Follows FollowStore
}

func NewMongoStores(db *mongo.Database) *Stores {
	return &Stores{
		Users:   &MongoUserStore{db.Collection(UserCollection)},
		Posts:   &MongoPostStore{db.Collection(PostCollection)},
		Follows: &MongoFollowStore{db.Collection(FollowCollection)},
	}
}
