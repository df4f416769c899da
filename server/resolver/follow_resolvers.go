package resolver

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sociafeed/sociafeed-backend/model"
)

func (r *Resolver) GetAllFollows(ctx context.Context) ([]model.Follow, error) {
	if _, err := r.Authenticate(ctx); err != nil {
		return nil, err
	}
	return r.Follows.FindAll(ctx)
}

// IsFollowing reports whether the caller currently follows the target.
func (r *Resolver) IsFollowing(ctx context.Context, followingId primitive.ObjectID) (bool, error) {
	identity, err := r.Authenticate(ctx)
	if err != nil {
		return false, err
	}

	follow, err := r.Follows.Find(ctx, identity.Id, followingId)
	if err != nil {
		return false, err
	}
	return follow != nil, nil
}

// CreateFollow inserts the directed edge caller -> target. A
// self-follow is currently not rejected.
func (r *Resolver) CreateFollow(ctx context.Context, followingId primitive.ObjectID) (*model.Message, error) {
	identity, err := r.Authenticate(ctx)
	if err != nil {
		return nil, err
	}

	existing, err := r.Follows.Find(ctx, identity.Id, followingId)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyFollowing
	}

	now := time.Now()
	if _, err := r.Follows.Insert(ctx, &model.Follow{
		FollowingId: followingId,
		FollowerId:  identity.Id,
		CreatedAt:   now,
		UpdatedAt:   now,
	}); err != nil {
		return nil, err
	}

	return &model.Message{Message: "Follow created successfully"}, nil
}

// UnFollow deletes the directed edge caller -> target.
func (r *Resolver) UnFollow(ctx context.Context, followingId primitive.ObjectID) (*model.Message, error) {
	identity, err := r.Authenticate(ctx)
	if err != nil {
		return nil, err
	}

	deleted, err := r.Follows.Delete(ctx, identity.Id, followingId)
	if err != nil {
		return nil, err
	}
	if !deleted {
		return nil, ErrFollowNotFound
	}

	return &model.Message{Message: "Unfollow successfully"}, nil
}
