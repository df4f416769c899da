package store

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sociafeed/sociafeed-backend/model"
)

type MongoFollowStore struct {
	coll *mongo.Collection
}

func (s *MongoFollowStore) Find(ctx context.Context, followerId primitive.ObjectID, followingId primitive.ObjectID) (*model.Follow, error) {
	var follow model.Follow
	err := s.coll.FindOne(ctx, bson.M{
		"followerId":  followerId,
		"followingId": followingId,
	}).Decode(&follow)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "find follow")
	}
	return &follow, nil
}

func (s *MongoFollowStore) FindAll(ctx context.Context) ([]model.Follow, error) {
	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "list follows")
	}
	follows := []model.Follow{}
	if err := cursor.All(ctx, &follows); err != nil {
		return nil, errors.Wrap(err, "decode follows")
	}
	return follows, nil
}

func (s *MongoFollowStore) Insert(ctx context.Context, follow *model.Follow) (primitive.ObjectID, error) {
	result, err := s.coll.InsertOne(ctx, follow)
	if err != nil {
		return primitive.NilObjectID, errors.Wrap(err, "insert follow")
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

func (s *MongoFollowStore) Delete(ctx context.Context, followerId primitive.ObjectID, followingId primitive.ObjectID) (bool, error) {
	result, err := s.coll.DeleteOne(ctx, bson.M{
		"followerId":  followerId,
		"followingId": followingId,
	})
	if err != nil {
		return false, errors.Wrap(err, "delete follow")
	}
	return result.DeletedCount > 0, nil
}

func (s *MongoFollowStore) Followers(ctx context.Context, userId primitive.ObjectID) ([]model.UserSummary, error) {
	return s.edgeProfiles(ctx, "followingId", userId, "followerId", "follower")
}

func (s *MongoFollowStore) Following(ctx context.Context, userId primitive.ObjectID) ([]model.UserSummary, error) {
	return s.edgeProfiles(ctx, "followerId", userId, "followingId", "following")
}

// edgeProfiles resolves one side of the follow graph: match edges on
// matchField, join the user on the opposite joinField, and project the
// joined profile down to a summary.
func (s *MongoFollowStore) edgeProfiles(ctx context.Context, matchField string, userId primitive.ObjectID, joinField string, as string) ([]model.UserSummary, error) {
	pipeline := []bson.D{
		{{Key: "$match", Value: bson.D{{Key: matchField, Value: userId}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: UserCollection},
			{Key: "localField", Value: joinField},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: as},
		}}},
		{{Key: "$unwind", Value: "$" + as}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: "$" + as + "._id"},
			{Key: "username", Value: "$" + as + ".username"},
			{Key: "bio", Value: "$" + as + ".bio"},
			{Key: "imgUrl", Value: "$" + as + ".imgUrl"},
		}}},
	}

	cursor, err := s.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, errors.Wrap(err, "aggregate follow edges")
	}
	profiles := []model.UserSummary{}
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, errors.Wrap(err, "decode follow edges")
	}
	return profiles, nil
}
