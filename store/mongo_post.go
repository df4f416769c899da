package store

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sociafeed/sociafeed-backend/model"
)

type MongoPostStore struct {
	coll *mongo.Collection
}

// authorLookup joins the author profile onto each post and strips the
// password digest from the joined document.
func authorLookup() []bson.D {
	return []bson.D{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: UserCollection},
			{Key: "localField", Value: "authorId"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "Author"},
		}}},
		{{Key: "$unwind", Value: bson.D{{Key: "path", Value: "$Author"}}}},
		{{Key: "$project", Value: bson.D{{Key: "Author.password", Value: 0}}}},
	}
}

func (s *MongoPostStore) FeedWithAuthors(ctx context.Context) ([]model.Post, error) {
	pipeline := append(authorLookup(),
		bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}})

	cursor, err := s.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, errors.Wrap(err, "aggregate feed")
	}
	posts := []model.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, errors.Wrap(err, "decode feed")
	}
	return posts, nil
}

func (s *MongoPostStore) FindByIdWithAuthor(ctx context.Context, id primitive.ObjectID) (*model.Post, error) {
	pipeline := append([]bson.D{
		{{Key: "$match", Value: bson.D{{Key: "_id", Value: id}}}},
	}, authorLookup()...)

	cursor, err := s.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, errors.Wrap(err, "aggregate post")
	}
	posts := []model.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, errors.Wrap(err, "decode post")
	}
	if len(posts) == 0 {
		return nil, nil
	}
	return &posts[0], nil
}

func (s *MongoPostStore) FindById(ctx context.Context, id primitive.ObjectID) (*model.Post, error) {
	var post model.Post
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "find post")
	}
	return &post, nil
}

func (s *MongoPostStore) FindByAuthor(ctx context.Context, authorId primitive.ObjectID) ([]model.Post, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.coll.Find(ctx, bson.M{"authorId": authorId}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "find posts by author")
	}
	posts := []model.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, errors.Wrap(err, "decode posts")
	}
	return posts, nil
}

func (s *MongoPostStore) Insert(ctx context.Context, post *model.Post) (primitive.ObjectID, error) {
	result, err := s.coll.InsertOne(ctx, post)
	if err != nil {
		return primitive.NilObjectID, errors.Wrap(err, "insert post")
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

func (s *MongoPostStore) PushComment(ctx context.Context, postId primitive.ObjectID, comment model.Comment) (bool, error) {
	result, err := s.coll.UpdateOne(ctx,
		bson.M{"_id": postId},
		bson.M{"$push": bson.M{"comments": comment}})
	if err != nil {
		return false, errors.Wrap(err, "push comment")
	}
	return result.ModifiedCount > 0, nil
}

func (s *MongoPostStore) PushLike(ctx context.Context, postId primitive.ObjectID, like model.Like) (bool, error) {
	result, err := s.coll.UpdateOne(ctx,
		bson.M{"_id": postId},
		bson.M{"$push": bson.M{"likes": like}})
	if err != nil {
		return false, errors.Wrap(err, "push like")
	}
	return result.ModifiedCount > 0, nil
}

func (s *MongoPostStore) PullLike(ctx context.Context, postId primitive.ObjectID, username string) (bool, error) {
	result, err := s.coll.UpdateOne(ctx,
		bson.M{"_id": postId},
		bson.M{"$pull": bson.M{"likes": bson.M{"username": username}}})
	if err != nil {
		return false, errors.Wrap(err, "pull like")
	}
	return result.ModifiedCount > 0, nil
}
