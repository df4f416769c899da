package store

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sociafeed/sociafeed-backend/model"
)

type MongoUserStore struct {
	coll *mongo.Collection
}

func (s *MongoUserStore) FindById(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	return s.findOne(ctx, bson.M{"_id": id})
}

func (s *MongoUserStore) FindByIdentifier(ctx context.Context, identifier string) (*model.User, error) {
	return s.findOne(ctx, bson.M{"$or": bson.A{
		bson.M{"username": identifier},
		bson.M{"email": identifier},
	}})
}

func (s *MongoUserStore) FindTaken(ctx context.Context, username string, email string) (*model.User, error) {
	return s.findOne(ctx, bson.M{"$or": bson.A{
		bson.M{"username": username},
		bson.M{"email": email},
	}})
}

func (s *MongoUserStore) findOne(ctx context.Context, filter bson.M) (*model.User, error) {
	var user model.User
	err := s.coll.FindOne(ctx, filter).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "find user")
	}
	return &user, nil
}

func (s *MongoUserStore) Search(ctx context.Context, identifier string) ([]model.User, error) {
	cursor, err := s.coll.Find(ctx, bson.M{"$or": bson.A{
		bson.M{"name": primitive.Regex{Pattern: identifier, Options: "i"}},
		bson.M{"username": primitive.Regex{Pattern: identifier, Options: "i"}},
	}})
	if err != nil {
		return nil, errors.Wrap(err, "search users")
	}
	users := []model.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, errors.Wrap(err, "decode users")
	}
	return users, nil
}

func (s *MongoUserStore) FindAll(ctx context.Context) ([]model.User, error) {
	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "list users")
	}
	users := []model.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, errors.Wrap(err, "decode users")
	}
	return users, nil
}

func (s *MongoUserStore) Insert(ctx context.Context, user *model.User) (primitive.ObjectID, error) {
	result, err := s.coll.InsertOne(ctx, user)
	if err != nil {
		return primitive.NilObjectID, errors.Wrap(err, "insert user")
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

func (s *MongoUserStore) Update(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) (bool, error) {
	result, err := s.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return false, errors.Wrap(err, "update user")
	}
	return result.MatchedCount > 0, nil
}
