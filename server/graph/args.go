package graph

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sociafeed/sociafeed-backend/model"
)

var errInvalidId = errors.New("Invalid id")

// inputMap pulls the "input" argument; mutations tolerate a missing
// input object and let resolver validation produce the field-level
// error.
func inputMap(args map[string]interface{}) map[string]interface{} {
	input, _ := args["input"].(map[string]interface{})
	return input
}

func stringField(m map[string]interface{}, key string) string {
	value, _ := m[key].(string)
	return value
}

func stringPtrField(m map[string]interface{}, key string) *string {
	if raw, ok := m[key]; ok {
		if value, ok := raw.(string); ok {
			return &value
		}
	}
	return nil
}

func stringsField(m map[string]interface{}, key string) []string {
	raw, ok := m[key].([]interface{})
	if !ok {
		return nil
	}
	values := []string{}
	for _, item := range raw {
		if value, ok := item.(string); ok {
			values = append(values, value)
		}
	}
	return values
}

func idArg(args map[string]interface{}, key string) (primitive.ObjectID, error) {
	raw, _ := args[key].(string)
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, errInvalidId
	}
	return id, nil
}

func optionalIdArg(args map[string]interface{}, key string) (*primitive.ObjectID, error) {
	raw, ok := args[key].(string)
	if !ok || raw == "" {
		return nil, nil
	}
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return nil, errInvalidId
	}
	return &id, nil
}

func idField(m map[string]interface{}, key string) (primitive.ObjectID, error) {
	raw, _ := m[key].(string)
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, errInvalidId
	}
	return id, nil
}

func decodeCreatePostInput(args map[string]interface{}) model.CreatePostInput {
	input := inputMap(args)
	return model.CreatePostInput{
		Content: stringField(input, "content"),
		Tags:    stringsField(input, "tags"),
		ImgUrl:  stringField(input, "imgUrl"),
	}
}

func decodeCreateCommentInput(args map[string]interface{}) (model.CreateCommentInput, error) {
	input := inputMap(args)
	postId, err := idField(input, "postId")
	if err != nil {
		return model.CreateCommentInput{}, err
	}
	return model.CreateCommentInput{
		PostId:  postId,
		Content: stringField(input, "content"),
	}, nil
}

func decodeCreateUserInput(args map[string]interface{}) model.CreateUserInput {
	input := inputMap(args)
	return model.CreateUserInput{
		Name:     stringField(input, "name"),
		Username: stringField(input, "username"),
		Email:    stringField(input, "email"),
		Password: stringField(input, "password"),
	}
}

func decodeLoginInput(args map[string]interface{}) model.LoginInput {
	input := inputMap(args)
	return model.LoginInput{
		Identifier: stringField(input, "identifier"),
		Password:   stringField(input, "password"),
	}
}

func decodeEditUserInput(args map[string]interface{}) model.EditUserInput {
	input := inputMap(args)
	return model.EditUserInput{
		Name:     stringPtrField(input, "name"),
		Username: stringPtrField(input, "username"),
		Email:    stringPtrField(input, "email"),
		Bio:      stringPtrField(input, "bio"),
		ImgUrl:   stringPtrField(input, "imgUrl"),
	}
}
