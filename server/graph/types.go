package graph

import (
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// objectID serializes Mongo ObjectIDs as their 24-character hex form.
// Arguments stay plain GraphQL ID strings for wire compatibility with
// the mobile client; only output positions use this scalar.
var objectID = graphql.NewScalar(graphql.ScalarConfig{
	Name:        "ObjectID",
	Description: "A MongoDB ObjectID rendered as a hex string.",
	Serialize: func(value interface{}) interface{} {
		switch v := value.(type) {
		case primitive.ObjectID:
			return v.Hex()
		case *primitive.ObjectID:
			if v == nil {
				return nil
			}
			return v.Hex()
		case string:
			return v
		}
		return nil
	},
	ParseValue: func(value interface{}) interface{} {
		if raw, ok := value.(string); ok {
			if id, err := primitive.ObjectIDFromHex(raw); err == nil {
				return id
			}
		}
		return nil
	},
	ParseLiteral: func(valueAST ast.Value) interface{} {
		if sv, ok := valueAST.(*ast.StringValue); ok {
			if id, err := primitive.ObjectIDFromHex(sv.Value); err == nil {
				return id
			}
		}
		return nil
	},
})

var authorType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Author",
	Fields: graphql.Fields{
		"_id":      &graphql.Field{Type: objectID},
		"name":     &graphql.Field{Type: graphql.String},
		"username": &graphql.Field{Type: graphql.String},
		"imgUrl":   &graphql.Field{Type: graphql.String},
		"email":    &graphql.Field{Type: graphql.String},
	},
})

var commentType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Comment",
	Fields: graphql.Fields{
		"_id":       &graphql.Field{Type: objectID},
		"content":   &graphql.Field{Type: graphql.String},
		"username":  &graphql.Field{Type: graphql.String},
		"imgUrl":    &graphql.Field{Type: graphql.String},
		"createdAt": &graphql.Field{Type: graphql.DateTime},
		"updatedAt": &graphql.Field{Type: graphql.DateTime},
	},
})

var likeType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Like",
	Fields: graphql.Fields{
		"_id":       &graphql.Field{Type: objectID},
		"username":  &graphql.Field{Type: graphql.String},
		"imgUrl":    &graphql.Field{Type: graphql.String},
		"createdAt": &graphql.Field{Type: graphql.DateTime},
		"updatedAt": &graphql.Field{Type: graphql.DateTime},
	},
})

var postType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Post",
	Fields: graphql.Fields{
		"_id":       &graphql.Field{Type: objectID},
		"content":   &graphql.Field{Type: graphql.String},
		"tags":      &graphql.Field{Type: graphql.NewList(graphql.String)},
		"imgUrl":    &graphql.Field{Type: graphql.String},
		"authorId":  &graphql.Field{Type: objectID},
		"comments":  &graphql.Field{Type: graphql.NewList(commentType)},
		"likes":     &graphql.Field{Type: graphql.NewList(likeType)},
		"createdAt": &graphql.Field{Type: graphql.DateTime},
		"updatedAt": &graphql.Field{Type: graphql.DateTime},
		"Author":    &graphql.Field{Type: authorType},
	},
})

var userType = graphql.NewObject(graphql.ObjectConfig{
	Name: "User",
	Fields: graphql.Fields{
		"_id":      &graphql.Field{Type: objectID},
		"name":     &graphql.Field{Type: graphql.String},
		"username": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"email":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
	},
})

// usersType is the trimmed search-result / follow-list projection.
var usersType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Users",
	Fields: graphql.Fields{
		"_id":      &graphql.Field{Type: objectID},
		"username": &graphql.Field{Type: graphql.String},
		"bio":      &graphql.Field{Type: graphql.String},
		"imgUrl":   &graphql.Field{Type: graphql.String},
	},
})

var userByIdType = graphql.NewObject(graphql.ObjectConfig{
	Name: "UserById",
	Fields: graphql.Fields{
		"_id":       &graphql.Field{Type: objectID},
		"name":      &graphql.Field{Type: graphql.String},
		"username":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"email":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"bio":       &graphql.Field{Type: graphql.String},
		"imgUrl":    &graphql.Field{Type: graphql.String},
		"posts":     &graphql.Field{Type: graphql.NewList(postType)},
		"followers": &graphql.Field{Type: graphql.NewList(usersType)},
		"following": &graphql.Field{Type: graphql.NewList(usersType)},
	},
})

var followType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Follow",
	Fields: graphql.Fields{
		"_id":         &graphql.Field{Type: objectID},
		"followingId": &graphql.Field{Type: objectID},
		"followerId":  &graphql.Field{Type: objectID},
		"createdAt":   &graphql.Field{Type: graphql.DateTime},
		"updatedAt":   &graphql.Field{Type: graphql.DateTime},
	},
})

var loginType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Login",
	Fields: graphql.Fields{
		"access_token": &graphql.Field{Type: graphql.String},
		"username":     &graphql.Field{Type: graphql.String},
	},
})

var messageType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Message",
	Fields: graphql.Fields{
		"message": &graphql.Field{Type: graphql.String},
	},
})

var createPostInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CreatePostInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"content": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"tags":    &graphql.InputObjectFieldConfig{Type: graphql.NewList(graphql.String)},
		"imgUrl":  &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var createCommentInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CreateCommentInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"postId":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
		"content":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"username": &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var createUserInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CreateUserInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":     &graphql.InputObjectFieldConfig{Type: graphql.String},
		"username": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"email":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"password": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
	},
})

var loginInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "LoginInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"identifier": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"password":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
	},
})

var editUserInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "EditUserInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":     &graphql.InputObjectFieldConfig{Type: graphql.String},
		"username": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"email":    &graphql.InputObjectFieldConfig{Type: graphql.String},
		"bio":      &graphql.InputObjectFieldConfig{Type: graphql.String},
		"imgUrl":   &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})
