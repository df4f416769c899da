package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Mutation inputs. The API gateway decodes the raw GraphQL argument
// maps into these before any resolver logic runs; required/optional
// validation happens on the typed value at the resolver boundary.

type CreatePostInput struct {
	Content string
	Tags    []string
	ImgUrl  string
}

type CreateCommentInput struct {
	PostId  primitive.ObjectID
	Content string
}

type CreateUserInput struct {
	Name     string
	Username string
	Email    string
	Password string
}

type LoginInput struct {
	Identifier string
	Password   string
}

// EditUserInput fields are pointers so that only fields present in the
// request are written; a nil field leaves the stored value untouched.
type EditUserInput struct {
	Name     *string
	Username *string
	Email    *string
	Bio      *string
	ImgUrl   *string
}
