package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

/*

User is a data model for an account in the "user" collection.

Id: primary key (Mongo ObjectID), assigned at registration, immutable
Name: display name, can be changed, doesn't need to be unique
Username: unique handle, also accepted as a login identifier
Email: unique, also accepted as a login identifier
Password: bcrypt digest, never returned by any API type
Bio: free-form profile text
ImgUrl: avatar URL

*/

type User struct {
	Id       primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name     string             `json:"name" bson:"name,omitempty"`
	Username string             `json:"username" bson:"username"`
	Email    string             `json:"email" bson:"email"`
	Password string             `json:"-" bson:"password"`
	Bio      string             `json:"bio" bson:"bio,omitempty"`
	ImgUrl   string             `json:"imgUrl" bson:"imgUrl,omitempty"`
}

// UserSummary is the trimmed projection used by search results and by
// the follower/following lists on a profile.
type UserSummary struct {
	Id       primitive.ObjectID `json:"_id" bson:"_id"`
	Username string             `json:"username" bson:"username"`
	Bio      string             `json:"bio" bson:"bio,omitempty"`
	ImgUrl   string             `json:"imgUrl" bson:"imgUrl,omitempty"`
}

// UserDetail is the composed profile aggregate returned by getUserById:
// the user record plus its posts (newest first) and both sides of the
// follow graph.
type UserDetail struct {
	Id        primitive.ObjectID `json:"_id"`
	Name      string             `json:"name"`
	Username  string             `json:"username"`
	Email     string             `json:"email"`
	Bio       string             `json:"bio"`
	ImgUrl    string             `json:"imgUrl"`
	Posts     []Post             `json:"posts"`
	Followers []UserSummary      `json:"followers"`
	Following []UserSummary      `json:"following"`
}

// Identity is the per-request authenticated caller, rebuilt from the
// user collection on every request. Token claims are treated as an
// opaque reference, never as profile truth.
type Identity struct {
	Id       primitive.ObjectID
	Username string
	ImgUrl   string
}

// LoginResult carries the signed access token back to the client.
type LoginResult struct {
	AccessToken string `json:"access_token"`
	Username    string `json:"username"`
	ImgUrl      string `json:"imgUrl"`
}

// Message is the generic mutation acknowledgement payload.
type Message struct {
	Message string `json:"message"`
}
