package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

/*

Post is a data model for a post in the "posts" collection.

Comments and likes are embedded sub-documents owned by the post; they
have no independent query path. Likes are keyed by username, at most
one like per username per post. The Author field is not persisted on
the post itself, it is populated by a $lookup against the user
collection when the feed or a single post is read.

*/

type Post struct {
	Id        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Content   string             `json:"content" bson:"content"`
	Tags      []string           `json:"tags" bson:"tags"`
	ImgUrl    string             `json:"imgUrl" bson:"imgUrl"`
	AuthorId  primitive.ObjectID `json:"authorId" bson:"authorId"`
	Comments  []Comment          `json:"comments" bson:"comments"`
	Likes     []Like             `json:"likes" bson:"likes"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
	Author    *Author            `json:"Author,omitempty" bson:"Author,omitempty"`
}

// Author is the joined user profile embedded in feed reads, with the
// password field projected out.
type Author struct {
	Id       primitive.ObjectID `json:"_id" bson:"_id"`
	Name     string             `json:"name" bson:"name,omitempty"`
	Username string             `json:"username" bson:"username"`
	ImgUrl   string             `json:"imgUrl" bson:"imgUrl,omitempty"`
	Email    string             `json:"email" bson:"email"`
}

type Comment struct {
	Id        primitive.ObjectID `json:"_id" bson:"_id"`
	Content   string             `json:"content" bson:"content"`
	Username  string             `json:"username" bson:"username"`
	ImgUrl    string             `json:"imgUrl" bson:"imgUrl,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type Like struct {
	Id        primitive.ObjectID `json:"_id" bson:"_id"`
	Username  string             `json:"username" bson:"username"`
	ImgUrl    string             `json:"imgUrl" bson:"imgUrl,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// LikedBy reports whether username already appears in the post's likes.
func (p *Post) LikedBy(username string) bool {
	for _, like := range p.Likes {
		if like.Username == username {
			return true
		}
	}
	return false
}
