package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Follow is a directed edge in the "follow" collection: FollowerId
// follows FollowingId. At most one edge exists per ordered pair.
type Follow struct {
	Id          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	FollowingId primitive.ObjectID `json:"followingId" bson:"followingId"`
	FollowerId  primitive.ObjectID `json:"followerId" bson:"followerId"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}
