package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Counsellor carries the professional credentials of a user with role
// "counsellor". It shares the user's _id (a 1:1 relation keyed by the same
// identifier), so the document is looked up directly by user id.
type Counsellor struct {
	ID             primitive.ObjectID `bson:"_id" json:"id"`
	License        string             `bson:"license" json:"license"`
	Specialization string             `bson:"specialization" json:"specialization"`
	Experience     int                `bson:"experience" json:"experience"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}
