package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MoodEntry is one daily mood check-in from the dashboard mood widget.
type MoodEntry struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	DayIndex    int                `bson:"dayIndex" json:"dayIndex"`
	MoodEmoji   string             `bson:"moodEmoji,omitempty" json:"moodEmoji,omitempty"`
	MoodScore   int                `bson:"moodScore,omitempty" json:"moodScore,omitempty"`
	StressLevel int                `bson:"stressLevel,omitempty" json:"stressLevel,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
