package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mindease/mindease-api/internal/models"
)

type MoodStore struct {
	entries *mongo.Collection
}

func NewMoodStore(db *mongo.Database) *MoodStore {
	return &MoodStore{entries: db.Collection(moodEntriesCollection)}
}

func (s *MoodStore) Create(ctx context.Context, entry *models.MoodEntry) error {
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	entry.CreatedAt = time.Now().UTC()
	_, err := s.entries.InsertOne(ctx, entry)
	return err
}

func (s *MoodStore) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.MoodEntry, error) {
	cursor, err := s.entries.Find(ctx, bson.M{"userId": userID},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []models.MoodEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
