package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mindease/mindease-api/internal/models"
	"github.com/mindease/mindease-api/internal/store"
)

type CounsellorStore struct {
	counsellors *mongo.Collection
}

func NewCounsellorStore(db *mongo.Database) *CounsellorStore {
	return &CounsellorStore{counsellors: db.Collection(counsellorsCollection)}
}

func (s *CounsellorStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Counsellor, error) {
	var counsellor models.Counsellor
	err := s.counsellors.FindOne(ctx, bson.M{"_id": id}).Decode(&counsellor)
	if err == mongo.ErrNoDocuments {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &counsellor, nil
}
