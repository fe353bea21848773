package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mindease/mindease-api/internal/models"
	"github.com/mindease/mindease-api/internal/store"
)

type UserStore struct {
	users       *mongo.Collection
	counsellors *mongo.Collection
}

func NewUserStore(db *mongo.Database) *UserStore {
	return &UserStore{
		users:       db.Collection(usersCollection),
		counsellors: db.Collection(counsellorsCollection),
	}
}

func (s *UserStore) Create(ctx context.Context, user *models.User) error {
	stamp(user)
	_, err := s.users.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return store.ErrDuplicate
	}
	return err
}

// CreateWithCounsellor runs both inserts in one session transaction so a
// failed counsellor insert never leaves an orphan user behind.
func (s *UserStore) CreateWithCounsellor(ctx context.Context, user *models.User, counsellor *models.Counsellor) error {
	stamp(user)
	counsellor.ID = user.ID
	counsellor.CreatedAt = user.CreatedAt
	counsellor.UpdatedAt = user.UpdatedAt

	session, err := s.users.Database().Client().StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if _, err := s.users.InsertOne(sc, user); err != nil {
			return nil, err
		}
		if _, err := s.counsellors.InsertOne(sc, counsellor); err != nil {
			return nil, err
		}
		return nil, nil
	})
	if mongo.IsDuplicateKeyError(err) {
		return store.ErrDuplicate
	}
	return err
}

func (s *UserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserStore) FindByRole(ctx context.Context, role models.Role) ([]models.User, error) {
	cursor, err := s.users.Find(ctx, bson.M{"role": role})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func stamp(user *models.User) {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
}
