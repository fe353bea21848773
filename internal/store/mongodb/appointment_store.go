package mongodb

import (
	"context"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mindease/mindease-api/internal/models"
	"github.com/mindease/mindease-api/internal/slots"
	"github.com/mindease/mindease-api/internal/store"
)

type AppointmentStore struct {
	appointments *mongo.Collection
}

func NewAppointmentStore(db *mongo.Database) *AppointmentStore {
	return &AppointmentStore{appointments: db.Collection(appointmentsCollection)}
}

// Create inserts the appointment inside a session transaction. The partial
// unique index decides slot races: a duplicate-key rejection here means
// another active booking holds the slot.
func (s *AppointmentStore) Create(ctx context.Context, appt *models.Appointment) error {
	if appt.ID.IsZero() {
		appt.ID = primitive.NewObjectID()
	}
	appt.CreatedAt = time.Now().UTC()

	session, err := s.appointments.Database().Client().StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		_, err := s.appointments.InsertOne(sc, appt)
		return nil, err
	})
	if mongo.IsDuplicateKeyError(err) {
		return store.ErrSlotTaken
	}
	return err
}

func (s *AppointmentStore) HasActiveConflict(ctx context.Context, counsellorID primitive.ObjectID, date time.Time, slot slots.Slot) (bool, error) {
	err := s.appointments.FindOne(ctx, bson.M{
		"counsellorId": counsellorID,
		"date":         date,
		"time":         slot.Label(),
		"status":       bson.M{"$in": models.ActiveStatuses()},
	}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *AppointmentStore) BookedSlots(ctx context.Context, date time.Time) ([]slots.Slot, error) {
	cursor, err := s.appointments.Find(ctx,
		bson.M{"date": date, "status": bson.M{"$in": models.ActiveStatuses()}},
		options.Find().SetProjection(bson.M{"time": 1}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []struct {
		Time slots.Slot `bson:"time"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	booked := make([]slots.Slot, 0, len(docs))
	for _, d := range docs {
		booked = append(booked, d.Time)
	}
	return booked, nil
}

func (s *AppointmentStore) FindByPatient(ctx context.Context, patientID primitive.ObjectID) ([]models.Appointment, error) {
	return s.find(ctx, bson.M{"patientId": patientID})
}

func (s *AppointmentStore) FindByCounsellor(ctx context.Context, counsellorID primitive.ObjectID) ([]models.Appointment, error) {
	return s.find(ctx, bson.M{"counsellorId": counsellorID})
}

func (s *AppointmentStore) find(ctx context.Context, filter bson.M) ([]models.Appointment, error) {
	cursor, err := s.appointments.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, err
	}
	// Sorted here, not in the query: the stored time is the display label,
	// which orders lexicographically ("9:00 AM" after "6:00 PM"). The
	// decoded slot value gives the real day order.
	sort.Slice(appointments, func(i, j int) bool {
		if !appointments[i].Date.Equal(appointments[j].Date) {
			return appointments[i].Date.Before(appointments[j].Date)
		}
		return appointments[i].Time < appointments[j].Time
	})
	return appointments, nil
}

func (s *AppointmentStore) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.AppointmentStatus) (*models.Appointment, error) {
	var appt models.Appointment
	err := s.appointments.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&appt)
	if err == mongo.ErrNoDocuments {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &appt, nil
}
