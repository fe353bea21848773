package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mindease/mindease-api/internal/models"
	"github.com/mindease/mindease-api/internal/slots"
	"github.com/mindease/mindease-api/internal/store"
)

func day(value string) time.Time {
	d, _ := time.ParseInLocation("2006-01-02", value, time.UTC)
	return d
}

func TestUserStoreEnforcesEmailUniqueness(t *testing.T) {
	db := NewDB()
	users := NewUserStore(db)
	ctx := context.Background()

	first := models.User{Role: models.RoleStudent, Name: "A", Email: "a@example.com"}
	if err := users.Create(ctx, &first); err != nil {
		t.Fatalf("create: %v", err)
	}

	second := models.User{Role: models.RoleStudent, Name: "B", Email: "a@example.com"}
	if err := users.Create(ctx, &second); !errors.Is(err, store.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}

func TestCreateWithCounsellorRejectsDuplicateLicense(t *testing.T) {
	db := NewDB()
	users := NewUserStore(db)
	ctx := context.Background()

	u1 := models.User{Role: models.RoleCounsellor, Email: "c1@example.com"}
	c1 := models.Counsellor{License: "L1", Specialization: "CBT"}
	if err := users.CreateWithCounsellor(ctx, &u1, &c1); err != nil {
		t.Fatalf("create: %v", err)
	}

	u2 := models.User{Role: models.RoleCounsellor, Email: "c2@example.com"}
	c2 := models.Counsellor{License: "L1", Specialization: "ACT"}
	if err := users.CreateWithCounsellor(ctx, &u2, &c2); !errors.Is(err, store.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}

	// The rejected signup must not leave a user behind either.
	if u, _ := users.FindByEmail(ctx, "c2@example.com"); u != nil {
		t.Fatal("rejected counsellor signup left a user record")
	}
}

func TestFindByCounsellorOrdersByDayThenSlot(t *testing.T) {
	db := NewDB()
	appts := NewAppointmentStore(db)
	ctx := context.Background()

	counsellorID := primitive.NewObjectID()
	// Inserted out of order; "9:00 AM" sorts after "6:00 PM" as a label,
	// so ordering must come from the canonical slot value.
	for _, booking := range []struct {
		date string
		slot slots.Slot
	}{
		{"2024-01-02", slots.Slot9AM},
		{"2024-01-01", slots.Slot6PM},
		{"2024-01-01", slots.Slot9AM},
	} {
		a := models.Appointment{
			PatientID:    primitive.NewObjectID(),
			CounsellorID: counsellorID,
			Status:       models.StatusPending,
			Date:         day(booking.date),
			Time:         booking.slot,
		}
		if err := appts.Create(ctx, &a); err != nil {
			t.Fatalf("create %s %s: %v", booking.date, booking.slot.Label(), err)
		}
	}

	result, err := appts.FindByCounsellor(ctx, counsellorID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(result) != 3 {
		t.Fatalf("expected 3 appointments, got %d", len(result))
	}
	for i := 1; i < len(result); i++ {
		prev, cur := result[i-1], result[i]
		if cur.Date.Before(prev.Date) || (cur.Date.Equal(prev.Date) && cur.Time < prev.Time) {
			t.Fatalf("out of order at %d: %s %s before %s %s",
				i, prev.Date.Format("2006-01-02"), prev.Time.Label(),
				cur.Date.Format("2006-01-02"), cur.Time.Label())
		}
	}
	if result[0].Time != slots.Slot9AM || !result[0].Date.Equal(day("2024-01-01")) {
		t.Fatalf("expected 2024-01-01 9:00 AM first, got %s %s",
			result[0].Date.Format("2006-01-02"), result[0].Time.Label())
	}
}

func TestAppointmentStoreActiveSlotUniqueness(t *testing.T) {
	db := NewDB()
	appts := NewAppointmentStore(db)
	ctx := context.Background()

	counsellorID := primitive.NewObjectID()
	first := models.Appointment{
		PatientID:    primitive.NewObjectID(),
		CounsellorID: counsellorID,
		Status:       models.StatusPending,
		Date:         day("2024-01-01"),
		Time:         slots.Slot2PM,
	}
	if err := appts.Create(ctx, &first); err != nil {
		t.Fatalf("create: %v", err)
	}

	// Same counsellor, day and slot while the first is active.
	clash := first
	clash.ID = primitive.NilObjectID
	if err := appts.Create(ctx, &clash); !errors.Is(err, store.ErrSlotTaken) {
		t.Fatalf("expected ErrSlotTaken, got %v", err)
	}

	// Cancelling frees the slot.
	if _, err := appts.UpdateStatus(ctx, first.ID, models.StatusCancelled); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	retry := first
	retry.ID = primitive.NilObjectID
	retry.Status = models.StatusPending
	if err := appts.Create(ctx, &retry); err != nil {
		t.Fatalf("expected rebooking over a cancelled appointment to succeed, got %v", err)
	}
}
