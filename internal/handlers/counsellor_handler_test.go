package handlers

import (
	"net/http"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mindease/mindease-api/internal/models"
)

func TestDirectoryIncludesSignedUpCounsellor(t *testing.T) {
	env := newTestEnv(t)
	id := env.signupAndGetID(t, counsellorSignup("cbt@example.com", "L1", "CBT"))

	// Signin works for the new counsellor before listing.
	rr := env.do(t, http.MethodPost, "/api/auth/signin", map[string]string{
		"email":    "cbt@example.com",
		"password": "sup3rsecret",
	}, nil)
	assertStatus(t, rr, http.StatusOK)

	rr = env.do(t, http.MethodGet, "/api/counsellors", nil, nil)
	assertStatus(t, rr, http.StatusOK)

	var entries []DirectoryEntry
	decodeBody(t, rr, &entries)
	if len(entries) != 1 {
		t.Fatalf("expected 1 directory entry, got %d", len(entries))
	}
	entry := entries[0]
	if entry.ID.Hex() != id {
		t.Fatalf("directory id %s does not match signup id %s", entry.ID.Hex(), id)
	}
	if entry.Specialization != "CBT" {
		t.Fatalf("expected specialization CBT, got %q", entry.Specialization)
	}
	if entry.Experience != "0 years" {
		t.Fatalf("expected experience \"0 years\", got %q", entry.Experience)
	}
	if entry.Availability != "available" || entry.Location != "Online" {
		t.Fatalf("placeholder fields missing: %+v", entry)
	}
}

func TestDirectoryEmptyWithoutCounsellors(t *testing.T) {
	env := newTestEnv(t)
	env.signupAndGetID(t, studentSignup("onlystudent@example.com"))

	rr := env.do(t, http.MethodGet, "/api/counsellors", nil, nil)
	assertStatus(t, rr, http.StatusOK)

	var entries []DirectoryEntry
	decodeBody(t, rr, &entries)
	if len(entries) != 0 {
		t.Fatalf("expected empty directory, got %d entries", len(entries))
	}
}

func TestGetCounsellorAppointmentsFormatsEntries(t *testing.T) {
	env := newTestEnv(t)
	patientID, counsellorID := seedBookingPair(t, env)

	rr := env.do(t, http.MethodPost, "/api/appointments/book",
		bookRequest(patientID, counsellorID, "2024-03-15", "10:00 AM"), nil)
	assertStatus(t, rr, http.StatusCreated)

	rr = env.do(t, http.MethodGet, "/api/counsellors/appointments/"+counsellorID, nil, nil)
	assertStatus(t, rr, http.StatusOK)

	var entries []CounsellorAppointment
	decodeBody(t, rr, &entries)
	if len(entries) != 1 {
		t.Fatalf("expected 1 appointment, got %d", len(entries))
	}
	entry := entries[0]
	if entry.Date != "2024-03-15" {
		t.Fatalf("expected date 2024-03-15, got %q", entry.Date)
	}
	if entry.Time.Label() != "10:00 AM" {
		t.Fatalf("expected 10:00 AM, got %q", entry.Time.Label())
	}
	if entry.Student.Name != "Asha Verma" || entry.Student.College != "NIT Surat" {
		t.Fatalf("student details not joined: %+v", entry.Student)
	}
	if entry.Notes != "No notes yet" || entry.SessionDuration != 60 {
		t.Fatalf("placeholder fields missing: %+v", entry)
	}
}

func TestUpdateAppointmentStatus(t *testing.T) {
	env := newTestEnv(t)
	patientID, counsellorID := seedBookingPair(t, env)

	rr := env.do(t, http.MethodPost, "/api/appointments/book",
		bookRequest(patientID, counsellorID, "2024-01-01", "9:00 AM"), nil)
	assertStatus(t, rr, http.StatusCreated)
	var created struct {
		Appointment models.Appointment `json:"appointment"`
	}
	decodeBody(t, rr, &created)
	path := "/api/counsellors/appointments/" + created.Appointment.ID.Hex() + "/status"

	// Every enum value is accepted, from any previous value.
	for _, status := range []string{"confirmed", "completed", "cancelled", "pending"} {
		rr = env.do(t, http.MethodPut, path, map[string]string{"status": status}, nil)
		assertStatus(t, rr, http.StatusOK)
		var updated models.Appointment
		decodeBody(t, rr, &updated)
		if string(updated.Status) != status {
			t.Fatalf("expected status %q, got %q", status, updated.Status)
		}
	}

	// Anything else is rejected.
	rr = env.do(t, http.MethodPut, path, map[string]string{"status": "rescheduled"}, nil)
	assertStatus(t, rr, http.StatusBadRequest)

	// Unknown appointment id.
	rr = env.do(t, http.MethodPut,
		"/api/counsellors/appointments/"+primitive.NewObjectID().Hex()+"/status",
		map[string]string{"status": "confirmed"}, nil)
	assertStatus(t, rr, http.StatusNotFound)
}
