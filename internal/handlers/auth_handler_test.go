package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mindease/mindease-api/internal/models"
	"github.com/mindease/mindease-api/internal/store"
	"github.com/mindease/mindease-api/internal/store/memory"
	"github.com/mindease/mindease-api/internal/utils"
)

func TestSignupStudentCreatesNoCounsellorRecord(t *testing.T) {
	env := newTestEnv(t)

	id := env.signupAndGetID(t, studentSignup("asha@example.com"))
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		t.Fatalf("userId is not an object id: %v", err)
	}

	user, err := env.users.FindByID(context.Background(), oid)
	if err != nil {
		t.Fatalf("user not stored: %v", err)
	}
	if user.Role != models.RoleStudent {
		t.Fatalf("expected role student, got %s", user.Role)
	}
	if user.College != "NIT Surat" {
		t.Fatalf("expected college to be stored for students, got %q", user.College)
	}

	counsellors := memory.NewCounsellorStore(env.db)
	if _, err := counsellors.FindByID(context.Background(), oid); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected no counsellor record for a student, got err=%v", err)
	}
}

func TestSignupCounsellorCreatesLinkedRecord(t *testing.T) {
	env := newTestEnv(t)

	id := env.signupAndGetID(t, counsellorSignup("rao@example.com", "L1", "CBT"))
	oid, _ := primitive.ObjectIDFromHex(id)

	counsellors := memory.NewCounsellorStore(env.db)
	counsellor, err := counsellors.FindByID(context.Background(), oid)
	if err != nil {
		t.Fatalf("counsellor record not stored: %v", err)
	}
	if counsellor.ID != oid {
		t.Fatalf("counsellor id %s does not match user id %s", counsellor.ID.Hex(), oid.Hex())
	}
	if counsellor.License != "L1" || counsellor.Specialization != "CBT" {
		t.Fatalf("unexpected counsellor record: %+v", counsellor)
	}
}

func TestSignupCounsellorRequiresLicenseAndSpecialization(t *testing.T) {
	env := newTestEnv(t)

	for _, body := range []map[string]interface{}{
		counsellorSignup("a@example.com", "", "CBT"),
		counsellorSignup("b@example.com", "L1", ""),
		counsellorSignup("c@example.com", "   ", "  "),
	} {
		rr := env.do(t, http.MethodPost, "/api/auth/signup", body, nil)
		assertStatus(t, rr, http.StatusBadRequest)
	}
}

func TestSignupDuplicateEmailRejected(t *testing.T) {
	env := newTestEnv(t)

	env.signupAndGetID(t, studentSignup("dup@example.com"))
	rr := env.do(t, http.MethodPost, "/api/auth/signup", studentSignup("dup@example.com"), nil)
	assertStatus(t, rr, http.StatusBadRequest)

	users, err := env.users.FindByRole(context.Background(), models.RoleStudent)
	if err != nil {
		t.Fatalf("listing users: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("expected 1 user after duplicate signup, got %d", len(users))
	}
}

func TestSigninReturnsProfileAndValidToken(t *testing.T) {
	env := newTestEnv(t)
	id := env.signupAndGetID(t, studentSignup("login@example.com"))

	rr := env.do(t, http.MethodPost, "/api/auth/signin", map[string]string{
		"email":    "login@example.com",
		"password": "sup3rsecret",
	}, nil)
	assertStatus(t, rr, http.StatusOK)

	var resp struct {
		User  models.Profile `json:"user"`
		Token string         `json:"token"`
	}
	decodeBody(t, rr, &resp)
	if resp.User.ID.Hex() != id {
		t.Fatalf("profile id %s does not match signup id %s", resp.User.ID.Hex(), id)
	}
	if resp.User.Language != "en" {
		t.Fatalf("expected default language en, got %q", resp.User.Language)
	}

	claims, err := utils.ValidateJWT(resp.Token)
	if err != nil {
		t.Fatalf("signin token does not validate: %v", err)
	}
	if claims.UserID != id || claims.Role != "student" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestSigninRejectsBadCredentials(t *testing.T) {
	env := newTestEnv(t)
	env.signupAndGetID(t, studentSignup("login2@example.com"))

	rr := env.do(t, http.MethodPost, "/api/auth/signin", map[string]string{
		"email":    "login2@example.com",
		"password": "wrong-password",
	}, nil)
	assertStatus(t, rr, http.StatusBadRequest)

	rr = env.do(t, http.MethodPost, "/api/auth/signin", map[string]string{
		"email":    "nobody@example.com",
		"password": "sup3rsecret",
	}, nil)
	assertStatus(t, rr, http.StatusBadRequest)
}
