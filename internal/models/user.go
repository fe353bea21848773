package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Role string

const (
	RoleStudent    Role = "student"
	RoleCounsellor Role = "counsellor"
	RoleAdmin      Role = "admin"
)

// ValidRole reports whether r is one of the three known roles.
func ValidRole(r Role) bool {
	return r == RoleStudent || r == RoleCounsellor || r == RoleAdmin
}

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Role         Role               `bson:"role" json:"role"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"passwordHash" json:"-"` // Hide from JSON responses
	College      string             `bson:"college,omitempty" json:"college,omitempty"`
	Gender       string             `bson:"gender,omitempty" json:"gender,omitempty"`
	DOB          string             `bson:"dob,omitempty" json:"dob,omitempty"`
	Language     string             `bson:"language" json:"language"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Profile is the shape returned to clients on signin. The client stores it
// as-is, so field names are part of the API contract.
type Profile struct {
	ID       primitive.ObjectID `json:"id"`
	Role     Role               `json:"role"`
	Name     string             `json:"name"`
	Email    string             `json:"email"`
	College  string             `json:"college,omitempty"`
	Gender   string             `json:"gender,omitempty"`
	DOB      string             `json:"dob,omitempty"`
	Language string             `json:"language"`
}

// AsProfile strips credentials and timestamps from a stored user.
func (u *User) AsProfile() Profile {
	return Profile{
		ID:       u.ID,
		Role:     u.Role,
		Name:     u.Name,
		Email:    u.Email,
		College:  u.College,
		Gender:   u.Gender,
		DOB:      u.DOB,
		Language: u.Language,
	}
}
