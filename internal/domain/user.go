package domain

import (
	"encoding/json"
	"time"
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// User represents an account of the dashboard. PasswordHash is never
// serialized; handlers additionally return sanitized copies.
type User struct {
	ID           string          `json:"id"`
	Username     string          `json:"username"`
	Email        string          `json:"email"`
	PasswordHash string          `json:"-"`
	Role         Role            `json:"role"`
	Profile      Profile         `json:"profile"`
	Settings     json.RawMessage `json:"settings,omitempty"`
	IsActive     bool            `json:"isActive"`
	LastLogin    *time.Time      `json:"lastLogin,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// Profile holds optional descriptive fields of a user.
type Profile struct {
	FirstName  string `json:"firstName,omitempty"`
	LastName   string `json:"lastName,omitempty"`
	Avatar     string `json:"avatar,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Department string `json:"department,omitempty"`
}

// Identity is the resolved requester attached to an authenticated request.
type Identity struct {
	ID       string
	Username string
	Email    string
	Role     Role
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// Owner returns the denormalized snapshot recorded on resources the
// identity creates or updates.
func (i Identity) Owner() OwnerRef {
	return OwnerRef{UserID: i.ID, UserName: i.Username, Email: i.Email}
}

// Actor returns the provenance snapshot recorded on append-only entries.
func (i Identity) Actor() ActorRef {
	return ActorRef{UserID: i.ID, UserName: i.Username, Role: string(i.Role)}
}
