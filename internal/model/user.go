package model

import "time"

// Roles recognised by the service.  Administrators adjudicate reservations
// (approve/deny); requesters create and cancel their own.
const (
	RoleAdmin     = "ADMIN"
	RoleRequester = "REQUESTER"
)

// User represents an account that can authenticate against the service.
//
// Fields:
//  ID           – primary key identifier.
//  Email        – unique login identifier.
//  PasswordHash – bcrypt hash of the password; never serialized.
//  FullName     – display name used in notification content.
//  Role         – ADMIN or REQUESTER.
//  CreatedAt    – creation timestamp.
type User struct {
	ID           uint64    `json:"id"`         // users.id
	Email        string    `json:"email"`      // users.email
	PasswordHash string    `json:"-"`          // users.password_hash
	FullName     string    `json:"full_name"`  // users.full_name
	Role         string    `json:"role"`       // users.role
	CreatedAt    time.Time `json:"created_at"` // users.created_at
}
