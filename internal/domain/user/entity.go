package user

import "time"

// User is a dashboard account. Staff users may edit line targets.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	IsStaff      bool
	IsActive     bool
	LastLogin    *time.Time
	CreatedAt    time.Time
}
