package user

import "time"

type User struct {
	ID           string
	Email        string
	FullName     string
	PasswordHash *string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
)
