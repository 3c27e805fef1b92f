package domain

import "time"

type Role string

const (
	RoleGuest   Role = "guest"
	RoleManager Role = "manager"
)

type User struct {
	ID             string
	Email          string
	PasswordHash   string
	FirstName      string
	LastName       string
	PersonalNumber string
	Role           Role
	CreatedAt      time.Time
}
