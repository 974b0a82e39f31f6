package models

import (
	"fmt"
	"time"
)

// Role is the closed set of account roles.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// ParseRole validates a role string at the boundary. The empty string maps to
// RoleUser, matching the registration default.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case "":
		return RoleUser, nil
	case RoleUser:
		return RoleUser, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// User is an account record. Email is stored lowercased and unique;
// PasswordHash is the only credential form that ever reaches storage.
type User struct {
	ID           int64
	Lastname     string
	Firstname    string
	Email        string
	PasswordHash string
	Description  string
	Role         Role
	ImgProfile   string
	CreatedAt    time.Time
}
