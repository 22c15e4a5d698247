package domain

import "time"

type User struct {
	UserID       string     `json:"id" dynamodbav:"user_id"`
	Email        string     `json:"email" dynamodbav:"email"`
	Phone        *string    `json:"phone" dynamodbav:"phone"`
	PasswordHash string     `json:"-" dynamodbav:"password_hash"`
	FullName     string     `json:"full_name" dynamodbav:"full_name"`
	IsLawyer     bool       `json:"is_lawyer" dynamodbav:"is_lawyer"`
	BarNumber    *string    `json:"bar_number,omitempty" dynamodbav:"bar_number"`
	AuthProvider string     `json:"auth_provider,omitempty" dynamodbav:"auth_provider"` // "local" | "google"
	GoogleSub    string     `json:"-"                       dynamodbav:"google_sub"`
	Enable       bool       `json:"enable" dynamodbav:"enable"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty" dynamodbav:"deleted_at"`
	CreatedAt    time.Time  `json:"created" dynamodbav:"created_at"`
	UpdatedAt    time.Time  `json:"updated" dynamodbav:"updated_at"`
}

type CreateUserRequest struct {
	Email      string  `json:"email" validate:"required,email"`
	Password   string  `json:"password" validate:"required,min=8,max=72"`
	FullName   string  `json:"full_name" validate:"required"`
	Phone      *string `json:"phone"`
	IsLawyer   bool    `json:"is_lawyer"`
	BarNumber  *string `json:"bar_number"`
	DeviceUUID *string `json:"device_uuid"`
}

type UpdateUserRequest struct {
	Email     *string `json:"email" validate:"omitempty,email"`
	FullName  *string `json:"full_name"`
	Phone     *string `json:"phone"`
	BarNumber *string `json:"bar_number"`
}
