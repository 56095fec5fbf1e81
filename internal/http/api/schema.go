package api

import "time"

type TimeEntrySchema struct {
	ID           int        `json:"id"`
	UserID       int        `json:"user_id"`
	ClockInTime  time.Time  `json:"clock_in_time"`
	ClockOutTime *time.Time `json:"clock_out_time,omitempty"`
	Latitude     *float64   `json:"latitude,omitempty"`
	Longitude    *float64   `json:"longitude,omitempty"`
}

// TimeEntryWrite is the create/update payload. Identity is never accepted
// from the client; the id comes from the path or is assigned by the store.
type TimeEntryWrite struct {
	UserID       int        `json:"user_id" validate:"required"`
	ClockInTime  time.Time  `json:"clock_in_time" validate:"required"`
	ClockOutTime *time.Time `json:"clock_out_time,omitempty"`
	Latitude     *float64   `json:"latitude,omitempty"`
	Longitude    *float64   `json:"longitude,omitempty"`
}

type TeamSchema struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type TeamDetailsSchema struct {
	ID      int                `json:"id"`
	Name    string             `json:"name"`
	Members []TeamMemberSchema `json:"members"`
}

type TeamMemberSchema struct {
	UserID int `json:"user_id"`
}

type TeamWrite struct {
	Name string `json:"name" validate:"required,min=3,max=100"`
}

type UserSchema struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type UserRegister struct {
	Username  string `json:"username" validate:"required,min=3,max=50"`
	Password  string `json:"password" validate:"required,min=6,max=100"`
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name" validate:"required,max=50"`
	LastName  string `json:"last_name" validate:"required,max=50"`
}

type UserUpdate struct {
	Username  string `json:"username" validate:"required,min=3,max=50"`
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name" validate:"required,max=50"`
	LastName  string `json:"last_name" validate:"required,max=50"`
}

type UserLogin struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
}
