package models

import "time"

type TimeEntry struct {
	ID           int        `db:"id"`
	UserID       int        `db:"user_id"`
	ClockInTime  time.Time  `db:"clock_in_time"`
	ClockOutTime *time.Time `db:"clock_out_time"`
	Latitude     *float64   `db:"latitude"`
	Longitude    *float64   `db:"longitude"`
}
