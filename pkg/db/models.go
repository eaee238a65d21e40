package db

import "time"

// Feedback represents a row in the feedback table.
type Feedback struct {
	ID       int64     `json:"id"`
	GuildID  string    `json:"guild_id"`
	UserID   string    `json:"user_id"`
	Username string    `json:"username"`
	Topic    string    `json:"topic"`
	Body     string    `json:"body"`
	Created  time.Time `json:"created"`
}
