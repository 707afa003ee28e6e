package auth

import "time"

// User is the account entity. All feature stores are scoped by its ID.
type User struct {
	ID        string
	Name      string
	Email     string
	Password  string
	CreatedAt time.Time
}
