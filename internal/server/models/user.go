// Package models contains the persisted entities of the sports investment
// tracker and the query object shared by the ownership-scoped repositories.
package models

import "time"

// User is an account record. The password hash is write-only: it never
// appears in a JSON response.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
