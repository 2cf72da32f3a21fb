package entity

import "time"

// Client representa un cliente del taller.
type Client struct {
	ID        string
	Name      string
	Phone     string
	Email     string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
