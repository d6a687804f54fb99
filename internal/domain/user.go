package domain

import "time"

type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Address struct {
	ID         int64  `json:"id"`
	UserID     int64  `json:"-"`
	Zipcode    string `json:"zipcode"`
	Street     string `json:"street"`
	Number     string `json:"number"`
	City       string `json:"city"`
	State      string `json:"state"`
	Country    string `json:"country"`
	Complement string `json:"complement,omitempty"`
}
