package domain

import (
	"errors"
	"time"
)

var ErrProductNotFound = errors.New("product not found")

// Product is a catalog entry owned by a single seller. Every query is scoped
// by UserID so one seller can never observe another's catalog.
type Product struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	UserID      string    `json:"user_id" bson:"user_id"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Price       float64   `json:"price" bson:"price"`
	Stock       int       `json:"stock" bson:"stock"`
	Category    string    `json:"category,omitempty" bson:"category,omitempty"`
	ImageURL    string    `json:"image_url,omitempty" bson:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}
