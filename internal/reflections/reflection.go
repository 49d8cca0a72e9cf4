package reflections

import (
	"errors"
	"time"
)

var ErrEmptyReflection = errors.New("date and reflection are required")

// Reflection is a free text note an owner writes about one training day.
type Reflection struct {
	ID         int       `json:"id"`
	OwnerID    string    `json:"ownerId"`
	Date       string    `json:"date"`
	Reflection string    `json:"reflection"`
	CreatedAt  time.Time `json:"createdAt"`
}
