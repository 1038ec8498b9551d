package engine

import (
	"fmt"
	"strings"
)

// Shortfall records one ingredient whose aggregate requirement exceeds the
// stock on hand.
type Shortfall struct {
	IngredientID uint    `json:"ingredient_id"`
	Name         string  `json:"name"`
	Required     float64 `json:"required"`
	Available    float64 `json:"available"`
}

type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found with ID: %d", e.Entity, e.ID)
}

type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return e.Reason
}

// InsufficientStockError carries every shortfall found, not just the first,
// so the caller can show the complete picture in one message.
type InsufficientStockError struct {
	Shortfalls []Shortfall
}

func (e *InsufficientStockError) Error() string {
	parts := make([]string, 0, len(e.Shortfalls))
	for _, s := range e.Shortfalls {
		parts = append(parts, fmt.Sprintf("%s: required=%g, available=%g", s.Name, s.Required, s.Available))
	}
	return "insufficient stock: " + strings.Join(parts, "; ")
}

// PersistenceError wraps a failed commit; the caller should treat the
// operation as not having happened.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return "persistence failure: " + e.Err.Error()
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
