package models

import (
	"encoding/json"
	"fmt"
)

// Ref holds a related entity that the backend may send either fully
// populated or as a bare identifier string. Call sites use Populated/ID
// instead of inspecting the raw JSON shape.
type Ref[T any] struct {
	id     string
	entity *T
}

// PopulatedRef wraps a fully loaded related entity.
func PopulatedRef[T any](entity T) Ref[T] {
	return Ref[T]{entity: &entity}
}

// IDRef wraps a bare identifier reference.
func IDRef[T any](id string) Ref[T] {
	return Ref[T]{id: id}
}

// Populated returns the embedded entity when the backend sent the full
// object, and false when only an identifier arrived.
func (r Ref[T]) Populated() (T, bool) {
	if r.entity == nil {
		var zero T
		return zero, false
	}
	return *r.entity, true
}

// ID returns the reference identifier. For a populated entity it falls
// back to the entity's own identifier via the idCarrier interface.
func (r Ref[T]) ID() string {
	if r.id != "" {
		return r.id
	}
	if r.entity != nil {
		if c, ok := any(*r.entity).(idCarrier); ok {
			return c.EntityID()
		}
	}
	return ""
}

// IsZero reports whether the field was absent from the response.
func (r Ref[T]) IsZero() bool {
	return r.id == "" && r.entity == nil
}

type idCarrier interface {
	EntityID() string
}

func (r *Ref[T]) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*r = Ref[T]{}
		return nil
	}
	if data[0] == '"' {
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		*r = Ref[T]{id: id}
		return nil
	}
	var entity T
	if err := json.Unmarshal(data, &entity); err != nil {
		return fmt.Errorf("relation is neither id nor object: %w", err)
	}
	*r = Ref[T]{entity: &entity}
	return nil
}

func (r Ref[T]) MarshalJSON() ([]byte, error) {
	if r.entity != nil {
		return json.Marshal(r.entity)
	}
	if r.id != "" {
		return json.Marshal(r.id)
	}
	return []byte("null"), nil
}
