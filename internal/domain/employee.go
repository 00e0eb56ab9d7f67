package domain

import (
	"fmt"
	"strings"
)

const (
	// DefaultPosition is assigned when the schedule carries no job title.
	DefaultPosition = "DSP"

	// UnspecifiedFacility is used when the entity name carries no facility part.
	UnspecifiedFacility = "Unspecified"

	entityFacilitySeparator = "dba"
)

// Employee identifies one scheduled worker.
type Employee struct {
	ID       string
	Name     string
	Entity   string
	Facility string
	Position string
}

func NewEmployee(id, name, entityFacility string) Employee {
	entity, facility := SplitEntityFacility(entityFacility)
	return Employee{
		ID:       id,
		Name:     name,
		Entity:   entity,
		Facility: facility,
		Position: DefaultPosition,
	}
}

// SplitEntityFacility splits a combined "Entity dba Facility" name on the
// literal separator token. Without a separator the whole string is the entity
// and the facility is left unspecified.
func SplitEntityFacility(entityFacility string) (entity, facility string) {
	parts := strings.Split(entityFacility, entityFacilitySeparator)
	if len(parts) == 2 {
		return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	}
	return entityFacility, UnspecifiedFacility
}

func (e Employee) String() string {
	return fmt.Sprintf("Employee[ID: %s, Name: %s, Entity: %s, Facility: %s, Position: %s]",
		e.ID, e.Name, e.Entity, e.Facility, e.Position)
}
