package model

import (
	"time"

	"wildtrack/internal/domain/entity"
)

// AnimalModel is the bson struct for the 'animals' collection.
type AnimalModel struct {
	Species   string    `bson:"species"`
	TagID     string    `bson:"tag_id"`
	Sex       string    `bson:"sex"`
	AgeYears  float64   `bson:"age_years,omitempty"`
	Name      string    `bson:"name,omitempty"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// FromAnimalDomain converts a domain Animal to its stored form.
func FromAnimalDomain(animal *entity.Animal) *AnimalModel {
	if animal == nil {
		return nil
	}

	return &AnimalModel{
		Species:   animal.Species,
		TagID:     animal.TagID,
		Sex:       animal.Sex.String(),
		AgeYears:  animal.AgeYears,
		Name:      animal.Name,
		CreatedAt: animal.CreatedAt,
		UpdatedAt: animal.UpdatedAt,
	}
}
