package entity

import "time"

// Sex is the recorded sex of a tracked animal.
type Sex string

const (
	SexMale    Sex = "male"
	SexFemale  Sex = "female"
	SexUnknown Sex = "unknown"
)

// String returns the string representation of the Sex.
func (s Sex) String() string {
	return string(s)
}

// IsValid checks if the Sex is a valid value.
func (s Sex) IsValid() bool {
	switch s {
	case SexMale, SexFemale, SexUnknown:
		return true
	default:
		return false
	}
}

// Animal is a tracked animal. TagID (the collar/tag identifier) is the
// natural key.
type Animal struct {
	ID        string    `json:"id,omitempty"`
	Species   string    `json:"species" validate:"required"`
	TagID     string    `json:"tag_id" validate:"required"`
	Sex       Sex       `json:"sex"`
	AgeYears  float64   `json:"age_years,omitempty" validate:"gte=0"`
	Name      string    `json:"name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewAnimal constructs a validated Animal. An empty sex defaults to unknown.
func NewAnimal(species, tagID string, sex Sex, ageYears float64, name string) (*Animal, error) {
	if sex == "" {
		sex = SexUnknown
	}
	if !sex.IsValid() {
		return nil, invalidEnum("sex", sex.String())
	}

	now := time.Now().UTC()
	animal := &Animal{
		Species:   species,
		TagID:     tagID,
		Sex:       sex,
		AgeYears:  ageYears,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := validateStruct(animal); err != nil {
		return nil, err
	}

	return animal, nil
}
