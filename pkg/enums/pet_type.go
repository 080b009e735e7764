package enums

import "fmt"

// PetType narrows the catalog view to products for one kind of pet.
type PetType string

const (
	PetTypeDog PetType = "dog"
	PetTypeCat PetType = "cat"
	PetTypeAll PetType = "all"
)

var validPetTypes = []PetType{
	PetTypeDog,
	PetTypeCat,
	PetTypeAll,
}

// String implements fmt.Stringer.
func (p PetType) String() string {
	return string(p)
}

// IsValid reports whether the value is a known PetType.
func (p PetType) IsValid() bool {
	for _, candidate := range validPetTypes {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePetType converts raw input into a PetType.
func ParsePetType(value string) (PetType, error) {
	for _, candidate := range validPetTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid pet type %q", value)
}
