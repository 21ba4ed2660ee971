package generator

import (
	"github.com/google/uuid"
)

// GenerateID returns a new random (version 4) UUID in its canonical string form.
func GenerateID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}

	return id.String(), nil
}

// IsValidID reports whether id could have been produced by GenerateID.
func IsValidID(id string) bool {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return false
	}

	// uuid.Parse also accepts the urn and braced forms.
	return parsed.String() == id
}
