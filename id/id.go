package id

import (
	nanoid "github.com/matoous/go-nanoid/v2"
)

// NANO ID
const ID_LENGTH = 21

// Generate returns a new random nano id of ID_LENGTH characters.
func Generate() string {
	id, _ := nanoid.New()
	return id
}
