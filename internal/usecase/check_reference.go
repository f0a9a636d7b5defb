package usecase

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// checkReferenceAlphabet omits characters that are easily misread.
const checkReferenceAlphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZ"

// newCheckReference returns a caller-facing id for an eligibility check,
// e.g. ELG-7KQ2M9XH4P.
func newCheckReference() (string, error) {
	id, err := gonanoid.Generate(checkReferenceAlphabet, 10)
	if err != nil {
		return "", fmt.Errorf("failed to generate check reference: %w", err)
	}
	return "ELG-" + id, nil
}
