// SPDX-License-Identifier: Apache-2.0

package validators

// dniLength is the fixed length of a Peruvian DNI.
const dniLength = 8

// DNIValidator implements the Validator interface for DNI lookup keys.
type DNIValidator struct {
}

// NewDNIValidator constructs a new DNIValidator and returns it as the
// Validator interface.
func NewDNIValidator() Validator {
	return &DNIValidator{}
}

// Validate reports whether key is a well-formed DNI: exactly 8 bytes,
// every one of them an ASCII decimal digit. Wrong length, letters,
// signs, spaces, or non-ASCII digits all yield [ErrInvalidDNI].
func (v *DNIValidator) Validate(key string) error {
	if len(key) != dniLength {
		return ErrInvalidDNI
	}

	for i := 0; i < len(key); i++ {
		if key[i] < '0' || key[i] > '9' {
			return ErrInvalidDNI
		}
	}

	return nil
}
