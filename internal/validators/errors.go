package validators

import "errors"

var (
	// ErrInvalidDNI is returned by the DNI validator for any key that is
	// not exactly 8 decimal digits. Callers match it with [errors.Is].
	ErrInvalidDNI = errors.New("dni must be exactly 8 digits")
)
