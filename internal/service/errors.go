package service

import (
	"fmt"
	"strings"
)

// BatchTooLargeError is returned by LookupBatch when the request carries
// more keys than the configured cap. No dispatch happens in that case.
type BatchTooLargeError struct {
	Max int
	Got int
}

func (e *BatchTooLargeError) Error() string {
	return fmt.Sprintf("batch of %d keys exceeds the maximum of %d", e.Got, e.Max)
}

// InvalidDNIsError is returned by LookupBatch when one or more keys fail
// validation. DNIs lists every offending key, in input order, so the
// caller can report all of them at once.
type InvalidDNIsError struct {
	DNIs []string
}

func (e *InvalidDNIsError) Error() string {
	return "invalid dnis: " + strings.Join(e.DNIs, ", ")
}
