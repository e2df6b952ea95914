// Package validators contains the lexical validation rules applied to
// lookup keys before any network activity happens.
package validators

// Validator checks a candidate lookup key against the format required by
// the upstream provider. Implementations are pure: no I/O, no side
// effects, safe for concurrent use.
type Validator interface {
	Validate(key string) error
}
