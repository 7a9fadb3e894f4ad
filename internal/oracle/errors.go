package oracle

import "github.com/pkg/errors"

var (
	// ErrInvalidDefinition marks a definition that breaks the constant/balanced invariants.
	ErrInvalidDefinition = errors.New("invalid oracle definition")
	// ErrUnknownPolicy marks an unsupported classifier policy name.
	ErrUnknownPolicy = errors.New("unknown classifier policy")
)
