package errors

import "errors"

// Is and As re-export the standard library helpers so callers that import
// this package do not also need the standard errors package.
var (
	Is = errors.Is
	As = errors.As
)
