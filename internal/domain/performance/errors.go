package performance

import "errors"

// Performance domain errors
var (
	ErrEvaluationNotFound = errors.New("evaluation not found")
)
