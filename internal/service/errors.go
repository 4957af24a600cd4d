package service

import "errors"

// Error taxonomy shared by every service. Handlers map these onto HTTP
// statuses; callers match with errors.Is.
var (
	ErrValidation  = errors.New("validation")  // 400
	ErrNotFound    = errors.New("not found")   // 404
	ErrFetch       = errors.New("fetch")       // 500, read path
	ErrPersistence = errors.New("persistence") // 500, write path
)
