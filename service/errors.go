package service

import "errors"

// ErrInvalidArgument marks input that is rejected before any storage
// access: unknown enum values, empty required IDs, non-positive limits.
// Callers test for it with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")
