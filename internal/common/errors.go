// Package common defines shared constants and sentinel errors used across
// the caseta layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (

	// storage errors
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrWriteFailed        = errors.New("write failed")
	ErrNotFound           = errors.New("not found")

	// backup errors
	ErrImportDataInvalid = errors.New("import data invalid")

	// replication errors (logged, never returned to callers of local writes)
	ErrReplicationFailed = errors.New("replication failed")

	// auth errors
	ErrInvalidCredentials = errors.New("invalid username/password")

	// validation errors
	ErrValidation = errors.New("validation error")
)
