package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid credentials")

	// ErrStorageUnavailable is returned when a persistence operation is
	// requested but the process was started without a database connection.
	ErrStorageUnavailable = errors.New("storage is not available")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
