package model

import "errors"

var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized indicates a missing, invalid or expired credential,
	// or an inactive user.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden indicates an authenticated caller acting on a resource
	// it does not own.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidArgument indicates malformed input such as an unparsable id.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrEmailTaken indicates a registration attempt with an existing email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrUploadFailed indicates the storage provider rejected or failed
	// the upload.
	ErrUploadFailed = errors.New("upload failed")
)

var (
	ErrTokenExpired      = errors.New("token expired")
	ErrTokenBadSignature = errors.New("token signature or format invalid")
	ErrTokenAudience     = errors.New("token audience mismatch")
)
