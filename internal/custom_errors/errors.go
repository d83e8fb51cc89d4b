package custom_errors

import "errors"

var (
	ErrPostNotFound     = errors.New("post not found")
	ErrSlugTaken        = errors.New("slug already used for this publish date")
	ErrValidationFailed = errors.New("validation failed")
	ErrMailDelivery     = errors.New("mail delivery failed")
	ErrDatabaseQuery    = errors.New("database query error")
	ErrDatabaseScan     = errors.New("database scan error")
	ErrNoUpdateRows     = errors.New("no fields to update")
)
