package captcha

import "github.com/pkg/errors"

var (
	// ErrInvalidArgument means the caller passed a configuration that can never
	// produce a captcha (bad length bounds, empty answer, ...). Retrying with the
	// same arguments fails the same way.
	ErrInvalidArgument = errors.New("captcha: invalid argument")

	// ErrResourceUnavailable means a font or drawing resource could not be
	// acquired. The render is aborted and no image is returned.
	ErrResourceUnavailable = errors.New("captcha: resource unavailable")
)
