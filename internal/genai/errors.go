package genai

import "errors"

var (
	// ErrUnavailable indicates the generative endpoint is unreachable.
	ErrUnavailable = errors.New("generative endpoint unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("generation request timed out")

	// ErrInvalidOutput indicates the model response could not be parsed
	// into the expected structured format.
	ErrInvalidOutput = errors.New("invalid model output format")

	// ErrBlocked indicates the service refused the prompt or response.
	ErrBlocked = errors.New("generation blocked by the service")

	// ErrMissingAPIKey indicates no API credential was configured.
	ErrMissingAPIKey = errors.New("no API key configured")
)
