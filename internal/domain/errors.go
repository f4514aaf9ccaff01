package domain

import "errors"

// Error taxonomy for the fetch and question-answering pipelines. Each
// condition is a distinct sentinel so handlers can render a distinct
// message; none of them should ever terminate the process.
var (
	// ErrInvalidReference means the video reference is neither a bare
	// video id nor a URL of a recognized shape.
	ErrInvalidReference = errors.New("invalid video reference")
	// ErrCommentsDisabled means the platform refused the request because
	// comments are turned off for the video.
	ErrCommentsDisabled = errors.New("comments are disabled for this video")
	// ErrQuotaExceeded means the platform rejected the request for
	// quota or rate-limit reasons.
	ErrQuotaExceeded = errors.New("platform API quota exceeded")
	// ErrNetwork wraps transport-level failures talking to the platform.
	ErrNetwork = errors.New("network error")

	// ErrLLMUnavailable means the model endpoint failed for a reason
	// other than rate limiting (transport, auth, server error).
	ErrLLMUnavailable = errors.New("language model unavailable")
	// ErrLLMQuotaExceeded means the model endpoint rate-limited us.
	ErrLLMQuotaExceeded = errors.New("language model quota exceeded")

	// ErrSessionNotFound means the session id is unknown or expired.
	ErrSessionNotFound = errors.New("session not found")
	// ErrNoComments means an operation that needs a fetched comment
	// collection ran before any successful fetch in the session.
	ErrNoComments = errors.New("no comments fetched in this session")
)
