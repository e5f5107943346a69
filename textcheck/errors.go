package textcheck

import "errors"

var (
	// ErrEmptyInput signals empty or whitespace-only input.
	ErrEmptyInput = errors.New("textcheck: empty input")
	// ErrTextTooLong signals a single signed call over the hard length cap.
	ErrTextTooLong = errors.New("textcheck: text exceeds maximum length")
	// ErrSign signals a malformed URL or secret during request signing.
	ErrSign = errors.New("textcheck: request signing failed")
	// ErrTransport signals a network failure or non-2xx status.
	ErrTransport = errors.New("textcheck: transport failure")
	// ErrProtocol signals a non-zero response code or undecodable payload.
	ErrProtocol = errors.New("textcheck: malformed upstream response")
	// ErrNoSegments signals that non-empty input produced no segments.
	// Should be unreachable; guarded anyway.
	ErrNoSegments = errors.New("textcheck: segmentation produced no segments")
)
