package errors

import "errors"

// Editor errors
var (
	ErrNoMeeting     = errors.New("no meeting is open")
	ErrNoTranscript  = errors.New("no transcript available")
	ErrNoAudio       = errors.New("no audio to transcribe")
	ErrUnparsedReply = errors.New("could not parse AI response")
	ErrUnknownFormat = errors.New("unknown export format")
)
