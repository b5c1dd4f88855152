package models

// PinOutcome is the result of fetching a thread's starter message and pinning it
type PinOutcome string

const (
	PinOutcomeSuccess       PinOutcome = "success"
	PinOutcomeNotFound      PinOutcome = "not_found"
	PinOutcomeDenied        PinOutcome = "denied"
	PinOutcomePlatformError PinOutcome = "platform_error"
)

// IsSuccess returns true if the message ended up pinned
func (o PinOutcome) IsSuccess() bool {
	return o == PinOutcomeSuccess
}
