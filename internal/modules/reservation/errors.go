package reservation

// Error codes returned to the orchestration layer. They match the keys the
// voice agent's prompt is written against, so changing one is a breaking
// change for the conversational flow.
const (
	CodeNotFound          = "reservation_not_found"
	CodeCancelled         = "reservation_cancelled"
	CodeVerification      = "verification_failed"
	CodeAlreadyCancelled  = "already_cancelled"
	CodeInvalidDateFormat = "invalid_date_format"
	CodeInvalidDates      = "invalid_dates"
	CodeInvalidRoomType   = "invalid_room_type"
	CodeCapacityExceeded  = "capacity_exceeded"
	CodeInvalidGuestCount = "invalid_guest_count"
	CodeInvalidModType    = "invalid_modification_type"
)

// Error carries the machine-readable code and the guest-facing message for
// a rejected operation. Rejections are data, not failures: the caller
// relays Message to the guest and branches on Code.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string { return e.Message }

func newError(code, message string) *Error {
	return &Error{Code: code, Message: message}
}
