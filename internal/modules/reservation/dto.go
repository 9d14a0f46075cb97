package reservation

type LookupRequest struct {
	Confirmation string `json:"confirmation_number" binding:"required"`
	LastName     string `json:"last_name" binding:"required"`
}

type CancelRequest struct {
	Confirmation string `json:"confirmation_number" binding:"required"`
	LastName     string `json:"last_name" binding:"required"`
	Reason       string `json:"cancellation_reason" binding:"required"`
}

type ModifyRequest struct {
	Confirmation string `json:"confirmation_number" binding:"required"`
	LastName     string `json:"last_name" binding:"required"`
	Kind         string `json:"modification_type" binding:"required"`
	NewValue     string `json:"new_value" binding:"required"`
}

// ReservationDetails is the lookup payload. Money fields are formatted for
// the voice channel ("$597.00"), dates as YYYY-MM-DD.
type ReservationDetails struct {
	Confirmation    string   `json:"confirmation_number"`
	GuestName       string   `json:"guest_name"`
	CheckIn         string   `json:"check_in_date"`
	CheckOut        string   `json:"check_out_date"`
	Nights          int      `json:"nights"`
	RoomType        string   `json:"room_type"`
	RoomNumber      string   `json:"room_number"`
	Guests          int      `json:"number_of_guests"`
	RatePerNight    string   `json:"rate_per_night"`
	TotalCost       string   `json:"total_cost"`
	Status          string   `json:"reservation_status"`
	PaymentStatus   string   `json:"payment_status"`
	SpecialRequests []string `json:"special_requests"`
	Message         string   `json:"message"`
}

type CancellationResult struct {
	Reference     string `json:"cancellation_reference"`
	Confirmation  string `json:"original_confirmation"`
	GuestName     string `json:"guest_name"`
	CheckIn       string `json:"check_in_date"`
	CheckOut      string `json:"check_out_date"`
	PolicyApplied string `json:"cancellation_policy_applied"`
	RefundInfo    string `json:"refund_information"`
	Message       string `json:"message"`
}

// Price-change classifications for a successful modification.
const (
	PriceSurcharge = "surcharge"
	PriceCredit    = "credit"
	PriceUnchanged = "unchanged"
)

type ModificationResult struct {
	Confirmation    string   `json:"confirmation_number"`
	Changes         []string `json:"changes_made"`
	CheckIn         string   `json:"new_check_in"`
	CheckOut        string   `json:"new_check_out"`
	RoomType        string   `json:"new_room_type"`
	Guests          int      `json:"new_guest_count"`
	NewTotal        string   `json:"new_total"`
	PriceDifference string   `json:"price_difference"`
	PriceChange     string   `json:"price_change"`
	SpecialRequests []string `json:"special_requests"`
	Message         string   `json:"message"`
}
