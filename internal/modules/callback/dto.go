package callback

type CallbackRequest struct {
	GuestName string `json:"guest_name" binding:"required"`
	Phone     string `json:"phone_number" binding:"required"`
	Issue     string `json:"issue_description" binding:"required"`
}

type CallbackResult struct {
	Reference         string `json:"callback_reference"`
	GuestName         string `json:"guest_name"`
	Phone             string `json:"phone_number"`
	EstimatedCallback string `json:"estimated_callback_time"`
	Message           string `json:"message"`
}
