package cancel_reservation

// CancelRequest HTTP request model
type CancelRequest struct {
	Email string `json:"email" validate:"required,email"`
}
