package verify_reservation

// VerifyRequest HTTP request model
type VerifyRequest struct {
	Email string `json:"email" validate:"required,email"`
}
