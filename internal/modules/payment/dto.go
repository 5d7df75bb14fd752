package payment

type CreatePaymentRequest struct {
	BookingID string  `json:"bookingId" binding:"required"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	Currency  string  `json:"currency"`
	Method    string  `json:"method" binding:"required"`
}
