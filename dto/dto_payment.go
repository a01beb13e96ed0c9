package dto

type CreatePaymentRequest struct {
	TxRef            string      `json:"tx_ref"`
	Amount           float64     `json:"amount"`
	Currency         string      `json:"currency"`
	Email            string      `json:"email"`
	FirstName        string      `json:"first_name"`
	LastName         string      `json:"last_name"`
	Status           string      `json:"status"`
	PaymentDate      interface{} `json:"payment_date"`
	CallbackResponse interface{} `json:"callback_response"`
}

// Payments only ever update status and the gateway callback payload.
type UpdatePaymentRequest struct {
	Status           *string     `json:"status"`
	CallbackResponse interface{} `json:"callback_response"`
}

type PaymentMetrics struct {
	TotalRevenue float64          `json:"totalRevenue"`
	StatusCounts map[string]int64 `json:"statusCounts"`
}
