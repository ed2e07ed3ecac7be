package dto

type CheckoutRequestDTO struct {
	PlanID int `json:"plan_id"`
}

type CheckoutResponseDTO struct {
	TransactionID  int64  `json:"transactionId"`
	PaymentPageURL string `json:"paymentPageUrl"`
}

type PaymentStatusResponseDTO struct {
	ID    int64  `json:"id"`
	State string `json:"state"`
	Local string `json:"local_status"`
}

type ReconcileResponseDTO struct {
	OK               bool   `json:"ok"`
	State            string `json:"state"`
	AlreadyFulfilled bool   `json:"alreadyFulfilled,omitempty"`
	Timeout          bool   `json:"timeout,omitempty"`
}

// WebhookRequestDTO is the provider's push notification. Only the entity id
// is trusted; state is re-read from the provider.
type WebhookRequestDTO struct {
	EntityID                    int64  `json:"entityId"`
	ListenerEntityTechnicalName string `json:"listenerEntityTechnicalName,omitempty"`
}
