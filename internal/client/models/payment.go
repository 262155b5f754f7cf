package models

// PaymentMethod enumerates the manual payment channels the portal accepts.
type PaymentMethod string

const (
	MethodGCash        PaymentMethod = "GCASH"
	MethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	MethodCash         PaymentMethod = "CASH"
)

// Payment is a record of funds submitted against a billing period, pending
// backend verification.
type Payment struct {
	ID              int64   `json:"id"`
	PaymentDate     string  `json:"payment_date"`
	Amount          float64 `json:"amount"`
	Method          string  `json:"payment_method"`
	Status          string  `json:"status"`
	Attachment      *string `json:"attachment,omitempty"`
	ReferenceNumber *string `json:"reference_number,omitempty"`
}
