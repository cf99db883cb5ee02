package model

// Operation types accepted in a script.
const (
	OperationDeposit  = "deposit"
	OperationWithdraw = "withdraw"
	OperationTransfer = "transfer"
)

// Operation is one scripted step against named accounts. Amount carries no
// validation tag: a negative amount must reach the Account and fail there.
type Operation struct {
	Type      string  `json:"type" mapstructure:"type" validate:"required,oneof=deposit withdraw transfer"`
	Account   string  `json:"account" mapstructure:"account" validate:"required"`
	ToAccount string  `json:"to_account,omitempty" mapstructure:"to_account" validate:"required_if=Type transfer"`
	Amount    float64 `json:"amount" mapstructure:"amount"`
}
