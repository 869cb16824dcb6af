package domain

type TransferType string

const (
	TransferTypeDeposit     TransferType = "DEPOSIT"
	TransferTypePayment     TransferType = "PAYMENT"
	TransferTypeOwnerCredit TransferType = "OWNER_CREDIT"
	TransferTypeKeeperFee   TransferType = "KEEPER_FEE"
	TransferTypeRefund      TransferType = "REFUND"
	TransferTypeCollateral  TransferType = "COLLATERAL"
)

type Account struct {
	Address         Address `json:"address"`
	Balance         int64   `json:"balance"`
	RejectsPayments bool    `json:"rejects_payments"`
}

// Transfer is one value movement. From is zero for external deposits.
type Transfer struct {
	ID          string       `json:"id"`
	From        Address      `json:"from"`
	To          Address      `json:"to"`
	Amount      int64        `json:"amount"`
	Type        TransferType `json:"type"`
	Item        *ItemKey     `json:"item,omitempty"`
	Description string       `json:"description"`
	CreatedAt   int64        `json:"created_at"`
}
