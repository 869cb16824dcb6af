package domain

import "fmt"

// Address identifies an account, a collection or a contract-like component.
// The empty string is the zero address.
type Address string

const ZeroAddress Address = ""

func (a Address) IsZero() bool {
	return a == ZeroAddress
}

// ItemKey uniquely identifies a rentable unit.
type ItemKey struct {
	Collection Address `json:"collection"`
	TokenID    int64   `json:"token_id"`
}

func (k ItemKey) String() string {
	return fmt.Sprintf("%s/%d", k.Collection, k.TokenID)
}

const (
	Hour = int64(60 * 60)
	Week = 7 * 24 * Hour
)
