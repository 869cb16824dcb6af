package domain

import "errors"

// Named failure reasons. The error text is the reason name so callers and
// keepers can branch on it across process boundaries.
var (
	ErrNotRentable        = errors.New("NotRentable")
	ErrRentedItem         = errors.New("RentedItem")
	ErrOnlyRentableOTC    = errors.New("OnlyRentableOTC")
	ErrWrongPaymentAmount = errors.New("WrongPaymentAmount")
	ErrOverDeadline       = errors.New("OverDeadline")
	ErrInvalidDeadline    = errors.New("InvalidDeadline")
	ErrZeroWeeklyFee      = errors.New("ZeroWeeklyFee")
	ErrNotOwner           = errors.New("NotOwner")
	ErrNotRented          = errors.New("NotRented")
	ErrNotRentee          = errors.New("NotRentee")
	ErrUnauthorized       = errors.New("Unauthorized")
	ErrAuctionNotActive   = errors.New("AuctionNotActive")
	ErrAuctionNotClosable = errors.New("AuctionNotClosable")
	ErrAuctionEnded       = errors.New("AuctionEnded")
	ErrInvalidBid         = errors.New("InvalidBid")
	ErrNoBids             = errors.New("NoBids")
	ErrInsufficientFunds  = errors.New("InsufficientFunds")
	ErrPaymentRejected    = errors.New("PaymentRejected")
	ErrTokenNotFound      = errors.New("TokenNotFound")
	ErrTokenExists        = errors.New("TokenExists")
	ErrTransferNotAllowed = errors.New("TransferNotAllowed")
	ErrCollectionNotFound = errors.New("CollectionNotFound")
	ErrInvalidArgument    = errors.New("InvalidArgument")
	ErrNotFound           = errors.New("NotFound")
)

var reasons = []error{
	ErrNotRentable, ErrRentedItem, ErrOnlyRentableOTC, ErrWrongPaymentAmount,
	ErrOverDeadline, ErrInvalidDeadline, ErrZeroWeeklyFee, ErrNotOwner,
	ErrNotRented, ErrNotRentee, ErrUnauthorized, ErrAuctionNotActive,
	ErrAuctionNotClosable, ErrAuctionEnded, ErrInvalidBid, ErrNoBids,
	ErrInsufficientFunds, ErrPaymentRejected, ErrTokenNotFound, ErrTokenExists,
	ErrTransferNotAllowed, ErrCollectionNotFound, ErrInvalidArgument, ErrNotFound,
}

// ErrorCode returns the reason name carried by err, or "Internal" when err
// does not wrap one of the named reasons.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}
	for _, r := range reasons {
		if errors.Is(err, r) {
			return r.Error()
		}
	}
	return "Internal"
}
