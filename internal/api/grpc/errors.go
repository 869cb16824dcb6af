package grpc

import (
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"rentescrow-backend/internal/domain"
	"rentescrow-backend/internal/logger"
)

var reasonCodes = map[string]codes.Code{
	"NotFound":           codes.NotFound,
	"TokenNotFound":      codes.NotFound,
	"CollectionNotFound": codes.NotFound,
	"TokenExists":        codes.AlreadyExists,
	"Unauthorized":       codes.PermissionDenied,
	"NotOwner":           codes.PermissionDenied,
	"NotRentee":          codes.PermissionDenied,
	"InvalidArgument":    codes.InvalidArgument,
	"WrongPaymentAmount": codes.InvalidArgument,
	"InvalidDeadline":    codes.InvalidArgument,
	"ZeroWeeklyFee":      codes.InvalidArgument,
	"OverDeadline":       codes.InvalidArgument,
	"InvalidBid":         codes.InvalidArgument,
}

// toStatus maps a service error onto a gRPC status whose message starts
// with the reason name.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	reason := domain.ErrorCode(err)
	if reason == "Internal" {
		logger.Error("internal error", "error", err)
		return status.Error(codes.Internal, "Internal")
	}
	code, ok := reasonCodes[reason]
	if !ok {
		code = codes.FailedPrecondition
	}
	return status.Error(code, reason+": "+err.Error())
}

// ReasonFromError returns the reason name carried by an RPC error.
func ReasonFromError(err error) string {
	st, ok := status.FromError(err)
	if !ok {
		return domain.ErrorCode(err)
	}
	if st.Code() == codes.OK {
		return ""
	}
	reason, _, _ := strings.Cut(st.Message(), ":")
	return reason
}
