package grpc

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"rentescrow-backend/internal/domain"
)

// CallerMetadataKey carries the authenticated caller address. The auth
// interceptor overwrites any value the client sent.
const CallerMetadataKey = "caller-address"

// CallerFromContext extracts the caller address from the gRPC metadata.
func CallerFromContext(ctx context.Context) (domain.Address, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return domain.ZeroAddress, status.Errorf(codes.Unauthenticated, "metadata is not provided")
	}

	callers := md.Get(CallerMetadataKey)
	if len(callers) == 0 || callers[0] == "" {
		return domain.ZeroAddress, status.Errorf(codes.Unauthenticated, "caller address is not provided in metadata")
	}
	return domain.Address(callers[0]), nil
}
