package interceptor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestRecoveryUnary(t *testing.T) {
	info := &grpc.UnaryServerInfo{FullMethod: "/rentescrow.v1.LedgerService/GetTransfers"}
	unary := RecoveryUnary()

	t.Run("Panic", func(t *testing.T) {
		var out interface{}
		var err error
		require.NotPanics(t, func() {
			out, err = unary(context.Background(), nil, info, func(context.Context, interface{}) (interface{}, error) {
				panic("runtime error: slice bounds out of range")
			})
		})
		assert.Nil(t, out)
		assert.Equal(t, codes.Internal, status.Code(err))
	})

	t.Run("PassThrough", func(t *testing.T) {
		out, err := unary(context.Background(), "req", info, func(_ context.Context, req interface{}) (interface{}, error) {
			return req, nil
		})
		require.NoError(t, err)
		assert.Equal(t, "req", out)
	})
}
