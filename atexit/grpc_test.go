package atexit_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestUnaryDrainInterceptor(t *testing.T) {
	client := newTestClient(t)

	interceptor := client.UnaryDrainInterceptor()
	info := &grpc.UnaryServerInfo{FullMethod: "/ledger.Service/Commit"}
	handler := func(ctx context.Context, req any) (any, error) {
		return "ok", nil
	}

	resp, err := interceptor(context.Background(), nil, info, handler)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)

	client.RunAll()

	_, err = interceptor(context.Background(), nil, info, handler)
	require.Error(t, err)
	assert.Equal(t, codes.Unavailable, status.Code(err))
}

func TestStreamDrainInterceptor(t *testing.T) {
	client := newTestClient(t)

	interceptor := client.StreamDrainInterceptor()
	info := &grpc.StreamServerInfo{FullMethod: "/ledger.Service/Watch"}
	handled := false
	handler := func(srv any, ss grpc.ServerStream) error {
		handled = true
		return nil
	}

	require.NoError(t, interceptor(nil, nil, info, handler))
	assert.True(t, handled)

	client.RunAll()

	err := interceptor(nil, nil, info, handler)
	require.Error(t, err)
	assert.Equal(t, codes.Unavailable, status.Code(err))
}

func TestRegisterServerStop_StopsServerOnDrain(t *testing.T) {
	client := newTestClient(t)

	srv := grpc.NewServer()

	h, err := client.RegisterServerStop(srv)
	require.NoError(t, err)
	assert.True(t, h.IsRegistered())

	// GracefulStop on an unstarted server returns immediately
	client.RunAll()

	assert.False(t, h.IsRegistered())
}
