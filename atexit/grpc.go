package atexit

import (
	"context"
	"time"

	"github.com/LerianStudio/lib-shutdown-go/constant"
	"github.com/LerianStudio/lib-shutdown-go/registry"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// UnaryDrainInterceptor creates a gRPC unary server interceptor that rejects
// requests with Unavailable once the shutdown drain has started.
// It works similarly to the Fiber middleware but adapted for gRPC context.
func (c *Client) UnaryDrainInterceptor() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		if c == nil || !c.Draining() {
			return handler(ctx, req)
		}

		c.logger.Debugf("Rejecting %s: server draining", info.FullMethod)

		return nil, status.Error(codes.Unavailable, constant.ErrServerDraining.Error()+" - server is draining")
	}
}

// StreamDrainInterceptor creates a gRPC stream server interceptor that rejects
// new streams once the shutdown drain has started.
func (c *Client) StreamDrainInterceptor() grpc.StreamServerInterceptor {
	return func(
		srv any,
		ss grpc.ServerStream,
		info *grpc.StreamServerInfo,
		handler grpc.StreamHandler,
	) error {
		if c == nil || !c.Draining() {
			return handler(srv, ss)
		}

		c.logger.Debugf("Rejecting stream %s: server draining", info.FullMethod)

		return status.Error(codes.Unavailable, constant.ErrServerDraining.Error()+" - server is draining")
	}
}

// RegisterServerStop registers a graceful stop of the gRPC server under the
// grpc dedup key. GracefulStop is bounded by the configured drain timeout,
// after which the server is stopped forcefully.
func (c *Client) RegisterServerStop(srv *grpc.Server) (*registry.Handle, error) {
	return c.RegisterKeyed(constant.GRPCServerKey, func() {
		c.logger.Infof("Stopping gRPC server for %s", c.config.AppName)

		done := make(chan struct{})

		go func() {
			srv.GracefulStop()
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(c.config.DrainTimeout):
			c.logger.Errorf("gRPC graceful stop exceeded %s, forcing stop", c.config.DrainTimeout)
			srv.Stop()
		}
	})
}
