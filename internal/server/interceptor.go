package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/talentform/docextract/internal/common"
)

// UnaryContextInterceptor stamps each call with a request id (taken from
// x-request-id metadata or freshly generated), carries the caller's owner id
// from x-owner-id metadata, and logs one line per call.
func UnaryContextInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	if logger == nil {
		logger = slog.Default()
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		requestID := ""
		ownerID := ""
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if vals := md.Get("x-request-id"); len(vals) > 0 {
				requestID = vals[0]
			}
			if vals := md.Get("x-owner-id"); len(vals) > 0 {
				ownerID = vals[0]
			}
		}
		if requestID == "" {
			requestID = uuid.New().String()
		}
		ctx = common.WithRequestID(ctx, requestID)
		if ownerID != "" {
			ctx = common.WithOwnerID(ctx, ownerID)
		}

		start := time.Now()
		resp, err := handler(ctx, req)

		logger.Info("grpc.call",
			"method", info.FullMethod,
			"req_id", requestID,
			"code", status.Code(err).String(),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return resp, err
	}
}
