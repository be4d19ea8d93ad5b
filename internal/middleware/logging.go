// Package middleware provides Connect interceptors shared by the ledger
// server.
package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"
)

// LoggingInterceptor returns a Connect interceptor that logs one line per
// unary call with its procedure, peer, result code and duration.
func LoggingInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			resp, err := next(ctx, req)

			attrs := []slog.Attr{
				slog.String("procedure", req.Spec().Procedure),
				slog.String("peer", req.Peer().Addr),
				slog.String("code", CodeOf(err)),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()),
			}
			msg := "RPC ok"
			if err != nil {
				msg = "RPC error"
				attrs = append(attrs, slog.String("error", errorMessage(err)))
			}
			slog.LogAttrs(ctx, levelFor(err), msg, attrs...)

			return resp, err
		}
	}
}

// levelFor logs caller mistakes as warnings and server faults as errors.
func levelFor(err error) slog.Level {
	if err == nil {
		return slog.LevelInfo
	}
	switch connect.CodeOf(err) {
	case connect.CodeInternal, connect.CodeUnknown, connect.CodeDataLoss, connect.CodeUnavailable:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func errorMessage(err error) string {
	var ce *connect.Error
	if errors.As(err, &ce) {
		return ce.Message()
	}
	return err.Error()
}
