package service

import (
	"errors"
	"fmt"

	"connectrpc.com/connect"

	"github.com/mmynk/roomledger/internal/storage"
)

var (
	// ErrInvalidArgument wraps every boundary validation failure.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrAlreadyExists is returned for a roommate name already in use.
	ErrAlreadyExists = errors.New("already exists")
)

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// toConnectError maps sentinel errors to Connect codes.
func toConnectError(err error) *connect.Error {
	switch {
	case errors.Is(err, ErrInvalidArgument):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, ErrAlreadyExists):
		return connect.NewError(connect.CodeAlreadyExists, err)
	case errors.Is(err, storage.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}
