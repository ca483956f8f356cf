package errors

import (
	"context"
	goerrors "errors"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// grpcCodes pairs sentinels with their transport code.
// More specific messages come before the ones they contain.
var grpcCodes = []struct {
	err  error
	code codes.Code
}{
	{ErrTopicNotFound, codes.NotFound},
	{ErrFileNotInCatalog, codes.NotFound},
	{ErrNodeNotInitialized, codes.NotFound},
	{ErrNotFound, codes.NotFound},
	{ErrAlreadyJoined, codes.FailedPrecondition},
	{ErrNoActiveTopic, codes.FailedPrecondition},
	{ErrOwnFile, codes.FailedPrecondition},
	{ErrAlreadyDownloaded, codes.AlreadyExists},
	{ErrDownloadInProgress, codes.AlreadyExists},
	{ErrInvalidTicket, codes.InvalidArgument},
	{ErrEmptyTopicName, codes.InvalidArgument},
	{ErrEmptyMessage, codes.InvalidArgument},
}

// MapToGRPCError turns a domain error into a status error carrying its message.
func MapToGRPCError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	switch {
	case goerrors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case goerrors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	}
	for _, entry := range grpcCodes {
		if goerrors.Is(err, entry.err) {
			return status.Error(entry.code, err.Error())
		}
	}
	return status.Error(codes.Internal, err.Error())
}

// FromGRPCError restores the sentinel behind a status error so callers can use errors.Is.
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	switch st.Code() {
	case codes.Canceled:
		return remoteError{sentinel: context.Canceled, message: st.Message()}
	case codes.DeadlineExceeded:
		return remoteError{sentinel: context.DeadlineExceeded, message: st.Message()}
	}
	for _, entry := range grpcCodes {
		if st.Code() == entry.code && strings.Contains(st.Message(), entry.err.Error()) {
			return remoteError{sentinel: entry.err, message: st.Message()}
		}
	}
	return err
}

type remoteError struct {
	sentinel error
	message  string
}

func (e remoteError) Error() string {
	return e.message
}

func (e remoteError) Unwrap() error {
	return e.sentinel
}
