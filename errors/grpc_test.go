package errors

import (
	"context"
	goerrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestGRPCErrors_RoundTrip(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		sentinel error
		code     codes.Code
	}{
		{"topic not found", fmt.Errorf("%w: golang", ErrTopicNotFound), ErrTopicNotFound, codes.NotFound},
		{"user not found", fmt.Errorf("%w: user nodeA", ErrNotFound), ErrNotFound, codes.NotFound},
		{"already joined", ErrAlreadyJoined, ErrAlreadyJoined, codes.FailedPrecondition},
		{"no active topic", ErrNoActiveTopic, ErrNoActiveTopic, codes.FailedPrecondition},
		{"invalid ticket", fmt.Errorf("%w: token is malformed", ErrInvalidTicket), ErrInvalidTicket, codes.InvalidArgument},
		{"already downloaded", ErrAlreadyDownloaded, ErrAlreadyDownloaded, codes.AlreadyExists},
		{"deadline", context.DeadlineExceeded, context.DeadlineExceeded, codes.DeadlineExceeded},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := require.New(t)

			wire := MapToGRPCError(tc.err)
			req.Equal(tc.code, status.Code(wire))

			back := FromGRPCError(wire)
			req.ErrorIs(back, tc.sentinel)
			req.Equal(tc.err.Error(), back.Error())
		})
	}
}

func TestGRPCErrors_TopicNotFoundIsNotPlainNotFound(t *testing.T) {
	req := require.New(t)

	back := FromGRPCError(MapToGRPCError(ErrTopicNotFound))

	req.ErrorIs(back, ErrTopicNotFound)
	req.NotErrorIs(back, ErrNotFound)
}

func TestGRPCErrors_UnknownErrorsAreInternal(t *testing.T) {
	req := require.New(t)

	wire := MapToGRPCError(goerrors.New("disk full"))

	req.Equal(codes.Internal, status.Code(wire))
	req.Equal("disk full", status.Convert(FromGRPCError(wire)).Message())
	req.NoError(MapToGRPCError(nil))
	req.NoError(FromGRPCError(nil))
}
