package client

import (
	"context"
	"crewcast/domain"
	"crewcast/domain/event"
	"crewcast/errors"
	"crewcast/infrastructure/grpc/wire"
	"fmt"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/backoff"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

// BackendClient is the networking backend seen through gRPC.
// It implements contract.IBackend and contract.IEventSource.
type BackendClient struct {
	conn       *grpc.ClientConn
	log        *slog.Logger
	rpcTimeout time.Duration
	buffer     int
}

// Dial creates a lazy connection to addr. Extra options are appended to the defaults.
func Dial(log *slog.Logger, addr string, rpcTimeout time.Duration, opts ...grpc.DialOption) (*BackendClient, error) {
	defaults := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithConnectParams(grpc.ConnectParams{
			Backoff: backoff.Config{
				BaseDelay:  100 * time.Millisecond,
				Multiplier: 1.6,
				Jitter:     0.2,
				MaxDelay:   3 * time.Second,
			},
		}),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(wire.CodecName)),
		grpc.WithChainUnaryInterceptor(loggingInterceptor(log)),
	}
	conn, err := grpc.NewClient(addr, append(defaults, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("dial backend %s: %w", addr, err)
	}
	return &BackendClient{conn: conn, log: log, rpcTimeout: rpcTimeout, buffer: 64}, nil
}

func (c *BackendClient) Close() error {
	return c.conn.Close()
}

// loggingInterceptor logs every call with its status and latency.
func loggingInterceptor(log *slog.Logger) grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		start := time.Now()
		err := invoker(ctx, method, req, reply, cc, opts...)
		log.Debug("Backend call",
			"method", method,
			"code", status.Code(err).String(),
			"latency", time.Since(start))
		return err
	}
}

func (c *BackendClient) invoke(ctx context.Context, method string, in, out any) error {
	if c.rpcTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.rpcTimeout)
		defer cancel()
	}
	return errors.FromGRPCError(c.conn.Invoke(ctx, wire.FullMethod(method), in, out))
}

func (c *BackendClient) ListTopics(ctx context.Context) ([]domain.Topic, error) {
	var out wire.TopicsResponse
	err := c.invoke(ctx, wire.ListTopics, &wire.Empty{}, &out)
	return out.Topics, err
}

func (c *BackendClient) StartNewTopic(ctx context.Context, name string) (string, error) {
	var out wire.KeyResponse
	err := c.invoke(ctx, wire.StartNewTopic, &wire.NameRequest{Name: name}, &out)
	return out.Key, err
}

func (c *BackendClient) JoinTopicWithTicket(ctx context.Context, key string) (domain.Topic, error) {
	var out wire.TopicResponse
	err := c.invoke(ctx, wire.JoinTopicWithTicket, &wire.KeyRequest{Key: key}, &out)
	return out.Topic, err
}

func (c *BackendClient) JoinTopicWithID(ctx context.Context, id int64) (domain.Topic, error) {
	var out wire.TopicResponse
	err := c.invoke(ctx, wire.JoinTopicWithID, &wire.RowRequest{ID: id}, &out)
	return out.Topic, err
}

func (c *BackendClient) GetTicketForTopic(ctx context.Context, topicID string) (string, error) {
	var out wire.KeyResponse
	err := c.invoke(ctx, wire.GetTicketForTopic, &wire.TopicRequest{TopicID: topicID}, &out)
	return out.Key, err
}

func (c *BackendClient) LeaveTopic(ctx context.Context) error {
	return c.invoke(ctx, wire.LeaveTopic, &wire.Empty{}, &wire.Empty{})
}

func (c *BackendClient) SendMessage(ctx context.Context, content string) error {
	return c.invoke(ctx, wire.SendMessage, &wire.ContentRequest{Content: content}, &wire.Empty{})
}

func (c *BackendClient) ListFiles(ctx context.Context, topicID string) ([]domain.SharedFile, error) {
	var out wire.FilesResponse
	err := c.invoke(ctx, wire.ListFiles, &wire.TopicRequest{TopicID: topicID}, &out)
	return out.Files, err
}

func (c *BackendClient) ShareFile(ctx context.Context, filePath string) error {
	return c.invoke(ctx, wire.ShareFile, &wire.PathRequest{FilePath: filePath}, &wire.Empty{})
}

func (c *BackendClient) DownloadFile(ctx context.Context, file domain.SharedFile) error {
	return c.invoke(ctx, wire.DownloadFile, &wire.FileRequest{File: file}, &wire.Empty{})
}

func (c *BackendClient) GetUserByNodeID(ctx context.Context, nodeID string) (domain.UserInfo, error) {
	var out wire.UserResponse
	err := c.invoke(ctx, wire.GetUserByNodeID, &wire.NodeRequest{NodeID: nodeID}, &out)
	return out.User, err
}

func (c *BackendClient) CreateUser(ctx context.Context, user domain.UserInfo) error {
	return c.invoke(ctx, wire.CreateUser, &wire.UserRequest{User: user}, &wire.Empty{})
}

func (c *BackendClient) GetNodeByID(ctx context.Context, id int64) (domain.Node, error) {
	var out wire.NodeResponse
	err := c.invoke(ctx, wire.GetNodeByID, &wire.RowRequest{ID: id}, &out)
	return out.Node, err
}

// Subscribe opens a server stream and relays its payloads. The channel is
// closed when ctx is canceled or the stream breaks.
func (c *BackendClient) Subscribe(ctx context.Context, stream event.Stream) (<-chan []byte, error) {
	desc := &wire.ServiceDesc.Streams[0]
	clientStream, err := c.conn.NewStream(ctx, desc, wire.FullMethod(wire.Subscribe))
	if err != nil {
		return nil, errors.FromGRPCError(err)
	}
	if err := clientStream.SendMsg(&wire.SubscribeRequest{Stream: string(stream)}); err != nil {
		return nil, errors.FromGRPCError(err)
	}
	if err := clientStream.CloseSend(); err != nil {
		return nil, errors.FromGRPCError(err)
	}

	payloads := make(chan []byte, c.buffer)
	go func() {
		defer close(payloads)
		for {
			var msg wire.Payload
			if err := clientStream.RecvMsg(&msg); err != nil {
				if ctx.Err() == nil {
					c.log.Warn("Event stream interrupted", "stream", string(stream), "err", err)
				}
				return
			}
			select {
			case payloads <- msg.Data:
			case <-ctx.Done():
				return
			}
		}
	}()
	return payloads, nil
}
