package wire

import (
	"context"
	"crewcast/contract"
	"crewcast/domain/event"
	"crewcast/errors"

	"google.golang.org/grpc"
)

const ServiceName = "crewcast.v1.Backend"

const (
	ListTopics          = "ListTopics"
	StartNewTopic       = "StartNewTopic"
	JoinTopicWithTicket = "JoinTopicWithTicket"
	JoinTopicWithID     = "JoinTopicWithId"
	GetTicketForTopic   = "GetTicketForTopic"
	LeaveTopic          = "LeaveTopic"
	SendMessage         = "SendMessage"
	ListFiles           = "ListFiles"
	ShareFile           = "ShareFile"
	DownloadFile        = "DownloadFile"
	GetUserByNodeID     = "GetUserByNodeId"
	CreateUser          = "CreateUser"
	GetNodeByID         = "GetNodeById"
	Subscribe           = "Subscribe"
)

// FullMethod returns the path of a method of the service.
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// BackendServer is what gets registered behind the service.
type BackendServer interface {
	contract.IBackend
	contract.IEventSource
}

// ServiceDesc describes the backend RPC surface. Both event streams go
// through the single server-streaming Subscribe method.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*BackendServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(ListTopics, func(ctx context.Context, s BackendServer, _ *Empty) (*TopicsResponse, error) {
			topics, err := s.ListTopics(ctx)
			return &TopicsResponse{Topics: topics}, err
		}),
		unary(StartNewTopic, func(ctx context.Context, s BackendServer, in *NameRequest) (*KeyResponse, error) {
			key, err := s.StartNewTopic(ctx, in.Name)
			return &KeyResponse{Key: key}, err
		}),
		unary(JoinTopicWithTicket, func(ctx context.Context, s BackendServer, in *KeyRequest) (*TopicResponse, error) {
			topic, err := s.JoinTopicWithTicket(ctx, in.Key)
			return &TopicResponse{Topic: topic}, err
		}),
		unary(JoinTopicWithID, func(ctx context.Context, s BackendServer, in *RowRequest) (*TopicResponse, error) {
			topic, err := s.JoinTopicWithID(ctx, in.ID)
			return &TopicResponse{Topic: topic}, err
		}),
		unary(GetTicketForTopic, func(ctx context.Context, s BackendServer, in *TopicRequest) (*KeyResponse, error) {
			key, err := s.GetTicketForTopic(ctx, in.TopicID)
			return &KeyResponse{Key: key}, err
		}),
		unary(LeaveTopic, func(ctx context.Context, s BackendServer, _ *Empty) (*Empty, error) {
			return &Empty{}, s.LeaveTopic(ctx)
		}),
		unary(SendMessage, func(ctx context.Context, s BackendServer, in *ContentRequest) (*Empty, error) {
			return &Empty{}, s.SendMessage(ctx, in.Content)
		}),
		unary(ListFiles, func(ctx context.Context, s BackendServer, in *TopicRequest) (*FilesResponse, error) {
			files, err := s.ListFiles(ctx, in.TopicID)
			return &FilesResponse{Files: files}, err
		}),
		unary(ShareFile, func(ctx context.Context, s BackendServer, in *PathRequest) (*Empty, error) {
			return &Empty{}, s.ShareFile(ctx, in.FilePath)
		}),
		unary(DownloadFile, func(ctx context.Context, s BackendServer, in *FileRequest) (*Empty, error) {
			return &Empty{}, s.DownloadFile(ctx, in.File)
		}),
		unary(GetUserByNodeID, func(ctx context.Context, s BackendServer, in *NodeRequest) (*UserResponse, error) {
			user, err := s.GetUserByNodeID(ctx, in.NodeID)
			return &UserResponse{User: user}, err
		}),
		unary(CreateUser, func(ctx context.Context, s BackendServer, in *UserRequest) (*Empty, error) {
			return &Empty{}, s.CreateUser(ctx, in.User)
		}),
		unary(GetNodeByID, func(ctx context.Context, s BackendServer, in *RowRequest) (*NodeResponse, error) {
			node, err := s.GetNodeByID(ctx, in.ID)
			return &NodeResponse{Node: node}, err
		}),
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    Subscribe,
			Handler:       subscribeHandler,
			ServerStreams: true,
		},
	},
}

// unary builds a method handler the way generated code does, with domain
// errors mapped to status errors.
func unary[Req, Resp any](method string, call func(context.Context, BackendServer, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			handler := func(ctx context.Context, req any) (any, error) {
				resp, err := call(ctx, srv.(BackendServer), req.(*Req))
				if err != nil {
					return nil, errors.MapToGRPCError(err)
				}
				return resp, nil
			}
			if interceptor == nil {
				return handler(ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FullMethod(method)}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// subscribeHandler forwards every payload of the requested stream until the
// client goes away or the source closes the stream.
func subscribeHandler(srv any, stream grpc.ServerStream) error {
	in := new(SubscribeRequest)
	if err := stream.RecvMsg(in); err != nil {
		return err
	}
	payloads, err := srv.(BackendServer).Subscribe(stream.Context(), event.Stream(in.Stream))
	if err != nil {
		return errors.MapToGRPCError(err)
	}
	for payload := range payloads {
		if err := stream.SendMsg(&Payload{Data: payload}); err != nil {
			return err
		}
	}
	return nil
}
