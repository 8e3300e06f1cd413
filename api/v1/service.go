package v1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	InterviewCoach_StartInterview_FullMethodName        = "/interview.v1.InterviewCoach/StartInterview"
	InterviewCoach_SendMessage_FullMethodName           = "/interview.v1.InterviewCoach/SendMessage"
	InterviewCoach_ExtractScores_FullMethodName         = "/interview.v1.InterviewCoach/ExtractScores"
	InterviewCoach_RecordInterview_FullMethodName       = "/interview.v1.InterviewCoach/RecordInterview"
	InterviewCoach_GetProfile_FullMethodName            = "/interview.v1.InterviewCoach/GetProfile"
	InterviewCoach_GetInterviewBreakdown_FullMethodName = "/interview.v1.InterviewCoach/GetInterviewBreakdown"
)

// InterviewCoachServer is the server API for the InterviewCoach service.
type InterviewCoachServer interface {
	StartInterview(context.Context, *StartInterviewRequest) (*StartInterviewResponse, error)
	SendMessage(context.Context, *SendMessageRequest) (*SendMessageResponse, error)
	ExtractScores(context.Context, *ExtractScoresRequest) (*ExtractScoresResponse, error)
	RecordInterview(context.Context, *RecordInterviewRequest) (*RecordInterviewResponse, error)
	GetProfile(context.Context, *GetProfileRequest) (*ProfileResponse, error)
	GetInterviewBreakdown(context.Context, *InterviewBreakdownRequest) (*InterviewBreakdownResponse, error)
}

// UnimplementedInterviewCoachServer can be embedded to keep servers forward compatible.
type UnimplementedInterviewCoachServer struct{}

func (UnimplementedInterviewCoachServer) StartInterview(context.Context, *StartInterviewRequest) (*StartInterviewResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method StartInterview not implemented")
}

func (UnimplementedInterviewCoachServer) SendMessage(context.Context, *SendMessageRequest) (*SendMessageResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SendMessage not implemented")
}

func (UnimplementedInterviewCoachServer) ExtractScores(context.Context, *ExtractScoresRequest) (*ExtractScoresResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ExtractScores not implemented")
}

func (UnimplementedInterviewCoachServer) RecordInterview(context.Context, *RecordInterviewRequest) (*RecordInterviewResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RecordInterview not implemented")
}

func (UnimplementedInterviewCoachServer) GetProfile(context.Context, *GetProfileRequest) (*ProfileResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetProfile not implemented")
}

func (UnimplementedInterviewCoachServer) GetInterviewBreakdown(context.Context, *InterviewBreakdownRequest) (*InterviewBreakdownResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetInterviewBreakdown not implemented")
}

// RegisterInterviewCoachServer registers srv on s.
func RegisterInterviewCoachServer(s grpc.ServiceRegistrar, srv InterviewCoachServer) {
	s.RegisterService(&InterviewCoach_ServiceDesc, srv)
}

func _InterviewCoach_StartInterview_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(StartInterviewRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InterviewCoachServer).StartInterview(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: InterviewCoach_StartInterview_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(InterviewCoachServer).StartInterview(ctx, req.(*StartInterviewRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InterviewCoach_SendMessage_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SendMessageRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InterviewCoachServer).SendMessage(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: InterviewCoach_SendMessage_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(InterviewCoachServer).SendMessage(ctx, req.(*SendMessageRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InterviewCoach_ExtractScores_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ExtractScoresRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InterviewCoachServer).ExtractScores(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: InterviewCoach_ExtractScores_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(InterviewCoachServer).ExtractScores(ctx, req.(*ExtractScoresRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InterviewCoach_RecordInterview_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(RecordInterviewRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InterviewCoachServer).RecordInterview(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: InterviewCoach_RecordInterview_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(InterviewCoachServer).RecordInterview(ctx, req.(*RecordInterviewRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InterviewCoach_GetProfile_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetProfileRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InterviewCoachServer).GetProfile(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: InterviewCoach_GetProfile_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(InterviewCoachServer).GetProfile(ctx, req.(*GetProfileRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _InterviewCoach_GetInterviewBreakdown_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(InterviewBreakdownRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(InterviewCoachServer).GetInterviewBreakdown(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: InterviewCoach_GetInterviewBreakdown_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(InterviewCoachServer).GetInterviewBreakdown(ctx, req.(*InterviewBreakdownRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// InterviewCoach_ServiceDesc is the grpc.ServiceDesc for the InterviewCoach service.
var InterviewCoach_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "interview.v1.InterviewCoach",
	HandlerType: (*InterviewCoachServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "StartInterview", Handler: _InterviewCoach_StartInterview_Handler},
		{MethodName: "SendMessage", Handler: _InterviewCoach_SendMessage_Handler},
		{MethodName: "ExtractScores", Handler: _InterviewCoach_ExtractScores_Handler},
		{MethodName: "RecordInterview", Handler: _InterviewCoach_RecordInterview_Handler},
		{MethodName: "GetProfile", Handler: _InterviewCoach_GetProfile_Handler},
		{MethodName: "GetInterviewBreakdown", Handler: _InterviewCoach_GetInterviewBreakdown_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "interview/v1/interview_coach",
}

// InterviewCoachClient is the client API for the InterviewCoach service.
type InterviewCoachClient interface {
	StartInterview(ctx context.Context, in *StartInterviewRequest, opts ...grpc.CallOption) (*StartInterviewResponse, error)
	SendMessage(ctx context.Context, in *SendMessageRequest, opts ...grpc.CallOption) (*SendMessageResponse, error)
	ExtractScores(ctx context.Context, in *ExtractScoresRequest, opts ...grpc.CallOption) (*ExtractScoresResponse, error)
	RecordInterview(ctx context.Context, in *RecordInterviewRequest, opts ...grpc.CallOption) (*RecordInterviewResponse, error)
	GetProfile(ctx context.Context, in *GetProfileRequest, opts ...grpc.CallOption) (*ProfileResponse, error)
	GetInterviewBreakdown(ctx context.Context, in *InterviewBreakdownRequest, opts ...grpc.CallOption) (*InterviewBreakdownResponse, error)
}

type interviewCoachClient struct {
	cc grpc.ClientConnInterface
}

func NewInterviewCoachClient(cc grpc.ClientConnInterface) InterviewCoachClient {
	return &interviewCoachClient{cc}
}

func (c *interviewCoachClient) invoke(ctx context.Context, method string, in, out any, opts []grpc.CallOption) error {
	callOpts := append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	return c.cc.Invoke(ctx, method, in, out, callOpts...)
}

func (c *interviewCoachClient) StartInterview(ctx context.Context, in *StartInterviewRequest, opts ...grpc.CallOption) (*StartInterviewResponse, error) {
	out := new(StartInterviewResponse)
	if err := c.invoke(ctx, InterviewCoach_StartInterview_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *interviewCoachClient) SendMessage(ctx context.Context, in *SendMessageRequest, opts ...grpc.CallOption) (*SendMessageResponse, error) {
	out := new(SendMessageResponse)
	if err := c.invoke(ctx, InterviewCoach_SendMessage_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *interviewCoachClient) ExtractScores(ctx context.Context, in *ExtractScoresRequest, opts ...grpc.CallOption) (*ExtractScoresResponse, error) {
	out := new(ExtractScoresResponse)
	if err := c.invoke(ctx, InterviewCoach_ExtractScores_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *interviewCoachClient) RecordInterview(ctx context.Context, in *RecordInterviewRequest, opts ...grpc.CallOption) (*RecordInterviewResponse, error) {
	out := new(RecordInterviewResponse)
	if err := c.invoke(ctx, InterviewCoach_RecordInterview_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *interviewCoachClient) GetProfile(ctx context.Context, in *GetProfileRequest, opts ...grpc.CallOption) (*ProfileResponse, error) {
	out := new(ProfileResponse)
	if err := c.invoke(ctx, InterviewCoach_GetProfile_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *interviewCoachClient) GetInterviewBreakdown(ctx context.Context, in *InterviewBreakdownRequest, opts ...grpc.CallOption) (*InterviewBreakdownResponse, error) {
	out := new(InterviewBreakdownResponse)
	if err := c.invoke(ctx, InterviewCoach_GetInterviewBreakdown_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}
