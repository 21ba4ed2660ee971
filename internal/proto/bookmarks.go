// Package proto describes the bookmarks gRPC service. Requests and responses
// are protobuf well-known types, so the default codec handles them without
// generated message code.
package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const ServiceName = "bookmarks.BookmarkService"

const (
	ListBookmarksMethod  = "/" + ServiceName + "/ListBookmarks"
	GetBookmarkMethod    = "/" + ServiceName + "/GetBookmark"
	CreateBookmarkMethod = "/" + ServiceName + "/CreateBookmark"
	DeleteBookmarkMethod = "/" + ServiceName + "/DeleteBookmark"
)

// BookmarkServiceServer is the server API for BookmarkService service.
type BookmarkServiceServer interface {
	ListBookmarks(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
	GetBookmark(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	CreateBookmark(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteBookmark(context.Context, *wrapperspb.StringValue) (*emptypb.Empty, error)
}

// UnimplementedBookmarkServiceServer can be embedded to have forward compatible implementations.
type UnimplementedBookmarkServiceServer struct{}

func (UnimplementedBookmarkServiceServer) ListBookmarks(context.Context, *emptypb.Empty) (*structpb.ListValue, error) {
	return nil, status.Error(codes.Unimplemented, "method ListBookmarks not implemented")
}
func (UnimplementedBookmarkServiceServer) GetBookmark(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method GetBookmark not implemented")
}
func (UnimplementedBookmarkServiceServer) CreateBookmark(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateBookmark not implemented")
}
func (UnimplementedBookmarkServiceServer) DeleteBookmark(context.Context, *wrapperspb.StringValue) (*emptypb.Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteBookmark not implemented")
}

func RegisterBookmarkServiceServer(s grpc.ServiceRegistrar, srv BookmarkServiceServer) {
	s.RegisterService(&bookmarkServiceDesc, srv)
}

func listBookmarksHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BookmarkServiceServer).ListBookmarks(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ListBookmarksMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BookmarkServiceServer).ListBookmarks(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func getBookmarkHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BookmarkServiceServer).GetBookmark(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GetBookmarkMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BookmarkServiceServer).GetBookmark(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func createBookmarkHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BookmarkServiceServer).CreateBookmark(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CreateBookmarkMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BookmarkServiceServer).CreateBookmark(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func deleteBookmarkHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BookmarkServiceServer).DeleteBookmark(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DeleteBookmarkMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BookmarkServiceServer).DeleteBookmark(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

var bookmarkServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*BookmarkServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListBookmarks",
			Handler:    listBookmarksHandler,
		},
		{
			MethodName: "GetBookmark",
			Handler:    getBookmarkHandler,
		},
		{
			MethodName: "CreateBookmark",
			Handler:    createBookmarkHandler,
		},
		{
			MethodName: "DeleteBookmark",
			Handler:    deleteBookmarkHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "bookmarks.proto",
}

// BookmarkServiceClient is the client API for BookmarkService service.
type BookmarkServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewBookmarkServiceClient(cc grpc.ClientConnInterface) *BookmarkServiceClient {
	return &BookmarkServiceClient{cc: cc}
}

func (c *BookmarkServiceClient) ListBookmarks(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, ListBookmarksMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *BookmarkServiceClient) GetBookmark(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, GetBookmarkMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *BookmarkServiceClient) CreateBookmark(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, CreateBookmarkMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *BookmarkServiceClient) DeleteBookmark(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, DeleteBookmarkMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
