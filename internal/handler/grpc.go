package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"

	"github.com/MikhailRaia/bookmarks/internal/model"
	"github.com/MikhailRaia/bookmarks/internal/proto"
	"github.com/MikhailRaia/bookmarks/internal/storage"
	"github.com/MikhailRaia/bookmarks/internal/validate"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type BookmarkGRPCServer struct {
	proto.UnimplementedBookmarkServiceServer
	bookmarkService BookmarkService
	validator       *validate.Validator
}

func NewBookmarkGRPCServer(bookmarkService BookmarkService, validator *validate.Validator) *BookmarkGRPCServer {
	return &BookmarkGRPCServer{
		bookmarkService: bookmarkService,
		validator:       validator,
	}
}

func (s *BookmarkGRPCServer) ListBookmarks(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	bookmarks, err := s.bookmarkService.List(ctx)
	if err != nil {
		return nil, grpcError(err)
	}

	values := make([]interface{}, 0, len(bookmarks))
	for _, b := range bookmarks {
		values = append(values, bookmarkFields(b))
	}

	list, err := structpb.NewList(values)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to encode bookmarks: %v", err)
	}

	return list, nil
}

func (s *BookmarkGRPCServer) GetBookmark(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	bookmark, err := s.bookmarkService.Get(ctx, req.GetValue())
	if err != nil {
		return nil, grpcError(err)
	}

	return toStruct(bookmark)
}

func (s *BookmarkGRPCServer) CreateBookmark(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	body, err := json.Marshal(req.AsMap())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, validate.MsgInvalidBody)
	}

	createReq, err := s.validator.Decode(bytes.NewReader(body))
	if err != nil {
		return nil, grpcError(err)
	}

	bookmark, err := s.bookmarkService.Create(ctx, createReq)
	if err != nil {
		return nil, grpcError(err)
	}

	return toStruct(bookmark)
}

func (s *BookmarkGRPCServer) DeleteBookmark(ctx context.Context, req *wrapperspb.StringValue) (*emptypb.Empty, error) {
	if err := s.bookmarkService.Delete(ctx, req.GetValue()); err != nil {
		return nil, grpcError(err)
	}

	return &emptypb.Empty{}, nil
}

// grpcError mirrors writeError for the gRPC transport.
func grpcError(err error) error {
	var vErr *validate.ValidationError

	switch {
	case errors.As(err, &vErr):
		return status.Error(codes.InvalidArgument, vErr.Message)
	case errors.Is(err, storage.ErrNotFound):
		return status.Error(codes.NotFound, MsgNotFound)
	default:
		log.Error().Err(err).Msg("gRPC request failed")
		return status.Error(codes.Internal, MsgInternal)
	}
}

func bookmarkFields(b model.Bookmark) map[string]interface{} {
	return map[string]interface{}{
		"id":          b.ID,
		"title":       b.Title,
		"url":         b.URL,
		"description": b.Description,
		"rating":      b.Rating,
	}
}

func toStruct(b model.Bookmark) (*structpb.Struct, error) {
	st, err := structpb.NewStruct(bookmarkFields(b))
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to encode bookmark: %v", err)
	}
	return st, nil
}
