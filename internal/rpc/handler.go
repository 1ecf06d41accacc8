package rpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/lifeos/governance/internal/capacity"
	"github.com/lifeos/governance/internal/intake"
)

// grpcHandler adapts Service to GovernanceServer.
type grpcHandler struct {
	svc *Service
}

func (h grpcHandler) Govern(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var doc intake.Document
	if err := fromStruct(req, &doc, true); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	r, err := h.svc.Govern(ctx, doc)
	if err != nil {
		return nil, toStatus(err)
	}
	out, err := toStruct(r)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return out, nil
}

func (h grpcHandler) Classify(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var a capacity.Assessment
	if err := fromStruct(req, &a, true); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	c, err := h.svc.Classify(ctx, a)
	if err != nil {
		return nil, toStatus(err)
	}
	out, err := toStruct(c)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return out, nil
}

func toStatus(err error) error {
	switch {
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
