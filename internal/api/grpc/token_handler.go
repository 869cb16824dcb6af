package grpc

import (
	"context"

	pb "rentescrow-backend/api/gen/v1"
	"rentescrow-backend/internal/domain"
	"rentescrow-backend/internal/service"
)

type TokenHandler struct {
	pb.UnimplementedTokenServiceServer
	svc service.TokenService
}

func NewTokenHandler(svc service.TokenService) *TokenHandler {
	return &TokenHandler{svc: svc}
}

func (h *TokenHandler) RegisterCollection(ctx context.Context, req *pb.RegisterCollectionRequest) (*pb.Empty, error) {
	if err := h.svc.RegisterCollection(ctx, MapProtoCollectionToDomain(req.Collection)); err != nil {
		return nil, toStatus(err)
	}
	return &pb.Empty{}, nil
}

func (h *TokenHandler) Mint(ctx context.Context, req *pb.MintRequest) (*pb.Empty, error) {
	if err := h.svc.Mint(ctx, domain.Address(req.Collection), domain.Address(req.To), req.TokenId); err != nil {
		return nil, toStatus(err)
	}
	return &pb.Empty{}, nil
}

func (h *TokenHandler) Approve(ctx context.Context, req *pb.ApproveRequest) (*pb.Empty, error) {
	caller, err := CallerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := h.svc.Approve(ctx, caller, domain.Address(req.Collection), domain.Address(req.Spender), req.TokenId); err != nil {
		return nil, toStatus(err)
	}
	return &pb.Empty{}, nil
}

func (h *TokenHandler) TransferFrom(ctx context.Context, req *pb.TransferFromRequest) (*pb.Empty, error) {
	caller, err := CallerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	err = h.svc.TransferFrom(ctx, caller, domain.Address(req.Collection), domain.Address(req.From), domain.Address(req.To), req.TokenId)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.Empty{}, nil
}

func (h *TokenHandler) OwnerOf(ctx context.Context, req *pb.TokenRequest) (*pb.OwnerOfResponse, error) {
	owner, err := h.svc.OwnerOf(ctx, domain.Address(req.Collection), req.TokenId)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.OwnerOfResponse{Owner: string(owner)}, nil
}

func (h *TokenHandler) TokenURI(ctx context.Context, req *pb.TokenRequest) (*pb.TokenURIResponse, error) {
	uri, err := h.svc.TokenURI(ctx, domain.Address(req.Collection), req.TokenId)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.TokenURIResponse{Uri: uri}, nil
}
