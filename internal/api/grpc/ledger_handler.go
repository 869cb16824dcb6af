package grpc

import (
	"context"

	pb "rentescrow-backend/api/gen/v1"
	"rentescrow-backend/internal/domain"
	"rentescrow-backend/internal/service"
)

type LedgerHandler struct {
	pb.UnimplementedLedgerServiceServer
	svc service.LedgerService
}

func NewLedgerHandler(svc service.LedgerService) *LedgerHandler {
	return &LedgerHandler{svc: svc}
}

func (h *LedgerHandler) Fund(ctx context.Context, req *pb.FundRequest) (*pb.AccountResponse, error) {
	acct, err := h.svc.Fund(ctx, domain.Address(req.Address), req.Amount)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.AccountResponse{Account: MapDomainAccountToProto(acct)}, nil
}

func (h *LedgerHandler) GetBalance(ctx context.Context, req *pb.AccountRequest) (*pb.AccountResponse, error) {
	acct, err := h.svc.GetAccount(ctx, domain.Address(req.Address))
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.AccountResponse{Account: MapDomainAccountToProto(acct)}, nil
}

// GetTransfers lists the caller's own transfers.
func (h *LedgerHandler) GetTransfers(ctx context.Context, req *pb.GetTransfersRequest) (*pb.GetTransfersResponse, error) {
	caller, err := CallerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	transfers, count, err := h.svc.GetTransfers(ctx, caller, req.Page, req.PageSize)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.GetTransfersResponse{Transfers: MapDomainTransfersToProto(transfers), Count: count}, nil
}

func (h *LedgerHandler) SetRejectsPayments(ctx context.Context, req *pb.SetRejectsPaymentsRequest) (*pb.Empty, error) {
	caller, err := CallerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := h.svc.SetRejectsPayments(ctx, caller, req.Rejects); err != nil {
		return nil, toStatus(err)
	}
	return &pb.Empty{}, nil
}
