package grpc

import (
	"context"

	pb "rentescrow-backend/api/gen/v1"
	"rentescrow-backend/internal/domain"
	"rentescrow-backend/internal/service"
)

type RentHandler struct {
	pb.UnimplementedRentServiceServer
	svc service.RentService
}

func NewRentHandler(svc service.RentService) *RentHandler {
	return &RentHandler{svc: svc}
}

func (h *RentHandler) Deposit(ctx context.Context, req *pb.DepositRequest) (*pb.Empty, error) {
	caller, err := CallerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	item := MapProtoItemKeyToDomain(req.Item)
	if req.RestrictedTo == "" {
		err = h.svc.Deposit(ctx, caller, item, req.Deadline, req.WeeklyFee)
	} else {
		err = h.svc.DepositOTC(ctx, caller, item, req.Deadline, req.WeeklyFee, domain.Address(req.RestrictedTo))
	}
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.Empty{}, nil
}

func (h *RentHandler) DepositDutchAuction(ctx context.Context, req *pb.DepositDutchAuctionRequest) (*pb.Empty, error) {
	caller, err := CallerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	err = h.svc.DepositDutchAuction(ctx, caller, MapProtoItemKeyToDomain(req.Item), req.Deadline, service.DutchAuctionParams{
		AuctionDeadline:  req.AuctionDeadline,
		MinWeeklyPrice:   req.MinWeeklyPrice,
		StartWeeklyPrice: req.StartWeeklyPrice,
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.Empty{}, nil
}

func (h *RentHandler) DepositEnglishAuction(ctx context.Context, req *pb.DepositEnglishAuctionRequest) (*pb.Empty, error) {
	caller, err := CallerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	err = h.svc.DepositEnglishAuction(ctx, caller, MapProtoItemKeyToDomain(req.Item), req.Deadline, service.EnglishAuctionParams{
		AuctionDeadline: req.AuctionDeadline,
		AutoAcceptPrice: req.AutoAcceptPrice,
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.Empty{}, nil
}

func (h *RentHandler) Delegate(ctx context.Context, req *pb.DelegateRequest) (*pb.Empty, error) {
	caller, err := CallerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := h.svc.Delegate(ctx, caller, MapProtoItemKeyToDomain(req.Item), domain.Address(req.To), req.Deadline); err != nil {
		return nil, toStatus(err)
	}
	return &pb.Empty{}, nil
}

func (h *RentHandler) Withdraw(ctx context.Context, req *pb.ItemRequest) (*pb.Empty, error) {
	caller, err := CallerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := h.svc.Withdraw(ctx, caller, MapProtoItemKeyToDomain(req.Item)); err != nil {
		return nil, toStatus(err)
	}
	return &pb.Empty{}, nil
}

func (h *RentHandler) StartRent(ctx context.Context, req *pb.PaymentRequest) (*pb.RentResponse, error) {
	caller, err := CallerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	rec, err := h.svc.StartRent(ctx, caller, MapProtoItemKeyToDomain(req.Item), req.Value)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.RentResponse{Record: MapDomainRentRecordToProto(rec)}, nil
}

func (h *RentHandler) ExtendRent(ctx context.Context, req *pb.PaymentRequest) (*pb.RentResponse, error) {
	caller, err := CallerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	rec, err := h.svc.ExtendRent(ctx, caller, MapProtoItemKeyToDomain(req.Item), req.Value)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.RentResponse{Record: MapDomainRentRecordToProto(rec)}, nil
}

func (h *RentHandler) EndRent(ctx context.Context, req *pb.PaymentRequest) (*pb.EndRentResponse, error) {
	caller, err := CallerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	res, err := h.svc.EndRent(ctx, caller, MapProtoItemKeyToDomain(req.Item), req.Value)
	if err != nil {
		return nil, toStatus(err)
	}
	return MapEndRentResultToProto(res), nil
}

func (h *RentHandler) NewBid(ctx context.Context, req *pb.BidRequest) (*pb.BidResponse, error) {
	caller, err := CallerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	res, err := h.svc.NewBid(ctx, caller, MapProtoItemKeyToDomain(req.Item), req.WeeklyPrice, req.Value)
	if err != nil {
		return nil, toStatus(err)
	}
	return MapBidResultToProto(res), nil
}

func (h *RentHandler) EndAuction(ctx context.Context, req *pb.ItemRequest) (*pb.RentResponse, error) {
	caller, err := CallerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	rec, err := h.svc.EndAuction(ctx, caller, MapProtoItemKeyToDomain(req.Item))
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.RentResponse{Record: MapDomainRentRecordToProto(rec)}, nil
}

func (h *RentHandler) GetItem(ctx context.Context, req *pb.ItemRequest) (*pb.ItemView, error) {
	view, err := h.svc.DescribeItem(ctx, MapProtoItemKeyToDomain(req.Item))
	if err != nil {
		return nil, toStatus(err)
	}
	return MapItemViewToProto(view), nil
}

func (h *RentHandler) ListRented(ctx context.Context, _ *pb.Empty) (*pb.ListRentedResponse, error) {
	recs, err := h.svc.ListRented(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ListRentedResponse{Records: MapDomainRentRecordsToProto(recs)}, nil
}

func (h *RentHandler) ListEvents(ctx context.Context, req *pb.ListEventsRequest) (*pb.ListEventsResponse, error) {
	events, err := h.svc.ListEvents(ctx, req.AfterSeq, req.Limit)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ListEventsResponse{Events: MapDomainEventsToProto(events)}, nil
}
