package grpc

import (
	"slices"

	pb "rentescrow-backend/api/gen/v1"
	"rentescrow-backend/internal/domain"
	"rentescrow-backend/internal/service"
)

func MapProtoItemKeyToDomain(k *pb.ItemKey) domain.ItemKey {
	return domain.ItemKey{Collection: domain.Address(k.GetCollection()), TokenID: k.GetTokenId()}
}

func MapDomainItemKeyToProto(k domain.ItemKey) *pb.ItemKey {
	return &pb.ItemKey{Collection: string(k.Collection), TokenId: k.TokenID}
}

func MapDomainRentRecordToProto(r *domain.RentRecord) *pb.RentRecord {
	if r == nil {
		return nil
	}
	return &pb.RentRecord{
		Item:        MapDomainItemKeyToProto(r.Item),
		Owner:       string(r.Owner),
		Deadline:    r.Deadline,
		WeeklyFee:   r.WeeklyFee,
		AuctionKind: string(r.AuctionKind),
		Rentee:      string(r.Rentee),
		StartTime:   r.StartTime,
		PaidFee:     r.PaidFee,
	}
}

func MapDomainRentRecordsToProto(recs []domain.RentRecord) []*pb.RentRecord {
	out := make([]*pb.RentRecord, 0, len(recs))
	for i := range recs {
		out = append(out, MapDomainRentRecordToProto(&recs[i]))
	}
	return out
}

func MapDomainDutchAuctionToProto(a *domain.DutchAuction) *pb.DutchAuction {
	if a == nil {
		return nil
	}
	return &pb.DutchAuction{
		Item:             MapDomainItemKeyToProto(a.Item),
		AuctionDeadline:  a.AuctionDeadline,
		MinWeeklyPrice:   a.MinWeeklyPrice,
		StartWeeklyPrice: a.StartWeeklyPrice,
		AuctionStart:     a.AuctionStart,
	}
}

func MapDomainEnglishAuctionToProto(a *domain.EnglishAuction) *pb.EnglishAuction {
	if a == nil {
		return nil
	}
	return &pb.EnglishAuction{
		Item:            MapDomainItemKeyToProto(a.Item),
		AutoAcceptPrice: a.AutoAcceptPrice,
		AuctionDeadline: a.AuctionDeadline,
		HighestBid:      a.HighestBid,
		HighestBidder:   string(a.HighestBidder),
		Collateral:      a.Collateral,
	}
}

func MapDomainDelegationToProto(d *domain.Delegation) *pb.Delegation {
	if d == nil {
		return nil
	}
	return &pb.Delegation{
		Registry:      string(d.Registry),
		TokenId:       d.TokenID,
		RealOwner:     string(d.RealOwner),
		AccessControl: string(d.AccessControl),
	}
}

func MapDomainAccountToProto(a *domain.Account) *pb.Account {
	if a == nil {
		return nil
	}
	return &pb.Account{
		Address:         string(a.Address),
		Balance:         a.Balance,
		RejectsPayments: a.RejectsPayments,
	}
}

func MapDomainTransferToProto(t *domain.Transfer) *pb.Transfer {
	out := &pb.Transfer{
		Id:          t.ID,
		From:        string(t.From),
		To:          string(t.To),
		Amount:      t.Amount,
		Type:        string(t.Type),
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
	}
	if t.Item != nil {
		out.Item = MapDomainItemKeyToProto(*t.Item)
	}
	return out
}

func MapDomainTransfersToProto(transfers []domain.Transfer) []*pb.Transfer {
	out := make([]*pb.Transfer, 0, len(transfers))
	for i := range transfers {
		out = append(out, MapDomainTransferToProto(&transfers[i]))
	}
	return out
}

// MapDomainEventToProto flattens the attribute map into key order.
func MapDomainEventToProto(ev *domain.Event) *pb.Event {
	out := &pb.Event{
		Seq:       ev.Seq,
		Id:        ev.ID,
		Type:      string(ev.Type),
		Item:      MapDomainItemKeyToProto(ev.Item),
		Actor:     string(ev.Actor),
		CreatedAt: ev.CreatedAt,
	}
	keys := make([]string, 0, len(ev.Attributes))
	for k := range ev.Attributes {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		out.Attributes = append(out.Attributes, &pb.Attribute{Key: k, Value: ev.Attributes[k]})
	}
	return out
}

func MapDomainEventsToProto(events []domain.Event) []*pb.Event {
	out := make([]*pb.Event, 0, len(events))
	for i := range events {
		out = append(out, MapDomainEventToProto(&events[i]))
	}
	return out
}

func MapProtoCollectionToDomain(c *pb.Collection) *domain.Collection {
	return &domain.Collection{
		Address:    domain.Address(c.GetAddress()),
		Name:       c.GetName(),
		Symbol:     c.GetSymbol(),
		BaseURI:    c.GetBaseUri(),
		Underlying: domain.Address(c.GetUnderlying()),
	}
}

func MapEndRentResultToProto(r *service.EndRentResult) *pb.EndRentResponse {
	return &pb.EndRentResponse{
		Mode:      string(r.Mode),
		KeeperFee: r.KeeperFee,
		Refund:    r.Refund,
		Record:    MapDomainRentRecordToProto(r.Record),
	}
}

func MapBidResultToProto(r *service.BidResult) *pb.BidResponse {
	return &pb.BidResponse{
		Awarded: r.Awarded,
		Record:  MapDomainRentRecordToProto(r.Record),
		Auction: MapDomainEnglishAuctionToProto(r.Auction),
	}
}

func MapItemViewToProto(v *service.ItemView) *pb.ItemView {
	return &pb.ItemView{
		Record:            MapDomainRentRecordToProto(v.Record),
		IsRented:          v.IsRented,
		EndDate:           v.EndDate,
		MaxPayableFee:     v.MaxPayableFee,
		Payback:           v.Payback,
		Delegation:        MapDomainDelegationToProto(v.Delegation),
		DutchAuction:      MapDomainDutchAuctionToProto(v.DutchAuction),
		CurrentDutchPrice: v.CurrentDutchPrice,
		EnglishAuction:    MapDomainEnglishAuctionToProto(v.EnglishAuction),
	}
}
