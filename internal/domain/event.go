package domain

import "github.com/google/uuid"

type EventType string

const (
	EventListingCreated    EventType = "LISTING_CREATED"
	EventListingWithdrawn  EventType = "LISTING_WITHDRAWN"
	EventRentStarted       EventType = "RENT_STARTED"
	EventRentExtended      EventType = "RENT_EXTENDED"
	EventRentEnded         EventType = "RENT_ENDED"
	EventDelegationStarted EventType = "DELEGATION_STARTED"
	EventDelegationEnded   EventType = "DELEGATION_ENDED"
	EventAuctionStarted    EventType = "AUCTION_STARTED"
	EventBidPlaced         EventType = "BID_PLACED"
)

type Event struct {
	Seq        int64             `json:"seq"`
	ID         string            `json:"id"`
	Type       EventType         `json:"type"`
	Item       ItemKey           `json:"item"`
	Actor      Address           `json:"actor"`
	Attributes map[string]string `json:"attributes,omitempty"`
	CreatedAt  int64             `json:"created_at"`
}

func NewEvent(typ EventType, item ItemKey, actor Address, now int64, attrs map[string]string) *Event {
	return &Event{
		ID:         uuid.NewString(),
		Type:       typ,
		Item:       item,
		Actor:      actor,
		Attributes: attrs,
		CreatedAt:  now,
	}
}
