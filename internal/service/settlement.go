package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"rentescrow-backend/internal/clock"
	"rentescrow-backend/internal/delegation"
	"rentescrow-backend/internal/domain"
	"rentescrow-backend/internal/logger"
	"rentescrow-backend/internal/repository"
	"rentescrow-backend/internal/token"
)

// Recorder observes settlement outcomes. internal/metrics implements it.
type Recorder interface {
	ObserveOperation(op string, err error, elapsed time.Duration)
	ObservePayout(kind domain.TransferType, amount int64)
}

type nopRecorder struct{}

func (nopRecorder) ObserveOperation(string, error, time.Duration) {}
func (nopRecorder) ObservePayout(domain.TransferType, int64)      {}

type rentService struct {
	store      repository.Store
	clock      clock.Clock
	registries *delegation.Factory
	settings   Settings
	recorder   Recorder
}

func NewRentService(store repository.Store, clk clock.Clock, registries *delegation.Factory, settings Settings, recorder Recorder) RentService {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	if registries == nil {
		registries = delegation.NewFactory()
	}
	return &rentService{
		store:      store,
		clock:      clk,
		registries: registries,
		settings:   settings,
		recorder:   recorder,
	}
}

// operation is one atomic settlement call. Everything it touches goes
// through tx, so a failure anywhere discards state changes, custody moves
// and payouts together.
type operation struct {
	ctx      context.Context
	tx       repository.Tx
	now      int64
	sender   domain.Address
	settings Settings
	factory  *delegation.Factory
	payouts  []payout
}

type payout struct {
	kind   domain.TransferType
	amount int64
}

func (s *rentService) execute(ctx context.Context, name string, sender domain.Address, item domain.ItemKey, fn func(op *operation) error) error {
	start := time.Now()
	logger.EnterMethod(name, "sender", sender, "item", item.String())

	var payouts []payout
	err := repository.WithTx(ctx, s.store, func(tx repository.Tx) error {
		op := &operation{
			ctx:      ctx,
			tx:       tx,
			now:      s.clock.Now(),
			sender:   sender,
			settings: s.settings,
			factory:  s.registries,
		}
		if err := fn(op); err != nil {
			return err
		}
		payouts = op.payouts
		return nil
	})

	s.recorder.ObserveOperation(name, err, time.Since(start))
	if err != nil {
		if code := domain.ErrorCode(err); code != "Internal" {
			logger.ExitMethodRejected(name, code, "sender", sender, "item", item.String(), "error", err)
		} else {
			logger.ExitMethodWithError(name, err, "sender", sender, "item", item.String())
		}
		return err
	}
	for _, p := range payouts {
		s.recorder.ObservePayout(p.kind, p.amount)
	}
	logger.ExitMethod(name, "sender", sender, "item", item.String())
	return nil
}

// view runs a read-only function against a transaction that is always
// rolled back.
func (s *rentService) view(ctx context.Context, fn func(tx repository.Tx, now int64) error) error {
	tx, err := s.store.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	return fn(tx, s.clock.Now())
}

func (op *operation) engine() domain.Address {
	return op.settings.EngineAddress
}

func (op *operation) feePercent() int64 {
	return op.settings.KeeperFeePercent
}

// Records

func (op *operation) rent(item domain.ItemKey) (*domain.RentRecord, error) {
	rec, err := op.tx.GetRent(op.ctx, item)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		rec = &domain.RentRecord{Item: item}
	}
	return rec, nil
}

// listed loads the record and fails with NotRentable when nothing is deposited.
func (op *operation) listed(item domain.ItemKey) (*domain.RentRecord, error) {
	rec, err := op.rent(item)
	if err != nil {
		return nil, err
	}
	if !rec.IsListed() {
		return nil, fmt.Errorf("item %s is not deposited: %w", item, domain.ErrNotRentable)
	}
	return rec, nil
}

func (op *operation) emit(typ domain.EventType, item domain.ItemKey, attrs map[string]string) error {
	return op.tx.AppendEvent(op.ctx, domain.NewEvent(typ, item, op.sender, op.now, attrs))
}

// Funds

func (op *operation) account(addr domain.Address) (*domain.Account, error) {
	acct, err := op.tx.GetAccount(op.ctx, addr)
	if err != nil {
		return nil, err
	}
	if acct == nil {
		acct = &domain.Account{Address: addr}
	}
	return acct, nil
}

func (op *operation) transfer(from, to domain.Address, amount int64, typ domain.TransferType, item domain.ItemKey, desc string) error {
	if amount == 0 {
		return nil
	}
	if amount < 0 {
		return fmt.Errorf("negative transfer %d: %w", amount, domain.ErrInvalidArgument)
	}
	if to.IsZero() {
		return fmt.Errorf("transfer to zero address: %w", domain.ErrInvalidArgument)
	}
	src, err := op.account(from)
	if err != nil {
		return err
	}
	if src.Balance < amount {
		return fmt.Errorf("%s holds %d, needs %d: %w", from, src.Balance, amount, domain.ErrInsufficientFunds)
	}
	dst, err := op.account(to)
	if err != nil {
		return err
	}
	if dst.RejectsPayments {
		return fmt.Errorf("%s rejected %d: %w", to, amount, domain.ErrPaymentRejected)
	}
	if from != to {
		src.Balance -= amount
		dst.Balance += amount
		if err := op.tx.SaveAccount(op.ctx, src); err != nil {
			return err
		}
		if err := op.tx.SaveAccount(op.ctx, dst); err != nil {
			return err
		}
	}
	key := item
	return op.tx.CreateTransfer(op.ctx, &domain.Transfer{
		ID:          uuid.NewString(),
		From:        from,
		To:          to,
		Amount:      amount,
		Type:        typ,
		Item:        &key,
		Description: desc,
		CreatedAt:   op.now,
	})
}

// collect moves the value sent with the call into engine escrow.
func (op *operation) collect(value int64, typ domain.TransferType, item domain.ItemKey) error {
	return op.transfer(op.sender, op.engine(), value, typ, item, "value sent with call")
}

// pay moves escrowed value out of the engine.
func (op *operation) pay(to domain.Address, amount int64, typ domain.TransferType, item domain.ItemKey, desc string) error {
	if err := op.transfer(op.engine(), to, amount, typ, item, desc); err != nil {
		return err
	}
	if amount > 0 {
		op.payouts = append(op.payouts, payout{kind: typ, amount: amount})
	}
	return nil
}

// Custody

func (op *operation) items(item domain.ItemKey) *token.Ledger {
	return token.Open(op.tx, item.Collection)
}

// takeCustody pulls the item from the sender; the engine must be approved.
func (op *operation) takeCustody(item domain.ItemKey) error {
	if err := op.items(item).TransferFrom(op.ctx, op.engine(), op.sender, op.engine(), item.TokenID); err != nil {
		return fmt.Errorf("take custody of %s: %w", item, err)
	}
	return nil
}

func (op *operation) returnToOwner(rec *domain.RentRecord) error {
	if err := op.items(rec.Item).TransferFrom(op.ctx, op.engine(), op.engine(), rec.Owner, rec.Item.TokenID); err != nil {
		return fmt.Errorf("return %s to owner: %w", rec.Item, err)
	}
	return nil
}

// lend hands the item to the collection's delegation registry, which mints
// the proxy token to the rentee.
func (op *operation) lend(rec *domain.RentRecord) error {
	reg, err := op.factory.Open(op.ctx, op.tx, rec.Item.Collection, op.now)
	if err != nil {
		return err
	}
	if err := op.items(rec.Item).Approve(op.ctx, op.engine(), reg.Address(), rec.Item.TokenID); err != nil {
		return fmt.Errorf("approve registry for %s: %w", rec.Item, err)
	}
	return reg.Deposit(op.ctx, op.engine(), rec.Owner, rec.Rentee, rec.Item.TokenID)
}

// reclaim pulls the item back from the delegation registry into engine custody.
func (op *operation) reclaim(rec *domain.RentRecord) error {
	reg, err := op.factory.Lookup(op.ctx, op.tx, rec.Item.Collection, op.now)
	if err != nil {
		return err
	}
	if reg == nil {
		return fmt.Errorf("no delegation registry for %s: %w", rec.Item.Collection, domain.ErrNotFound)
	}
	return reg.Withdraw(op.ctx, op.engine(), rec.Item.TokenID)
}

// beginRent records the rental, credits the owner with ownerShare of the
// escrowed value and lends the item to the rentee.
func (op *operation) beginRent(rec *domain.RentRecord, rentee domain.Address, paid, ownerShare int64) error {
	rec.Rentee = rentee
	rec.PaidFee = paid
	rec.StartTime = op.now
	if err := op.tx.SaveRent(op.ctx, rec); err != nil {
		return err
	}
	if err := op.pay(rec.Owner, ownerShare, domain.TransferTypeOwnerCredit, rec.Item, "rental income"); err != nil {
		return err
	}
	if err := op.lend(rec); err != nil {
		return err
	}
	return op.emit(domain.EventRentStarted, rec.Item, map[string]string{
		"rentee":     string(rentee),
		"paid_fee":   itoa(paid),
		"weekly_fee": itoa(rec.WeeklyFee),
		"end_date":   itoa(rec.EndDate()),
	})
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}
