// Package memory keeps the escrow state in process memory. A transaction
// holds the store lock and writes in place; it journals the prior value of
// every row it touches and the length of each log, and Rollback restores
// them.
package memory

import (
	"context"
	"errors"
	"maps"
	"sort"
	"sync"

	"rentescrow-backend/internal/domain"
	"rentescrow-backend/internal/repository"
)

var ErrTxDone = errors.New("transaction already committed or rolled back")

type tokenKey struct {
	collection domain.Address
	tokenID    int64
}

// prior is a row as it was before the running transaction first wrote it.
type prior[V any] struct {
	value   V
	present bool
}

// table is a keyed row set with an undo journal for the running transaction.
type table[K comparable, V any] struct {
	rows map[K]V
	undo map[K]prior[V]
}

func newTable[K comparable, V any]() *table[K, V] {
	return &table[K, V]{rows: make(map[K]V), undo: make(map[K]prior[V])}
}

func (tb *table[K, V]) get(k K) (V, bool) {
	v, ok := tb.rows[k]
	return v, ok
}

func (tb *table[K, V]) put(k K, v V) {
	tb.remember(k)
	tb.rows[k] = v
}

func (tb *table[K, V]) del(k K) {
	tb.remember(k)
	delete(tb.rows, k)
}

func (tb *table[K, V]) remember(k K) {
	if _, seen := tb.undo[k]; seen {
		return
	}
	v, ok := tb.rows[k]
	tb.undo[k] = prior[V]{value: v, present: ok}
}

func (tb *table[K, V]) commit() {
	clear(tb.undo)
}

func (tb *table[K, V]) rollback() {
	for k, p := range tb.undo {
		if p.present {
			tb.rows[k] = p.value
		} else {
			delete(tb.rows, k)
		}
	}
	clear(tb.undo)
}

type state struct {
	rents       *table[domain.ItemKey, domain.RentRecord]
	dutch       *table[domain.ItemKey, domain.DutchAuction]
	english     *table[domain.ItemKey, domain.EnglishAuction]
	registries  *table[domain.Address, domain.DelegationRegistry]
	delegations *table[tokenKey, domain.Delegation]
	collections *table[domain.Address, domain.Collection]
	tokens      *table[tokenKey, domain.Token]
	accounts    *table[domain.Address, domain.Account]
	// transfers and events are append-only.
	transfers []domain.Transfer
	events    []domain.Event
	nextSeq   int64
}

func newState() *state {
	return &state{
		rents:       newTable[domain.ItemKey, domain.RentRecord](),
		dutch:       newTable[domain.ItemKey, domain.DutchAuction](),
		english:     newTable[domain.ItemKey, domain.EnglishAuction](),
		registries:  newTable[domain.Address, domain.DelegationRegistry](),
		delegations: newTable[tokenKey, domain.Delegation](),
		collections: newTable[domain.Address, domain.Collection](),
		tokens:      newTable[tokenKey, domain.Token](),
		accounts:    newTable[domain.Address, domain.Account](),
		nextSeq:     1,
	}
}

// mark is where the logs stood when a transaction began.
type mark struct {
	transfers int
	events    int
	nextSeq   int64
}

func (s *state) commit() {
	s.rents.commit()
	s.dutch.commit()
	s.english.commit()
	s.registries.commit()
	s.delegations.commit()
	s.collections.commit()
	s.tokens.commit()
	s.accounts.commit()
}

func (s *state) rollback(m mark) {
	s.rents.rollback()
	s.dutch.rollback()
	s.english.rollback()
	s.registries.rollback()
	s.delegations.rollback()
	s.collections.rollback()
	s.tokens.rollback()
	s.accounts.rollback()
	clear(s.transfers[m.transfers:])
	s.transfers = s.transfers[:m.transfers]
	clear(s.events[m.events:])
	s.events = s.events[:m.events]
	s.nextSeq = m.nextSeq
}

type Store struct {
	mu    sync.Mutex
	state *state
}

func NewStore() *Store {
	return &Store{state: newState()}
}

func (s *Store) Begin(ctx context.Context) (repository.Tx, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	st := s.state
	return &tx{store: s, st: st, mark: mark{
		transfers: len(st.transfers),
		events:    len(st.events),
		nextSeq:   st.nextSeq,
	}}, nil
}

type tx struct {
	store *Store
	st    *state
	mark  mark
	done  bool
}

func (t *tx) Commit() error {
	if t.done {
		return ErrTxDone
	}
	t.done = true
	t.st.commit()
	t.store.mu.Unlock()
	return nil
}

func (t *tx) Rollback() error {
	if t.done {
		return ErrTxDone
	}
	t.done = true
	t.st.rollback(t.mark)
	t.store.mu.Unlock()
	return nil
}

// Rent records

func (t *tx) GetRent(_ context.Context, item domain.ItemKey) (*domain.RentRecord, error) {
	rec, ok := t.st.rents.get(item)
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (t *tx) SaveRent(_ context.Context, rec *domain.RentRecord) error {
	t.st.rents.put(rec.Item, *rec)
	return nil
}

func (t *tx) DeleteRent(_ context.Context, item domain.ItemKey) error {
	t.st.rents.del(item)
	return nil
}

func (t *tx) ListRented(_ context.Context) ([]domain.RentRecord, error) {
	var out []domain.RentRecord
	for _, rec := range t.st.rents.rows {
		if rec.IsRented() {
			out = append(out, rec)
		}
	}
	sortRecords(out)
	return out, nil
}

func (t *tx) ListByOwner(_ context.Context, owner domain.Address) ([]domain.RentRecord, error) {
	var out []domain.RentRecord
	for _, rec := range t.st.rents.rows {
		if rec.Owner == owner {
			out = append(out, rec)
		}
	}
	sortRecords(out)
	return out, nil
}

func sortRecords(recs []domain.RentRecord) {
	sort.Slice(recs, func(i, j int) bool {
		return lessItem(recs[i].Item, recs[j].Item)
	})
}

func lessItem(a, b domain.ItemKey) bool {
	if a.Collection != b.Collection {
		return a.Collection < b.Collection
	}
	return a.TokenID < b.TokenID
}

// Auctions

func (t *tx) GetDutchAuction(_ context.Context, item domain.ItemKey) (*domain.DutchAuction, error) {
	a, ok := t.st.dutch.get(item)
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (t *tx) SaveDutchAuction(_ context.Context, a *domain.DutchAuction) error {
	t.st.dutch.put(a.Item, *a)
	return nil
}

func (t *tx) DeleteDutchAuction(_ context.Context, item domain.ItemKey) error {
	t.st.dutch.del(item)
	return nil
}

func (t *tx) GetEnglishAuction(_ context.Context, item domain.ItemKey) (*domain.EnglishAuction, error) {
	a, ok := t.st.english.get(item)
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (t *tx) SaveEnglishAuction(_ context.Context, a *domain.EnglishAuction) error {
	t.st.english.put(a.Item, *a)
	return nil
}

func (t *tx) DeleteEnglishAuction(_ context.Context, item domain.ItemKey) error {
	t.st.english.del(item)
	return nil
}

func (t *tx) ListEnglishAuctions(_ context.Context) ([]domain.EnglishAuction, error) {
	out := make([]domain.EnglishAuction, 0, len(t.st.english.rows))
	for _, a := range t.st.english.rows {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return lessItem(out[i].Item, out[j].Item) })
	return out, nil
}

// Delegation registries

func (t *tx) GetRegistry(_ context.Context, collection domain.Address) (*domain.DelegationRegistry, error) {
	reg, ok := t.st.registries.get(collection)
	if !ok {
		return nil, nil
	}
	return &reg, nil
}

func (t *tx) CreateRegistry(_ context.Context, reg *domain.DelegationRegistry) error {
	if _, ok := t.st.registries.get(reg.Collection); ok {
		return errors.New("registry already exists for collection " + string(reg.Collection))
	}
	t.st.registries.put(reg.Collection, *reg)
	return nil
}

func (t *tx) GetDelegation(_ context.Context, registry domain.Address, tokenID int64) (*domain.Delegation, error) {
	d, ok := t.st.delegations.get(tokenKey{registry, tokenID})
	if !ok {
		return nil, nil
	}
	return &d, nil
}

func (t *tx) SaveDelegation(_ context.Context, d *domain.Delegation) error {
	t.st.delegations.put(tokenKey{d.Registry, d.TokenID}, *d)
	return nil
}

func (t *tx) DeleteDelegation(_ context.Context, registry domain.Address, tokenID int64) error {
	t.st.delegations.del(tokenKey{registry, tokenID})
	return nil
}

// Tokens

func (t *tx) GetCollection(_ context.Context, addr domain.Address) (*domain.Collection, error) {
	c, ok := t.st.collections.get(addr)
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (t *tx) SaveCollection(_ context.Context, c *domain.Collection) error {
	t.st.collections.put(c.Address, *c)
	return nil
}

func (t *tx) GetToken(_ context.Context, collection domain.Address, tokenID int64) (*domain.Token, error) {
	tok, ok := t.st.tokens.get(tokenKey{collection, tokenID})
	if !ok {
		return nil, nil
	}
	return &tok, nil
}

func (t *tx) SaveToken(_ context.Context, tok *domain.Token) error {
	t.st.tokens.put(tokenKey{tok.Collection, tok.TokenID}, *tok)
	return nil
}

func (t *tx) DeleteToken(_ context.Context, collection domain.Address, tokenID int64) error {
	t.st.tokens.del(tokenKey{collection, tokenID})
	return nil
}

// Ledger

func (t *tx) GetAccount(_ context.Context, addr domain.Address) (*domain.Account, error) {
	acct, ok := t.st.accounts.get(addr)
	if !ok {
		return nil, nil
	}
	return &acct, nil
}

func (t *tx) SaveAccount(_ context.Context, acct *domain.Account) error {
	t.st.accounts.put(acct.Address, *acct)
	return nil
}

func (t *tx) CreateTransfer(_ context.Context, tr *domain.Transfer) error {
	t.st.transfers = append(t.st.transfers, *tr)
	return nil
}

// ListTransfers returns the newest transfers touching addr first.
func (t *tx) ListTransfers(_ context.Context, addr domain.Address, page, pageSize int32) ([]domain.Transfer, int32, error) {
	var matched []domain.Transfer
	for i := len(t.st.transfers) - 1; i >= 0; i-- {
		tr := t.st.transfers[i]
		if tr.From == addr || tr.To == addr {
			matched = append(matched, tr)
		}
	}
	count := int32(len(matched))
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		return matched, count, nil
	}
	start := int64(page-1) * int64(pageSize)
	if start >= int64(count) {
		return nil, count, nil
	}
	end := start + int64(pageSize)
	if end > int64(count) {
		end = int64(count)
	}
	return matched[start:end], count, nil
}

// Events

func (t *tx) AppendEvent(_ context.Context, ev *domain.Event) error {
	ev.Seq = t.st.nextSeq
	t.st.nextSeq++
	stored := *ev
	stored.Attributes = maps.Clone(ev.Attributes)
	t.st.events = append(t.st.events, stored)
	return nil
}

func (t *tx) ListEvents(_ context.Context, afterSeq int64, limit int32) ([]domain.Event, error) {
	var out []domain.Event
	for _, ev := range t.st.events {
		if ev.Seq <= afterSeq {
			continue
		}
		ev.Attributes = maps.Clone(ev.Attributes)
		out = append(out, ev)
		if limit > 0 && int32(len(out)) >= limit {
			break
		}
	}
	return out, nil
}
