// Package skutest provides in-memory fakes of the SKU contracts for unit tests.
package skutest

import (
	"context"
	"encoding/json"
	"sync"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/procat-variants/internal/app/sku/contracts"
	"github.com/light-bringer/procat-variants/internal/app/sku/domain"
	"github.com/light-bringer/procat-variants/internal/pkg/committer"
)

// marker returns a distinct, inspectable mutation.
func marker(table, id string) *spanner.Mutation {
	return spanner.Delete(table, spanner.Key{id})
}

// Store is an in-memory catalog implementing the repository and source contracts.
// Reads serve the seeded state; InsertMut/UpdateMut only record what was asked.
type Store struct {
	mu sync.Mutex

	Spus   map[string]*domain.Spu
	Skus   map[string]*domain.Sku
	Prices map[string][]domain.PriceRecord

	InsertedSpus   []*domain.Spu
	InsertedSkus   []*domain.Sku
	UpdatedSkus    []*domain.Sku
	InsertedPrices []*domain.PriceRecord

	// LoadErr, when set, fails every read.
	LoadErr error
}

var (
	_ contracts.SpuRepository         = (*Store)(nil)
	_ contracts.CombinationSource     = (*Store)(nil)
	_ contracts.PriceRecordSource     = (*Store)(nil)
)

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		Spus:   make(map[string]*domain.Spu),
		Skus:   make(map[string]*domain.Sku),
		Prices: make(map[string][]domain.PriceRecord),
	}
}

// AddSpu seeds an SPU.
func (s *Store) AddSpu(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Spus[id] = &domain.Spu{ID: id, Name: id, Category: "test"}
}

// AddSku seeds a SKU at version 1.
func (s *Store) AddSku(id, spuID string, pairs ...domain.AttributeValuePair) *domain.Sku {
	s.mu.Lock()
	defer s.mu.Unlock()
	sku := domain.ReconstructSku(id, spuID, id, domain.MustVariantKey(pairs...), 1, testEpoch, testEpoch)
	s.Skus[id] = sku
	return sku
}

// AddPrice seeds a price record.
func (s *Store) AddPrice(r domain.PriceRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Prices[r.SkuID] = append(s.Prices[r.SkuID], r)
}

func (s *Store) InsertMut(spu *domain.Spu) *spanner.Mutation {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.InsertedSpus = append(s.InsertedSpus, spu)
	return marker("spus", spu.ID)
}

func (s *Store) GetByID(_ context.Context, spuID string) (*domain.Spu, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	spu, ok := s.Spus[spuID]
	if !ok {
		return nil, domain.ErrSpuNotFound
	}
	return spu, nil
}

func (s *Store) Exists(_ context.Context, spuID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.LoadErr != nil {
		return false, s.LoadErr
	}
	_, ok := s.Spus[spuID]
	return ok, nil
}

func (s *Store) LoadSkuCombinations(_ context.Context, spuID string) ([]domain.SkuCombination, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	if _, ok := s.Spus[spuID]; !ok {
		return nil, domain.ErrSpuNotFound
	}
	var out []domain.SkuCombination
	for _, sku := range s.Skus {
		if sku.SpuID() == spuID {
			out = append(out, sku.Combination())
		}
	}
	return out, nil
}

func (s *Store) LoadPriceRecords(_ context.Context, skuID string, priceType domain.PriceType) ([]domain.PriceRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	var out []domain.PriceRecord
	for _, r := range s.Prices[skuID] {
		if r.Type == priceType {
			out = append(out, r)
		}
	}
	return out, nil
}

// SkuStore exposes the SKU side of Store under the SkuRepository method names.
type SkuStore struct{ *Store }

var _ contracts.SkuRepository = SkuStore{}

// SkuRepo returns the SKU repository view.
func (s *Store) SkuRepo() SkuStore { return SkuStore{s} }

func (s SkuStore) InsertMut(sku *domain.Sku) *spanner.Mutation {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.InsertedSkus = append(s.InsertedSkus, sku)
	return marker("skus", sku.ID())
}

func (s SkuStore) UpdateMut(sku *domain.Sku) *spanner.Mutation {
	if !sku.Changes().HasChanges() {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.UpdatedSkus = append(s.UpdatedSkus, sku)
	return marker("skus", sku.ID())
}

func (s SkuStore) GetByID(_ context.Context, skuID string) (*domain.Sku, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	sku, ok := s.Skus[skuID]
	if !ok {
		return nil, domain.ErrSkuNotFound
	}
	return sku, nil
}

func (s SkuStore) Exists(_ context.Context, skuID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.LoadErr != nil {
		return false, s.LoadErr
	}
	_, ok := s.Skus[skuID]
	return ok, nil
}

// PriceStore exposes the price side of Store.
type PriceStore struct{ *Store }

var _ contracts.PriceRecordRepository = PriceStore{}

// PriceRepo returns the price repository view.
func (s *Store) PriceRepo() PriceStore { return PriceStore{s} }

func (s PriceStore) InsertMut(r *domain.PriceRecord) *spanner.Mutation {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.InsertedPrices = append(s.InsertedPrices, r)
	return marker("sku_prices", r.ID)
}

// Outbox records enriched events.
type Outbox struct {
	mu     sync.Mutex
	Events []*contracts.OutboxEvent
}

var _ contracts.OutboxRepository = (*Outbox)(nil)

func (o *Outbox) InsertMut(event *contracts.OutboxEvent) *spanner.Mutation {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.Events = append(o.Events, event)
	return marker("outbox_events", event.EventID)
}

func (o *Outbox) EnrichEvent(event domain.DomainEvent) (*contracts.OutboxEvent, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}
	return &contracts.OutboxEvent{
		EventID:     event.EventType() + ":" + event.AggregateID(),
		EventType:   event.EventType(),
		AggregateID: event.AggregateID(),
		Payload:     payload,
		Status:      "pending",
	}, nil
}

// Types returns the recorded event types in order.
func (o *Outbox) Types() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]string, 0, len(o.Events))
	for _, e := range o.Events {
		out = append(out, e.EventType)
	}
	return out
}

// Applier records applied plans and can be told to fail.
type Applier struct {
	mu      sync.Mutex
	Plans   []*committer.CommitPlan
	Guards  []committer.VersionGuard
	Err     error
	Applies int
}

var _ committer.Applier = (*Applier)(nil)

func (a *Applier) Apply(_ context.Context, plan *committer.CommitPlan) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.Applies++
	if a.Err != nil {
		return a.Err
	}
	a.Plans = append(a.Plans, plan)
	return nil
}

func (a *Applier) ApplyWithVersionCheck(_ context.Context, guard committer.VersionGuard, plan *committer.CommitPlan) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.Applies++
	a.Guards = append(a.Guards, guard)
	if a.Err != nil {
		return a.Err
	}
	a.Plans = append(a.Plans, plan)
	return nil
}
