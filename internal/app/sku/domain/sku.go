package domain

import (
	"strings"
	"time"
)

// Field names for change tracking
const (
	FieldCode       = "code"
	FieldAttributes = "attributes"
)

// Spu is the parent product grouping one or more SKUs.
type Spu struct {
	ID        string
	Name      string
	Category  string
	CreatedAt time.Time
}

// NewSpu validates and creates a parent product.
func NewSpu(id, name, category string, now time.Time) (*Spu, error) {
	name = strings.TrimSpace(name)
	category = strings.TrimSpace(category)
	if name == "" {
		return nil, ErrInvalidSpuName
	}
	if category == "" {
		return nil, ErrInvalidCategory
	}
	return &Spu{ID: id, Name: name, Category: category, CreatedAt: now}, nil
}

// Sku is the aggregate root for a sellable variant. Its identity within the
// parent product is the VariantKey built from its attribute pairs.
type Sku struct {
	id        string
	spuID     string
	code      string
	key       VariantKey
	version   int64
	createdAt time.Time
	updatedAt time.Time

	changes *ChangeTracker
	events  []DomainEvent
}

// NewSku creates a new SKU aggregate.
func NewSku(id, spuID, code string, pairs []AttributeValuePair, now time.Time) (*Sku, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrEmptySkuCode
	}
	if spuID == "" {
		return nil, ErrSpuNotFound
	}

	key, err := NewVariantKey(pairs)
	if err != nil {
		return nil, err
	}

	s := &Sku{
		id:        id,
		spuID:     spuID,
		code:      code,
		key:       key,
		version:   1,
		createdAt: now,
		updatedAt: now,
		changes:   NewChangeTracker(),
	}
	s.changes.MarkDirty(FieldCode)
	s.changes.MarkDirty(FieldAttributes)

	s.recordEvent(&SkuCreatedEvent{
		SkuID:      s.id,
		SpuID:      s.spuID,
		Code:       s.code,
		Attributes: key.Pairs(),
		CreatedAt:  now,
	})

	return s, nil
}

// ReconstructSku rebuilds a SKU loaded from storage.
func ReconstructSku(id, spuID, code string, key VariantKey, version int64, createdAt, updatedAt time.Time) *Sku {
	return &Sku{
		id:        id,
		spuID:     spuID,
		code:      code,
		key:       key,
		version:   version,
		createdAt: createdAt,
		updatedAt: updatedAt,
		changes:   NewChangeTracker(),
	}
}

// Getters
func (s *Sku) ID() string                  { return s.id }
func (s *Sku) SpuID() string               { return s.spuID }
func (s *Sku) Code() string                { return s.code }
func (s *Sku) Key() VariantKey             { return s.key }
func (s *Sku) Version() int64              { return s.version }
func (s *Sku) CreatedAt() time.Time        { return s.createdAt }
func (s *Sku) UpdatedAt() time.Time        { return s.updatedAt }
func (s *Sku) Changes() *ChangeTracker     { return s.changes }
func (s *Sku) DomainEvents() []DomainEvent { return s.events }

// SetAttributes replaces the SKU's combination. It reports whether anything changed.
func (s *Sku) SetAttributes(pairs []AttributeValuePair, now time.Time) (bool, error) {
	key, err := NewVariantKey(pairs)
	if err != nil {
		return false, err
	}
	if key.Equal(s.key) {
		return false, nil
	}

	old := s.key
	s.key = key
	s.updatedAt = now
	s.changes.MarkDirty(FieldAttributes)

	s.recordEvent(&SkuAttributesChangedEvent{
		SkuID:         s.id,
		SpuID:         s.spuID,
		OldAttributes: old.Pairs(),
		NewAttributes: key.Pairs(),
		ChangedAt:     now,
	})

	return true, nil
}

// Combination returns the SKU as an index entry.
func (s *Sku) Combination() SkuCombination {
	return SkuCombination{SkuID: s.id, Key: s.key}
}

func (s *Sku) recordEvent(event DomainEvent) {
	s.events = append(s.events, event)
}

// ClearEvents drops recorded events once they are persisted.
func (s *Sku) ClearEvents() {
	s.events = nil
}
