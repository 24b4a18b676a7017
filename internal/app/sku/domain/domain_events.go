package domain

import "time"

// DomainEvent is the base interface for all domain events.
type DomainEvent interface {
	EventType() string
	AggregateID() string
}

// SpuCreatedEvent is emitted when a parent product is registered.
type SpuCreatedEvent struct {
	SpuID     string    `json:"spu_id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

func (e *SpuCreatedEvent) EventType() string   { return "spu.created" }
func (e *SpuCreatedEvent) AggregateID() string { return e.SpuID }

// SkuCreatedEvent is emitted when a variant is added under an SPU.
type SkuCreatedEvent struct {
	SkuID      string               `json:"sku_id"`
	SpuID      string               `json:"spu_id"`
	Code       string               `json:"code"`
	Attributes []AttributeValuePair `json:"attributes"`
	CreatedAt  time.Time            `json:"created_at"`
}

func (e *SkuCreatedEvent) EventType() string   { return "sku.created" }
func (e *SkuCreatedEvent) AggregateID() string { return e.SkuID }

// SkuAttributesChangedEvent is emitted when a SKU's combination is edited.
type SkuAttributesChangedEvent struct {
	SkuID         string               `json:"sku_id"`
	SpuID         string               `json:"spu_id"`
	OldAttributes []AttributeValuePair `json:"old_attributes"`
	NewAttributes []AttributeValuePair `json:"new_attributes"`
	ChangedAt     time.Time            `json:"changed_at"`
}

func (e *SkuAttributesChangedEvent) EventType() string   { return "sku.attributes_changed" }
func (e *SkuAttributesChangedEvent) AggregateID() string { return e.SkuID }

// SkuPriceAddedEvent is emitted when a price record is attached to a SKU.
type SkuPriceAddedEvent struct {
	SkuID       string     `json:"sku_id"`
	PriceID     string     `json:"price_id"`
	Type        PriceType  `json:"type"`
	Currency    string     `json:"currency"`
	Amount      Money      `json:"amount"`
	EffectiveAt *time.Time `json:"effective_at,omitempty"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	AddedAt     time.Time  `json:"added_at"`
}

func (e *SkuPriceAddedEvent) EventType() string   { return "sku.price_added" }
func (e *SkuPriceAddedEvent) AggregateID() string { return e.SkuID }
