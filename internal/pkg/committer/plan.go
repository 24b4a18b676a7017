// Package committer implements the Golden Mutation Pattern for Spanner transactions.
//
// Usecases load aggregates, call domain methods, ask repositories for mutations
// and collect them into a CommitPlan. The plan is applied atomically at the end,
// together with the outbox events of the same change:
//
//	plan := committer.NewPlan()
//	plan.Add(skuRepo.InsertMut(sku))
//	for _, event := range sku.DomainEvents() {
//	    plan.Add(outboxRepo.InsertMut(outboxRepo.EnrichEvent(event, payload)))
//	}
//	return comm.Apply(ctx, plan)
//
// Repositories never apply anything themselves, which keeps the domain free of
// storage concerns and lets tests inspect a plan before it is committed.
package committer

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/spanner"
)

// VersionColumn is the optimistic-lock column every versioned table carries.
const VersionColumn = "version"

// ErrVersionConflict is returned when the stored version differs from the expected one.
var ErrVersionConflict = errors.New("optimistic lock conflict")

// CommitPlan is a typed wrapper around Spanner mutations for the Golden Mutation Pattern.
// It collects mutations from multiple sources and applies them atomically.
type CommitPlan struct {
	mutations []*spanner.Mutation
}

// NewPlan creates a new empty CommitPlan.
func NewPlan() *CommitPlan {
	return &CommitPlan{
		mutations: make([]*spanner.Mutation, 0),
	}
}

// Add adds a mutation to the plan.
// Nil mutations are silently ignored for convenience.
func (cp *CommitPlan) Add(mut *spanner.Mutation) {
	if mut != nil {
		cp.mutations = append(cp.mutations, mut)
	}
}

// AddMultiple adds multiple mutations to the plan.
func (cp *CommitPlan) AddMultiple(muts []*spanner.Mutation) {
	for _, mut := range muts {
		cp.Add(mut)
	}
}

// Mutations returns all collected mutations.
func (cp *CommitPlan) Mutations() []*spanner.Mutation {
	return cp.mutations
}

// IsEmpty returns true if the plan has no mutations.
func (cp *CommitPlan) IsEmpty() bool {
	return len(cp.mutations) == 0
}

// Count returns the number of mutations in the plan.
func (cp *CommitPlan) Count() int {
	return len(cp.mutations)
}

// VersionGuard identifies the row whose version must still match at commit time.
type VersionGuard struct {
	Table    string
	Key      spanner.Key
	Expected int64
}

// Applier commits plans. Usecases depend on this rather than on *Committer.
type Applier interface {
	Apply(ctx context.Context, plan *CommitPlan) error
	ApplyWithVersionCheck(ctx context.Context, guard VersionGuard, plan *CommitPlan) error
}

// Committer provides transaction execution for CommitPlans.
type Committer struct {
	client *spanner.Client
}

var _ Applier = (*Committer)(nil)

// NewCommitter creates a new Committer.
func NewCommitter(client *spanner.Client) *Committer {
	return &Committer{client: client}
}

// Apply executes the CommitPlan atomically within a Spanner transaction.
func (c *Committer) Apply(ctx context.Context, plan *CommitPlan) error {
	if plan.IsEmpty() {
		return nil
	}

	if _, err := c.client.Apply(ctx, plan.Mutations()); err != nil {
		return fmt.Errorf("failed to apply commit plan: %w", err)
	}

	return nil
}

// ApplyWithVersionCheck executes the CommitPlan with optimistic locking.
// The guarded row's version is read inside the same read-write transaction that
// buffers the mutations, so a concurrent writer either commits first and trips
// the check, or is aborted and retried by Spanner.
func (c *Committer) ApplyWithVersionCheck(ctx context.Context, guard VersionGuard, plan *CommitPlan) error {
	if plan.IsEmpty() {
		return nil
	}

	_, err := c.client.ReadWriteTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		row, err := txn.ReadRow(ctx, guard.Table, guard.Key, []string{VersionColumn})
		if err != nil {
			return fmt.Errorf("failed to read %s version: %w", guard.Table, err)
		}

		var current int64
		if err := row.Column(0, &current); err != nil {
			return fmt.Errorf("failed to parse version: %w", err)
		}

		if current != guard.Expected {
			return fmt.Errorf("%w: %s %v expected version %d, found %d",
				ErrVersionConflict, guard.Table, guard.Key, guard.Expected, current)
		}

		return txn.BufferWrite(plan.Mutations())
	})
	if err != nil {
		return fmt.Errorf("failed to apply commit plan with version check: %w", err)
	}

	return nil
}
