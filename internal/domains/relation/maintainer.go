package relation

import (
	"context"

	"arte-gallery-backend/pkg/logger"
)

// RefStore is the slice of the document store the maintainer needs:
// batched, idempotent push/pull of ids on array fields.
type RefStore interface {
	PushRef(ctx context.Context, collection string, ids []string, field, ref string) (int64, error)
	PullRef(ctx context.Context, collection string, ids []string, field, ref string) (int64, error)
	UnsetField(ctx context.Context, collection string, ids []string, field string) (int64, error)
}

// Maintainer keeps denormalized bidirectional reference lists in sync.
// The owning document's list is the source of truth; the mirrored lists on
// related documents are best-effort, so a failed compensating update is
// logged and the rest of the batch proceeds.
type Maintainer struct {
	store RefStore
}

func NewMaintainer(store RefStore) *Maintainer {
	return &Maintainer{store: store}
}

// Diff computes the symmetric difference between the current and the next
// reference list. Identical lists yield two empty slices, which makes every
// maintainer pass idempotent.
func Diff(current, next []string) (toRemove, toAdd []string) {
	currentSet := make(map[string]struct{}, len(current))
	for _, id := range current {
		currentSet[id] = struct{}{}
	}
	nextSet := make(map[string]struct{}, len(next))
	for _, id := range next {
		nextSet[id] = struct{}{}
	}

	for _, id := range current {
		if _, ok := nextSet[id]; !ok {
			toRemove = append(toRemove, id)
		}
	}
	for _, id := range next {
		if _, ok := currentSet[id]; !ok {
			toAdd = append(toAdd, id)
		}
	}
	return toRemove, toAdd
}

// Sync reconciles a replaced membership list: ref is pulled from the
// documents that left the list and pushed onto the ones that joined it.
func (m *Maintainer) Sync(ctx context.Context, collection, field string, current, next []string, ref string) {
	toRemove, toAdd := Diff(current, next)
	m.pull(ctx, collection, field, toRemove, ref)
	m.push(ctx, collection, field, toAdd, ref)
}

// Attach pushes ref onto every listed document's field.
func (m *Maintainer) Attach(ctx context.Context, collection, field string, ids []string, ref string) {
	m.push(ctx, collection, field, ids, ref)
}

// Detach pulls ref out of every listed document's field. Used on deletion
// to remove the deleted document from its relatives' mirror lists.
func (m *Maintainer) Detach(ctx context.Context, collection, field string, ids []string, ref string) {
	m.pull(ctx, collection, field, ids, ref)
}

// ClearField drops a scalar back-reference field from the listed documents
// (e.g. users' artistProfile when the artist goes away).
func (m *Maintainer) ClearField(ctx context.Context, collection, field string, ids []string) {
	if len(ids) == 0 {
		return
	}
	if _, err := m.store.UnsetField(ctx, collection, ids, field); err != nil {
		logger.Warn("Failed to clear back-reference field", map[string]interface{}{
			"collection": collection,
			"field":      field,
			"ids":        ids,
			"error":      err.Error(),
		})
	}
}

func (m *Maintainer) push(ctx context.Context, collection, field string, ids []string, ref string) {
	if len(ids) == 0 {
		return
	}
	if _, err := m.store.PushRef(ctx, collection, ids, field, ref); err != nil {
		m.retryEach(ctx, "push", collection, field, ids, ref, m.store.PushRef)
	}
}

func (m *Maintainer) pull(ctx context.Context, collection, field string, ids []string, ref string) {
	if len(ids) == 0 {
		return
	}
	if _, err := m.store.PullRef(ctx, collection, ids, field, ref); err != nil {
		m.retryEach(ctx, "pull", collection, field, ids, ref, m.store.PullRef)
	}
}

// retryEach retries a failed batch one document at a time so a single bad
// document (deleted concurrently, malformed) cannot block the rest.
func (m *Maintainer) retryEach(
	ctx context.Context,
	op, collection, field string,
	ids []string,
	ref string,
	fn func(context.Context, string, []string, string, string) (int64, error),
) {
	for _, id := range ids {
		if _, err := fn(ctx, collection, []string{id}, field, ref); err != nil {
			logger.Warn("Compensating reference update failed", map[string]interface{}{
				"op":         op,
				"collection": collection,
				"field":      field,
				"id":         id,
				"ref":        ref,
				"error":      err.Error(),
			})
		}
	}
}
