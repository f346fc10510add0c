// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package heir

// Capability projection: access from a descendant record down to any
// ancestor record in its chain. A projection is a fixed field traversal —
// total, O(1), with no failure path. It exists only where the embedding
// exists, so "target level is an ancestor" is enforced by construction.

// Projection reaches level A's record inside a descendant record D.
// Clients define one projection per (descendant, ancestor) pair they use,
// typically a single field selection:
//
//	var petOf = heir.Projection[HoundRecord, PetRecord](
//		func(h *HoundRecord) *PetRecord { return &h.PetRecord },
//	)
type Projection[D, A any] func(*D) *A

// Ref returns a shared reference to the ancestor record.
// Aliasing follows the shared/exclusive discipline; see [Guard] for the
// optional runtime check.
func (p Projection[D, A]) Ref(d *D) *A {
	return p(d)
}

// Get returns a copy of the ancestor record for read-only use.
func (p Projection[D, A]) Get(d *D) A {
	return *p(d)
}

// Set replaces the ancestor record in place.
// The caller must hold exclusive access to d for the duration of the call.
func (p Projection[D, A]) Set(d *D, a A) {
	*p(d) = a
}

// Extract consumes the descendant record and returns the ancestor record
// by value, discarding every descendant-only field.
func (p Projection[D, A]) Extract(d D) A {
	return *p(&d)
}

// ComposeProjection chains a descendant-to-middle projection with a
// middle-to-ancestor projection. Composition stays a fixed field
// traversal: projecting through k levels is k pointer offsets.
func ComposeProjection[D, M, A any](outer Projection[D, M], inner Projection[M, A]) Projection[D, A] {
	return func(d *D) *A {
		return inner(outer(d))
	}
}

// SelfProjection is the identity projection at depth zero.
// Useful as the base case when building projections generically.
func SelfProjection[T any]() Projection[T, T] {
	return func(t *T) *T { return t }
}
