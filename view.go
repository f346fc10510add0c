// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package heir

// View is a non-owning adapter that lets a descendant reference be
// treated as exactly one ancestor level for the purpose of invoking that
// level's default behavior. A View holds exactly one field — the wrapped
// reference — and carries no state of its own, so passing a View by value
// costs the same as passing the bare reference.
//
// Go guarantees no transparent reinterpretation between a struct and its
// single field, so View is constructed explicitly by [As] and unwrapped
// by [View.Deref] rather than by pointer relabeling. The trade is a
// pointer-identity optimization for safety; semantics are identical.
//
// A View borrows: it must not outlive the reference it was built from,
// and it must only be built over a type that actually carries the target
// level's capability. Both are expressed in the type system — the level
// defaults struct that embeds View[T] constrains T by the level's
// capability interface, and T is ordinarily a pointer whose referent
// outlives every value derived from it.
//
// Level freeze protocol: for each hierarchy level L, clients declare a
// defaults struct embedding View at the root and the parent level's
// defaults struct below it:
//
//	type AsAnimal[T HasAnimal] struct{ heir.View[T] }
//	type AsDog[T HasDog] struct{ AsAnimal[T] }
//
// Methods on AsAnimal are level Animal's default bodies; methods on AsDog
// shadow them with Dog's overrides. Invoking a method on an AsAnimal
// value evaluates Animal's behavior only, regardless of overrides
// installed by more-derived types — this is what an explicit parent call
// reaches, and it can never loop back into interface dispatch.
type View[T any] struct {
	ref T
}

// As wraps a reference in a View. The wrapper adds no state: the result
// is a one-field struct around v.
func As[T any](v T) View[T] {
	return View[T]{ref: v}
}

// Deref returns the wrapped reference.
func (w View[T]) Deref() T {
	return w.ref
}
