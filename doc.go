// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package heir emulates classical single-inheritance object hierarchies
// in Go.
//
// Go offers structural composition (embedding) and capability-style
// interfaces, but no subclassing: promoted methods do not re-dispatch,
// and there is no built-in notion of "call the parent's version". heir
// supplies the missing protocol — field inheritance through embedded
// records, virtual operations with per-level defaults and overrides,
// explicit parent calls that advance exactly one level, abstract
// operations, and heterogeneous collections — without code generation,
// reflection, or unsafe.
//
// # Design Philosophy
//
// heir provides:
//   - A minimal, total capability-projection contract over embedded records
//   - Two dispatch disciplines: compile-time (interfaces) and run-time (tables)
//   - A parent-call path that is distinguishable from polymorphic entry
//     and can never loop back into most-derived dispatch
//
// Hierarchies are strictly linear: each level owns exactly one embedded
// parent record, depth is finite and fixed at type definition, and there
// is no shared ("diamond") ancestry. A concrete type may still satisfy
// several independent capabilities side by side.
//
// # Records and Capability Projection
//
// A record at level N is a client struct embedding level N-1's record
// (none at the root) plus its own fields:
//
//	type AnimalRecord struct{ Name string }
//	type DogRecord struct {
//		AnimalRecord
//		Breed string
//	}
//
// [Projection] reaches an ancestor record inside a descendant: a fixed
// field traversal, total and O(1), with no failure path.
//
//   - [Projection.Ref]: shared reference to the ancestor record
//   - [Projection.Get]: read-only copy
//   - [Projection.Set]: exclusive whole-record write
//   - [Projection.Extract]: consuming conversion, discarding descendant-only fields
//   - [ComposeProjection]: chain projections across levels
//   - [SelfProjection]: identity at depth zero
//
// # View Wrapper and Level Freeze
//
// [View] is a non-owning, state-free adapter over a descendant reference:
//
//   - [As]: wrap a reference
//   - [View.Deref]: unwrap it
//
// Per level L, clients declare a defaults struct embedding View at the
// root and the parent level's defaults struct below it; its methods are
// level L's default bodies. Invoking a method on the defaults struct
// evaluates exactly level L's behavior, regardless of overrides installed
// by more-derived types. See [View] for the full protocol.
//
// # Compile-Time Dispatch Discipline
//
// The per-level virtual interface is a plain Go interface. Defaults chain
// by embedding — an unoverridden operation promotes through the defaults
// structs all the way to the root default — and an override is an
// ordinary shadowing method. The concrete leaf is the most-derived
// defaults struct instantiated at the leaf record:
//
//	type Animal interface {
//		Describe() string
//		Sound() string
//	}
//
//	type AsAnimal[T HasAnimal] struct{ heir.View[T] }
//	func (a AsAnimal[T]) Describe() string { ... } // root default; Sound is abstract
//
//	type AsDog[T HasDog] struct{ AsAnimal[T] }
//	func (d AsDog[T]) Sound() string { return "woof" } // override
//
// An abstract operation is simply omitted from the defaults chain: a leaf
// that never supplies it does not satisfy the virtual interface, and the
// malformed hierarchy is rejected at compile time. A parent call names
// the embedded parent defaults value (d.AsAnimal.Describe()), advancing
// exactly one level without re-entering interface dispatch.
//
// # Run-Time Dispatch Discipline
//
// For open-set clients that assemble hierarchies at init time and
// dispatch by operation name, [Hierarchy] builds an explicit capability
// table:
//
//   - [NewHierarchy]: start declaring a hierarchy for a concrete type
//   - [Hierarchy.Level]: declare the next level, root first
//   - [LevelScope.Def]: install a default or override body
//   - [LevelScope.AbstractOp]: declare an operation with no body
//   - [Hierarchy.Resolve]: freeze dispatch into an immutable [Table]
//   - [Call]: dispatch through the most-derived implementation
//
// Resolution is deterministic and happens exactly once: per operation,
// the table holds the body installed at the most-derived level defining
// it, or the root default if none override it. Mutating a hierarchy after
// Resolve panics.
//
// Bodies have type [Body]: they receive the receiver and a [Super] handle
// and return [Erased]; concrete result types are recovered by assertion
// at the [Call] boundary. A nil result reads as the zero value, so
// operations whose result type is a pointer or interface cannot use nil
// as a meaningful result; wrap such results in [Either] to distinguish.
//
// # Explicit Parent Calls
//
//   - [Parent]: invoke the same operation as resolved one level up
//   - [Super.HasParent], [Super.Op], [Super.LevelName]: introspection
//
// Parent reaches the next binding strictly above the executing one —
// itself possibly a further override, or eventually the root default — so
// a chain of depth D unwinds in at most D-1 steps. The Super handle is
// the only route to ancestor behavior; the polymorphic entry point cannot
// reach it, and it cannot loop back to the most-derived override.
//
// # Abstract Operations
//
// The table discipline defers enforcement to first invocation: calling an
// abstract operation that no level overrode panics with "unimplemented
// abstract operation" — a programmer error denoting a malformed
// hierarchy, never a recoverable result. Construction and resolution
// remain silent. Prefer the compile-time discipline where the interface
// can express totality.
//
// # Collections
//
// Open-set storage, for type sets extensible outside the hierarchy
// author's control:
//
//   - [Collection]: mixed concrete types behind one interface
//   - [Collection.Each], [Invoke]: iterate through dynamic dispatch
//   - [Object], [BindObject], [CallObject]: erased (receiver, table)
//     pairs for mixing table-dispatched values
//
// Closed-set storage, for fixed type sets, trades openness for static
// dispatch at the match site:
//
//   - [Either]: two-variant tagged union, also the success/failure result
//     type for client operations that can legitimately fail
//   - [Left], [Right], [MatchEither], [MapEither], [FlatMapEither], [MapLeftEither]
//   - [Union3]: three-variant tagged union
//   - [First], [Second], [Third], [MatchUnion3]
//
// # Aliasing
//
// The framework is single-threaded and synchronous; it supplies no
// synchronization. Sharing a record across goroutines is a client
// concern. [Guard] offers an opt-in fail-fast check of the
// shared/exclusive discipline:
//
//   - [Guard.Share], [Guard.TryShare], [Guard.Release]
//   - [Guard.Exclusive], [Guard.TryExclusive], [Guard.ReleaseExclusive]
//
// # Example
//
//	h := heir.NewHierarchy[*DogRecord]("Dog")
//	h.Level("Animal").
//		Def("describe", func(d *DogRecord, _ heir.Super[*DogRecord]) heir.Erased {
//			return "animal " + d.Name
//		}).
//		AbstractOp("sound")
//	h.Level("Dog").
//		Def("describe", func(d *DogRecord, s heir.Super[*DogRecord]) heir.Erased {
//			return heir.Parent[string](s, d) + ", a " + d.Breed
//		}).
//		Def("sound", func(*DogRecord, heir.Super[*DogRecord]) heir.Erased {
//			return "woof"
//		})
//	table := h.Resolve()
//
//	rex := &DogRecord{AnimalRecord: AnimalRecord{Name: "Rex"}, Breed: "collie"}
//	heir.Call[string](table, "describe", rex)
//	// "animal Rex, a collie"
package heir
