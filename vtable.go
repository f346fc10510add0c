// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package heir

// Virtual interface and dispatch resolution: the run-time discipline.
// A hierarchy declares its levels root→leaf and installs operation bodies
// per level; Resolve freezes the result into an immutable capability
// table mapping each operation to its most-derived implementation.
//
// The compile-time discipline (plain Go interfaces over the level-freeze
// protocol, see [View]) needs none of this machinery; the table exists
// for open-set clients that assemble hierarchies at init time and
// dispatch by operation name.

// Erased represents a type-erased operation result. Bodies return Erased
// and concrete types are recovered via type assertions at call
// boundaries.
type Erased = any

// Op names a virtual operation within a hierarchy.
type Op string

// Body is an operation implementation for concrete type T. It receives
// the receiver and a [Super] handle positioned at the level the body was
// installed at; the handle is the only path to the parent's behavior.
//
// A parameterized operation returns a func value closing over the
// receiver, keeping the table surface free of per-arity variants:
//
//	h.Level("Circle").Def("grow", func(c *CircleRecord, _ heir.Super[*CircleRecord]) heir.Erased {
//		return func(delta float64) { c.Radius += delta }
//	})
//	heir.Call[func(float64)](tbl, "grow", c)(5.0)
type Body[T any] func(recv T, super Super[T]) Erased

// binding is one installed body for an operation at one level.
// A nil body marks an abstract declaration.
type binding[T any] struct {
	level int
	body  Body[T]
}

// Hierarchy accumulates level and operation declarations for concrete
// type T. Levels are declared in chain order, root first; [Hierarchy.Resolve]
// freezes the declarations into a [Table]. A Hierarchy refuses all
// mutation after Resolve.
type Hierarchy[T any] struct {
	name     string
	levels   []string
	ops      map[Op][]binding[T]
	resolved bool
}

// NewHierarchy starts declaring a hierarchy for concrete type T.
// The name appears in dispatch failure messages only.
func NewHierarchy[T any](name string) *Hierarchy[T] {
	return &Hierarchy[T]{
		name: name,
		ops:  make(map[Op][]binding[T]),
	}
}

// Level declares the next level of the chain, root first, and returns a
// scope for installing that level's operations. Level names must be
// unique within the hierarchy.
func (h *Hierarchy[T]) Level(name string) LevelScope[T] {
	h.mutable()
	for _, n := range h.levels {
		if n == name {
			panic("heir: duplicate level " + name + " in hierarchy " + h.name)
		}
	}
	h.levels = append(h.levels, name)
	return LevelScope[T]{h: h, level: len(h.levels) - 1}
}

// Resolve fixes dispatch for every declared operation: the most-derived
// installed body wins, or the root default if no level overrides it.
// The returned table is immutable; resolution happens exactly once.
// An operation whose most-derived declaration is abstract resolves to a
// body that fails on first invocation, not at resolution.
func (h *Hierarchy[T]) Resolve() *Table[T] {
	h.mutable()
	if len(h.levels) == 0 {
		panic("heir: hierarchy " + h.name + " resolved with no levels")
	}
	h.resolved = true
	return &Table[T]{name: h.name, levels: h.levels, ops: h.ops}
}

func (h *Hierarchy[T]) mutable() {
	if h.resolved {
		panic("heir: hierarchy " + h.name + " mutated after Resolve")
	}
}

// LevelScope installs operations at one declared level.
type LevelScope[T any] struct {
	h     *Hierarchy[T]
	level int
}

// Def installs op's body at this level: a default where the operation is
// new, an override where an ancestor level already defines it. An
// override's body may ignore its parent entirely, call it once via
// [Parent] and combine results, or call it conditionally.
func (s LevelScope[T]) Def(op Op, body Body[T]) LevelScope[T] {
	s.h.mutable()
	if body == nil {
		panic("heir: nil body for operation " + string(op) + " at level " + s.name())
	}
	s.install(op, body)
	return s
}

// AbstractOp declares op at this level with no default body. A resolved
// table panics on the first invocation of an abstract operation that no
// lower level overrides. AbstractOp only introduces operations; it cannot
// shadow an inherited implementation.
func (s LevelScope[T]) AbstractOp(op Op) LevelScope[T] {
	s.h.mutable()
	if len(s.h.ops[op]) > 0 {
		panic("heir: abstract declaration of " + string(op) + " at level " + s.name() + " shadows an inherited implementation")
	}
	s.install(op, nil)
	return s
}

func (s LevelScope[T]) install(op Op, body Body[T]) {
	bs := s.h.ops[op]
	if len(bs) > 0 {
		last := bs[len(bs)-1].level
		if last == s.level {
			panic("heir: operation " + string(op) + " installed twice at level " + s.name())
		}
		// Bindings must stay in chain order for parent resolution.
		if last > s.level {
			panic("heir: operation " + string(op) + " installed at level " + s.name() + " after a more-derived level")
		}
	}
	s.h.ops[op] = append(bs, binding[T]{level: s.level, body: body})
}

func (s LevelScope[T]) name() string {
	return s.h.levels[s.level]
}

// Table is the resolved capability table for concrete type T: a fixed
// mapping from operation to the implementation installed at the
// most-derived level defining it. Built once by [Hierarchy.Resolve],
// never mutated afterwards.
type Table[T any] struct {
	name   string
	levels []string
	ops    map[Op][]binding[T]
}

// Name returns the hierarchy name.
func (t *Table[T]) Name() string { return t.name }

// Levels returns the level names in chain order, root first.
func (t *Table[T]) Levels() []string {
	out := make([]string, len(t.levels))
	copy(out, t.levels)
	return out
}

// Has reports whether the table defines op at any level.
func (t *Table[T]) Has(op Op) bool {
	return len(t.ops[op]) > 0
}

// callAt evaluates the binding at index idx of op's override stack.
func (t *Table[T]) callAt(op Op, recv T, idx int) Erased {
	b := t.ops[op][idx]
	if b.body == nil {
		unimplementedOp(t.name, t.levels[b.level], string(op))
	}
	return b.body(recv, Super[T]{t: t, op: op, idx: idx})
}

// Call dispatches op on recv, selecting the most-derived implementation.
// Panics on an operation the hierarchy never declared, and on the first
// invocation of an abstract operation that was never overridden.
func Call[R, T any](t *Table[T], op Op, recv T) R {
	bs := t.ops[op]
	if len(bs) == 0 {
		unknownOp(t.name, string(op))
	}
	return assertResult[R](t.callAt(op, recv, len(bs)-1))
}

// Super is the explicit parent-call handle passed to every operation
// body. It is positioned at the binding currently executing; [Parent]
// advances exactly one resolved level up the same operation's override
// stack. The handle is the only route to an ancestor's behavior — it
// never re-enters most-derived dispatch, so an override cannot loop back
// into itself through it.
type Super[T any] struct {
	t   *Table[T]
	op  Op
	idx int
}

// Op returns the operation being dispatched.
func (s Super[T]) Op() Op { return s.op }

// LevelName returns the name of the level whose body is executing.
func (s Super[T]) LevelName() string {
	return s.t.levels[s.t.ops[s.op][s.idx].level]
}

// HasParent reports whether a level above the executing one defines the
// operation.
func (s Super[T]) HasParent() bool { return s.idx > 0 }

// Parent invokes the same operation as resolved one level up: the next
// binding strictly above the executing one, itself possibly a further
// override or eventually the root default. A chain of depth D unwinds in
// at most D-1 Parent steps. Panics when called from the root binding.
func Parent[R, T any](s Super[T], recv T) R {
	if s.idx == 0 {
		noParent(s.t.name, string(s.op), s.LevelName())
	}
	return assertResult[R](s.t.callAt(s.op, recv, s.idx-1))
}

// assertResult recovers the concrete result type at the call boundary.
// A nil result is treated as the zero value of R.
func assertResult[R any](v Erased) R {
	if v == nil {
		var zero R
		return zero
	}
	return v.(R)
}

// Panic helpers are extracted as noinline functions so that the dispatch
// path remains inlineable.

//go:noinline
func unknownOp(hierarchy, op string) {
	panic("heir: unknown operation " + op + " in hierarchy " + hierarchy)
}

//go:noinline
func unimplementedOp(hierarchy, level, op string) {
	panic("heir: unimplemented abstract operation " + op + " declared at level " + level + " of hierarchy " + hierarchy)
}

//go:noinline
func noParent(hierarchy, op, level string) {
	panic("heir: operation " + op + " has no parent above level " + level + " in hierarchy " + hierarchy)
}
