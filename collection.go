// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package heir

// Collection adapters for heterogeneous storage. The open-set variant
// stores mixed concrete types behind one interface: each element lives in
// its own indirection slot (concrete sizes differ), iteration goes
// through ordinary dynamic dispatch, and concrete identity is erased
// except through the interface. For a fixed type set, prefer the
// closed-set variant ([Either], [Union3]) and match statically.

// Collection is the open-set heterogeneous container: a slice of
// interface values of mixed concrete types.
type Collection[I any] []I

// Len returns the number of elements.
func (c Collection[I]) Len() int { return len(c) }

// Each invokes f on every element in order.
func (c Collection[I]) Each(f func(I)) {
	for _, v := range c {
		f(v)
	}
}

// Invoke applies f to every element in order and collects the results.
// Invoking an operation through the collection is indistinguishable from
// invoking it on each element individually.
func Invoke[R, I any](c Collection[I], f func(I) R) []R {
	out := make([]R, 0, len(c))
	for _, v := range c {
		out = append(out, f(v))
	}
	return out
}

// Object erases the pairing of a concrete receiver with its resolved
// [Table], so table-dispatched values of different concrete types — even
// from different hierarchies — can share one collection. Concrete
// identity is recoverable only through the operations the table defines.
type Object interface {
	// Call dispatches op on the bound receiver through the bound table.
	Call(op Op) Erased

	// Has reports whether the bound table defines op.
	Has(op Op) bool
}

type boundObject[T any] struct {
	t    *Table[T]
	recv T
}

func (o boundObject[T]) Call(op Op) Erased {
	bs := o.t.ops[op]
	if len(bs) == 0 {
		unknownOp(o.t.name, string(op))
	}
	return o.t.callAt(op, o.recv, len(bs)-1)
}

func (o boundObject[T]) Has(op Op) bool {
	return o.t.Has(op)
}

// BindObject pairs a receiver with its resolved table behind the
// type-erased [Object] interface.
func BindObject[T any](t *Table[T], recv T) Object {
	return boundObject[T]{t: t, recv: recv}
}

// CallObject dispatches op on a bound object and recovers the concrete
// result type at the call boundary.
func CallObject[R any](o Object, op Op) R {
	return assertResult[R](o.Call(op))
}
