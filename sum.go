// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package heir

// Closed-set sum types. A tagged union replaces interface + indirection
// when the concrete type set is fixed: dispatch happens statically at the
// match site, and adding a variant breaks every consumer by design.
//
// Either also serves as the explicit success/failure result for virtual
// operations that can legitimately fail — the framework itself never
// fails for data-dependent reasons, so such failures belong in the
// operation's own signature.

// Either represents a value that is either Left (failure) or Right
// (success), and doubles as the two-variant closed-set element.
type Either[E, A any] struct {
	isRight bool
	left    E
	right   A
}

// Left creates a Left (failure) value.
func Left[E, A any](e E) Either[E, A] {
	return Either[E, A]{isRight: false, left: e}
}

// Right creates a Right (success) value.
func Right[E, A any](a A) Either[E, A] {
	return Either[E, A]{isRight: true, right: a}
}

// IsRight returns true if this is a Right value.
func (e Either[E, A]) IsRight() bool {
	return e.isRight
}

// IsLeft returns true if this is a Left value.
func (e Either[E, A]) IsLeft() bool {
	return !e.isRight
}

// GetRight returns the Right value and true, or zero and false.
func (e Either[E, A]) GetRight() (A, bool) {
	if e.isRight {
		return e.right, true
	}
	var zero A
	return zero, false
}

// GetLeft returns the Left value and true, or zero and false.
func (e Either[E, A]) GetLeft() (E, bool) {
	if !e.isRight {
		return e.left, true
	}
	var zero E
	return zero, false
}

// MatchEither pattern matches on the Either, calling onLeft or onRight.
func MatchEither[E, A, T any](e Either[E, A], onLeft func(E) T, onRight func(A) T) T {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// MapEither applies a function to the Right value.
func MapEither[E, A, B any](e Either[E, A], f func(A) B) Either[E, B] {
	if e.isRight {
		return Right[E](f(e.right))
	}
	return Left[E, B](e.left)
}

// FlatMapEither sequences two Either computations.
func FlatMapEither[E, A, B any](e Either[E, A], f func(A) Either[E, B]) Either[E, B] {
	if e.isRight {
		return f(e.right)
	}
	return Left[E, B](e.left)
}

// MapLeftEither applies a function to the Left value.
func MapLeftEither[E, F, A any](e Either[E, A], f func(E) F) Either[F, A] {
	if e.isRight {
		return Right[F](e.right)
	}
	return Left[F, A](f(e.left))
}

// Union3 is a closed-set tagged union of three variants.
type Union3[A, B, C any] struct {
	tag uint8
	a   A
	b   B
	c   C
}

// First creates a Union3 holding the first variant.
func First[A, B, C any](a A) Union3[A, B, C] {
	return Union3[A, B, C]{tag: 0, a: a}
}

// Second creates a Union3 holding the second variant.
func Second[A, B, C any](b B) Union3[A, B, C] {
	return Union3[A, B, C]{tag: 1, b: b}
}

// Third creates a Union3 holding the third variant.
func Third[A, B, C any](c C) Union3[A, B, C] {
	return Union3[A, B, C]{tag: 2, c: c}
}

// IsFirst returns true if the first variant is held.
func (u Union3[A, B, C]) IsFirst() bool { return u.tag == 0 }

// IsSecond returns true if the second variant is held.
func (u Union3[A, B, C]) IsSecond() bool { return u.tag == 1 }

// IsThird returns true if the third variant is held.
func (u Union3[A, B, C]) IsThird() bool { return u.tag == 2 }

// GetFirst returns the first variant and true, or zero and false.
func (u Union3[A, B, C]) GetFirst() (A, bool) {
	if u.tag == 0 {
		return u.a, true
	}
	var zero A
	return zero, false
}

// GetSecond returns the second variant and true, or zero and false.
func (u Union3[A, B, C]) GetSecond() (B, bool) {
	if u.tag == 1 {
		return u.b, true
	}
	var zero B
	return zero, false
}

// GetThird returns the third variant and true, or zero and false.
func (u Union3[A, B, C]) GetThird() (C, bool) {
	if u.tag == 2 {
		return u.c, true
	}
	var zero C
	return zero, false
}

// MatchUnion3 pattern matches on the Union3, calling the function for the
// held variant.
func MatchUnion3[A, B, C, T any](u Union3[A, B, C], onFirst func(A) T, onSecond func(B) T, onThird func(C) T) T {
	switch u.tag {
	case 0:
		return onFirst(u.a)
	case 1:
		return onSecond(u.b)
	default:
		return onThird(u.c)
	}
}
