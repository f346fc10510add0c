// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package heir_test

import (
	"testing"

	"code.hybscloud.com/heir"
)

// Compile-time discipline: the virtual interface is a plain Go interface,
// defaults chain by embedding level defaults structs, overrides shadow,
// and abstract operations are enforced by interface satisfaction.

// Level records.
type animalRecord struct {
	name string
}

func (r *animalRecord) animalRec() *animalRecord { return r }

type dogRecord struct {
	animalRecord
	breed string
}

func (r *dogRecord) dogRec() *dogRecord { return r }

type catRecord struct {
	animalRecord
	indoor bool
}

func (r *catRecord) catRec() *catRecord { return r }

type birdRecord struct {
	animalRecord
}

func (r *birdRecord) birdRec() *birdRecord { return r }

// Level capabilities.
type hasAnimal interface {
	animalRec() *animalRecord
}

type hasDog interface {
	hasAnimal
	dogRec() *dogRecord
}

type hasCat interface {
	hasAnimal
	catRec() *catRecord
}

type hasBird interface {
	hasAnimal
	birdRec() *birdRecord
}

// The virtual interface. sound is abstract: the root defaults struct
// omits it, so a leaf without an override does not satisfy animal.
type animal interface {
	describe() string
	sound() string
}

// Root level defaults.
type asAnimal[T hasAnimal] struct {
	heir.View[T]
}

func (a asAnimal[T]) describe() string {
	return "animal " + a.Deref().animalRec().name
}

// Dog level: overrides sound, augments describe with one parent call.
type asDog[T hasDog] struct {
	asAnimal[T]
}

func (d asDog[T]) sound() string { return "woof" }

func (d asDog[T]) describe() string {
	return d.asAnimal.describe() + ", a " + d.Deref().dogRec().breed
}

// Cat level: overrides sound only; describe chains to the root default.
type asCat[T hasCat] struct {
	asAnimal[T]
}

func (c asCat[T]) sound() string { return "meow" }

// Bird level: overrides sound only.
type asBird[T hasBird] struct {
	asAnimal[T]
}

func (b asBird[T]) sound() string { return "tweet" }

// Every leaf overrides every abstract operation, so satisfaction is
// checked here, at compile time.
var (
	_ animal = asDog[*dogRecord]{}
	_ animal = asCat[*catRecord]{}
	_ animal = asBird[*birdRecord]{}
)

func newDog(name, breed string) asDog[*dogRecord] {
	r := &dogRecord{animalRecord: animalRecord{name: name}, breed: breed}
	return asDog[*dogRecord]{asAnimal[*dogRecord]{heir.As(r)}}
}

func newCat(name string, indoor bool) asCat[*catRecord] {
	r := &catRecord{animalRecord: animalRecord{name: name}, indoor: indoor}
	return asCat[*catRecord]{asAnimal[*catRecord]{heir.As(r)}}
}

func newBird(name string) asBird[*birdRecord] {
	r := &birdRecord{animalRecord: animalRecord{name: name}}
	return asBird[*birdRecord]{asAnimal[*birdRecord]{heir.As(r)}}
}

func TestProtocolOverrideWithParentCall(t *testing.T) {
	d := newDog("Rex", "collie")

	got := d.describe()
	if got != "animal Rex, a collie" {
		t.Fatalf("got %q, want %q", got, "animal Rex, a collie")
	}
}

func TestProtocolDefaultChaining(t *testing.T) {
	// Cat never overrides describe: the call promotes through asCat to
	// the root default.
	c := newCat("Tom", true)

	got := c.describe()
	if got != "animal Tom" {
		t.Fatalf("got %q, want %q", got, "animal Tom")
	}
}

func TestProtocolOverriddenAbstract(t *testing.T) {
	if got := newDog("Rex", "collie").sound(); got != "woof" {
		t.Fatalf("got %q, want %q", got, "woof")
	}
	if got := newCat("Tom", true).sound(); got != "meow" {
		t.Fatalf("got %q, want %q", got, "meow")
	}
}

func TestProtocolLevelFreeze(t *testing.T) {
	// Wrapping the dog's record at the Animal level evaluates the root
	// default only, regardless of the override installed by asDog.
	d := newDog("Rex", "collie")
	frozen := asAnimal[*dogRecord]{heir.As(d.Deref())}

	got := frozen.describe()
	if got != "animal Rex" {
		t.Fatalf("got %q, want %q", got, "animal Rex")
	}

	// The polymorphic entry still selects the override.
	var a animal = d
	if got := a.describe(); got != "animal Rex, a collie" {
		t.Fatalf("got %q, want %q", got, "animal Rex, a collie")
	}
}

func TestProtocolParentCommutation(t *testing.T) {
	// The override's result equals its stated combination of the
	// operation resolved as if frozen at the parent level.
	d := newDog("Rex", "collie")
	frozen := asAnimal[*dogRecord]{heir.As(d.Deref())}

	want := frozen.describe() + ", a " + d.Deref().breed
	if got := d.describe(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestProtocolHeterogeneousCollection(t *testing.T) {
	c := heir.Collection[animal]{
		newDog("Rex", "collie"),
		newCat("Tom", true),
		newBird("Tweety"),
	}

	if c.Len() != 3 {
		t.Fatalf("got %d, want 3", c.Len())
	}

	got := heir.Invoke(c, animal.sound)
	want := []string{"woof", "meow", "tweet"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("element %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestProtocolCollectionIndependence(t *testing.T) {
	dog := newDog("Rex", "collie")
	cat := newCat("Tom", true)
	bird := newBird("Tweety")

	c := heir.Collection[animal]{dog, cat, bird}
	viaCollection := heir.Invoke(c, animal.describe)

	individual := []string{dog.describe(), cat.describe(), bird.describe()}
	for i := range individual {
		if viaCollection[i] != individual[i] {
			t.Fatalf("element %d: got %q, want %q", i, viaCollection[i], individual[i])
		}
	}
}

func TestProtocolClosedSetCollection(t *testing.T) {
	// Fixed type set: a tagged union replaces interface indirection, and
	// dispatch is static at the match site.
	zoo := []heir.Union3[asDog[*dogRecord], asCat[*catRecord], asBird[*birdRecord]]{
		heir.First[asDog[*dogRecord], asCat[*catRecord], asBird[*birdRecord]](newDog("Rex", "collie")),
		heir.Second[asDog[*dogRecord], asCat[*catRecord], asBird[*birdRecord]](newCat("Tom", true)),
		heir.Third[asDog[*dogRecord], asCat[*catRecord], asBird[*birdRecord]](newBird("Tweety")),
	}

	want := []string{"woof", "meow", "tweet"}
	for i, u := range zoo {
		got := heir.MatchUnion3(u,
			func(d asDog[*dogRecord]) string { return d.sound() },
			func(c asCat[*catRecord]) string { return c.sound() },
			func(b asBird[*birdRecord]) string { return b.sound() },
		)
		if got != want[i] {
			t.Fatalf("element %d: got %q, want %q", i, got, want[i])
		}
	}
}

func TestProtocolIndependentCapabilities(t *testing.T) {
	// A concrete type satisfies several unrelated capabilities side by
	// side; no shared ancestry is involved.
	d := newDog("Rex", "collie")

	var ha hasAnimal = d.Deref()
	var hd hasDog = d.Deref()
	if ha.animalRec().name != "Rex" {
		t.Fatalf("got %q, want %q", ha.animalRec().name, "Rex")
	}
	if hd.dogRec().breed != "collie" {
		t.Fatalf("got %q, want %q", hd.dogRec().breed, "collie")
	}
}
