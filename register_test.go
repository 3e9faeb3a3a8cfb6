package stf_test

import (
	"reflect"
	"testing"

	"github.com/maxatome/go-testdeep/td"

	"github.com/stewi1014/stf"
)

func TestRegisterDuplicate(t *testing.T) {
	r := stf.NewRegistry()
	td.CmpNoError(t, r.Register(tagPoint, "point", decodePoint))

	err := r.Register(tagPoint, "other point", decodePoint)
	cmpErrorIs(t, err, stf.ErrDuplicateTag)

	name, ok := r.Name(tagPoint)
	td.CmpTrue(t, ok)
	td.Cmp(t, name, "point")
}

func TestRegisterReservedTag(t *testing.T) {
	r := stf.NewRegistry()
	for _, tag := range []stf.Tag{stf.TagBool, stf.TagString, stf.TagBytes} {
		cmpErrorIs(t, r.Register(tag, "mine", decodePoint), stf.ErrDuplicateTag)
	}
}

func TestRegisterNil(t *testing.T) {
	cmpErrorIs(t, stf.NewRegistry().Register(100, "nothing", nil), stf.ErrBadType)
}

func TestMustRegisterPanics(t *testing.T) {
	r := stf.NewRegistry()
	r.MustRegister(tagPoint, "point", decodePoint)
	td.CmpPanic(t, func() { r.MustRegister(tagPoint, "point", decodePoint) }, td.Isa((*error)(nil)))
}

func TestLookupIdempotent(t *testing.T) {
	r := stf.NewRegistry()
	td.CmpNoError(t, r.Register(tagPoint, "point", decodePoint))

	first, err := r.Lookup(tagPoint)
	td.CmpNoError(t, err)
	want := reflect.ValueOf(first).Pointer()

	for i := 0; i < 3; i++ {
		fn, err := r.Lookup(tagPoint)
		td.CmpNoError(t, err)
		td.Cmp(t, reflect.ValueOf(fn).Pointer(), want)
	}

	r.Seal()
	fn, err := r.Lookup(tagPoint)
	td.CmpNoError(t, err)
	td.Cmp(t, reflect.ValueOf(fn).Pointer(), want)
}

func TestLookupUnknown(t *testing.T) {
	r := stf.NewRegistry()
	fn, err := r.Lookup(tagPoint)
	cmpErrorIs(t, err, stf.ErrUnknownType)
	td.CmpNil(t, fn)

	r.Seal()
	_, err = r.Lookup(tagPoint)
	cmpErrorIs(t, err, stf.ErrUnknownType)
}

func TestDecodeSealsRegistry(t *testing.T) {
	r := newTestRegistry(t)
	td.CmpFalse(t, r.Sealed())

	_, err := stf.NewDecoder(r, nil).Decode(pointArrayBytes)
	td.CmpNoError(t, err)
	td.CmpTrue(t, r.Sealed())

	cmpErrorIs(t, r.Register(50, "late", decodePoint), stf.ErrSealed)

	// sealing twice is harmless, and the table is unchanged.
	r.Seal()
	_, err = r.Lookup(tagShape)
	td.CmpNoError(t, err)
	_, err = r.Lookup(50)
	cmpErrorIs(t, err, stf.ErrUnknownType)
}

func TestTags(t *testing.T) {
	r := stf.NewRegistry()
	td.CmpNoError(t, r.Register(tagShape, "shape", decodeShape))
	td.CmpNoError(t, r.Register(tagPoint, "point", decodePoint))

	tags := r.Tags()
	td.Cmp(t, tags[:2], []stf.Tag{tagPoint, tagShape})
	td.CmpLen(t, tags, 15)
	td.Cmp(t, tags[2], stf.TagBool)

	r.Seal()
	td.Cmp(t, r.Tags(), tags)
}

func TestTagString(t *testing.T) {
	td.Cmp(t, stf.Tag(2).String(), "0x2")
	td.Cmp(t, stf.TagBool.String(), "0xffffff01")
}
