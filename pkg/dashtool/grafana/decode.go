// SPDX-License-Identifier: AGPL-3.0-only

package grafana

import (
	stdjson "encoding/json"
	"reflect"
	"strconv"
	"unsafe"

	jsoniter "github.com/json-iterator/go"
	"github.com/modern-go/reflect2"
)

// json decodes dashboards leniently: a value of the wrong type is coerced when
// the conversion is obvious (numbers in strings, fractional grid positions) and
// dropped otherwise, leaving the field at its zero value. Dashboards exported by
// different Grafana versions and plugins disagree on many leaf types.
var json = newLenientAPI()

func newLenientAPI() jsoniter.API {
	api := jsoniter.Config{
		EscapeHTML:             true,
		SortMapKeys:            true,
		ValidateJsonRawMessage: true,
	}.Froze()
	api.RegisterExtension(&lenientExtension{})
	return api
}

var unmarshalerType = reflect.TypeOf((*stdjson.Unmarshaler)(nil)).Elem()

type lenientExtension struct {
	jsoniter.DummyExtension
}

func (lenientExtension) DecorateDecoder(typ reflect2.Type, decoder jsoniter.ValDecoder) jsoniter.ValDecoder {
	t := typ.Type1()
	// Types with their own UnmarshalJSON deal with odd shapes themselves.
	if t.Implements(unmarshalerType) || reflect.PtrTo(t).Implements(unmarshalerType) {
		return decoder
	}

	d := &lenientDecoder{typ: typ, kind: t.Kind(), decoder: decoder}
	if d.kind == reflect.Ptr {
		d.pointer = true
		d.kind = t.Elem().Kind()
		t = t.Elem()
	}

	switch {
	case d.kind == reflect.Slice && t.Elem().Kind() == reflect.Uint8:
		// Raw messages.
		return decoder
	case d.kind == reflect.Struct, d.kind == reflect.Map, d.kind == reflect.Slice, d.kind == reflect.Bool, d.kind == reflect.String,
		isInteger(d.kind), isFloat(d.kind):
		return d
	default:
		return decoder
	}
}

// lenientDecoder wraps the decoder of typ. kind is the kind of typ, or of the
// element typ points to when pointer is set.
type lenientDecoder struct {
	typ     reflect2.Type
	kind    reflect.Kind
	pointer bool
	decoder jsoniter.ValDecoder
}

func (d *lenientDecoder) Decode(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
	next := iter.WhatIsNext()
	if next == jsoniter.NilValue {
		d.decoder.Decode(ptr, iter)
		return
	}
	if d.pointer {
		d.decodePointer(ptr, next, iter)
		return
	}

	switch {
	case next == jsoniter.NumberValue && isInteger(d.kind):
		d.decodeNumber(ptr, string(iter.ReadNumber()), iter)
	case next == jsoniter.StringValue && isNumber(d.kind):
		d.decodeNumber(ptr, iter.ReadString(), iter)
	case next == jsoniter.NumberValue && d.kind == reflect.String:
		*(*string)(ptr) = string(iter.ReadNumber())
	case next == d.expected():
		d.decoder.Decode(ptr, iter)
	default:
		iter.Skip()
	}
}

// decodePointer leaves the pointer untouched when the value would be dropped,
// so that a mistyped optional field stays unset instead of pointing to a zero value.
func (d *lenientDecoder) decodePointer(ptr unsafe.Pointer, next jsoniter.ValueType, iter *jsoniter.Iterator) {
	switch {
	case next == d.expected(), next == jsoniter.NumberValue && d.kind == reflect.String:
		d.decoder.Decode(ptr, iter)
	case next == jsoniter.StringValue && isNumber(d.kind):
		text := iter.ReadString()
		if _, err := strconv.ParseFloat(text, 64); err != nil {
			return
		}
		d.decodeFrom(ptr, strconv.Quote(text), iter)
	default:
		iter.Skip()
	}
}

func (d *lenientDecoder) expected() jsoniter.ValueType {
	switch {
	case d.kind == reflect.Struct, d.kind == reflect.Map:
		return jsoniter.ObjectValue
	case d.kind == reflect.Slice:
		return jsoniter.ArrayValue
	case d.kind == reflect.Bool:
		return jsoniter.BoolValue
	case d.kind == reflect.String:
		return jsoniter.StringValue
	default:
		return jsoniter.NumberValue
	}
}

// decodeNumber decodes text as a number, truncating it for integer fields.
// Text that is not a number leaves the zero value.
func (d *lenientDecoder) decodeNumber(ptr unsafe.Pointer, text string, iter *jsoniter.Iterator) {
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		d.typ.UnsafeSet(ptr, d.typ.UnsafeNew())
		return
	}
	if isInteger(d.kind) {
		text = strconv.FormatInt(int64(f), 10)
	}
	if !d.decodeFrom(ptr, text, iter) {
		d.typ.UnsafeSet(ptr, d.typ.UnsafeNew())
	}
}

// decodeFrom runs the wrapped decoder on text and reports whether it succeeded.
func (d *lenientDecoder) decodeFrom(ptr unsafe.Pointer, text string, iter *jsoniter.Iterator) bool {
	sub := iter.Pool().BorrowIterator([]byte(text))
	defer iter.Pool().ReturnIterator(sub)
	d.decoder.Decode(ptr, sub)
	return sub.Error == nil
}

func isNumber(kind reflect.Kind) bool {
	return isInteger(kind) || isFloat(kind)
}

func isInteger(kind reflect.Kind) bool {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

func isFloat(kind reflect.Kind) bool {
	return kind == reflect.Float32 || kind == reflect.Float64
}
