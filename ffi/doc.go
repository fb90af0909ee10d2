// Package ffi converts the native driver's raw return conventions into
// idiomatic Go values.
//
// The driver signals through three shapes: nullable pointers, negative
// errno-style integers, and NUL-terminated byte strings. Each shape has
// one conversion here, and every call site in the binding routes its raw
// return through one of them:
//
//	mp, err := ffi.Ptr(raw, func(*abi.Mempool) error { ... })   // *T
//	p, err := ffi.Pointer(raw, func(unsafe.Pointer) error { ... })
//	n, err := ffi.Uint32(rc, func(code int32) error { ... })    // int32
//	err := ffi.Check(rc, errf)                                  // discard count
//
// The error constructor runs only on the failure path; success costs a
// single comparison.
//
// Text crosses the boundary through GoString/BytesToString (decode) and
// CString (encode). Decode never fails the caller: invalid UTF-8 logs one
// warning and yields "". Encode fails loudly when the input contains an
// interior NUL, because the native convention cannot represent it.
//
// All conversions are stateless and safe for concurrent use.
package ffi
