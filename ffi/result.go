package ffi

import "unsafe"

// Ptr converts a nullable native pointer into a checked Go pointer. On a
// nil return the error constructor runs with the raw value; otherwise the
// pointer passes through untouched. Ownership follows the native call:
// pointers from create-style calls belong to the caller, pointers from
// lookup-style calls stay with the driver.
func Ptr[T any](p *T, errf func(*T) error) (*T, error) {
	if p == nil {
		return nil, errf(p)
	}
	return p, nil
}

// Pointer is Ptr for untyped native pointers.
func Pointer(p unsafe.Pointer, errf func(unsafe.Pointer) error) (unsafe.Pointer, error) {
	if p == nil {
		return nil, errf(p)
	}
	return p, nil
}

// Uint32 converts an errno-style native return into a count. A negative
// value runs the error constructor with the raw code; a non-negative
// value converts to its unsigned magnitude.
func Uint32(rc int32, errf func(int32) error) (uint32, error) {
	if rc < 0 {
		return 0, errf(rc)
	}
	return uint32(rc), nil
}

// Check is Uint32 for calls whose non-negative return carries no meaning
// beyond success.
func Check(rc int32, errf func(int32) error) error {
	_, err := Uint32(rc, errf)
	return err
}
