package ffi

import (
	"bytes"
	"strings"
	"unicode/utf8"
	"unsafe"

	"go.uber.org/zap"

	"github.com/wippyai/ethdev/errors"
)

// GoString decodes the NUL-terminated byte string at p into a Go string.
// The bytes are copied; p is not retained.
//
// A nil pointer or invalid UTF-8 decodes to "" rather than failing the
// caller. Driver-supplied text is advisory and must never poison the read
// that carried it, so invalid input logs one warning and degrades.
func GoString(p unsafe.Pointer) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(p, n)) != 0 {
		n++
	}
	return decode(unsafe.Slice((*byte)(p), n))
}

// BytesToString decodes a NUL-terminated byte string held in a fixed-size
// native buffer, such as an extended statistic name. Bytes past the first
// NUL are ignored; a buffer with no NUL decodes whole.
func BytesToString(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return decode(b)
}

func decode(b []byte) string {
	if !utf8.Valid(b) {
		Logger().Warn("native string is not valid UTF-8",
			zap.Int("len", len(b)),
			zap.Binary("prefix", preview(b)))
		return ""
	}
	return string(b)
}

func preview(b []byte) []byte {
	const max = 16
	if len(b) > max {
		return b[:max]
	}
	return b
}

// CString encodes s as a NUL-terminated byte string for the driver. The
// backing array must stay alive for the duration of the native call it is
// passed to; callers hand it straight to the driver seam.
//
// Interior NUL bytes cannot be represented on the native side and fail
// with KindEmbeddedNUL.
func CString(s string) ([]byte, error) {
	if i := strings.IndexByte(s, 0); i >= 0 {
		return nil, errors.EmbeddedNUL("ffi.CString", i)
	}
	buf := make([]byte, len(s)+1)
	copy(buf, s)
	return buf, nil
}
