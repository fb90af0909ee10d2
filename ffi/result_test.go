package ffi

import (
	"testing"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/wippyai/ethdev/errors"
)

func TestUint32(t *testing.T) {
	tests := []struct {
		name     string
		rc       int32
		expected uint32
		wantErr  bool
	}{
		{"zero", 0, 0, false},
		{"count", 42, 42, false},
		{"negative_one", -1, 0, true},
		{"enodev", -int32(unix.ENODEV), 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Uint32(tt.rc, func(code int32) error {
				return errors.NegativeReturn("rte_eal_init", code)
			})
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				e, ok := err.(*errors.Error)
				if !ok {
					t.Fatalf("error type %T, expected *errors.Error", err)
				}
				if e.Code != tt.rc {
					t.Errorf("code = %d, expected %d", e.Code, tt.rc)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Uint32 = %d, expected %d", got, tt.expected)
			}
		})
	}
}

func TestUint32_LazyConstructor(t *testing.T) {
	calls := 0
	errf := func(code int32) error {
		calls++
		return errors.NegativeReturn("rte_eth_dev_socket_id", code)
	}

	if _, err := Uint32(3, errf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 0 {
		t.Errorf("constructor ran %d times on success, expected 0", calls)
	}

	_, err := Uint32(-int32(unix.EINVAL), errf)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if calls != 1 {
		t.Errorf("constructor ran %d times on failure, expected 1", calls)
	}
	if got := err.(*errors.Error).Errno(); got != unix.EINVAL {
		t.Errorf("errno = %v, expected EINVAL", got)
	}
}

func TestPtr(t *testing.T) {
	type pool struct{ n int }
	nullErr := func(*pool) error { return errors.NullPointer("rte_pktmbuf_pool_create") }

	p := &pool{n: 7}
	got, err := Ptr(p, nullErr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != p {
		t.Errorf("pointer changed identity: %p, expected %p", got, p)
	}

	got, err = Ptr(nil, nullErr)
	if err == nil {
		t.Fatal("expected error for null pointer, got nil")
	}
	if got != nil {
		t.Errorf("got %p alongside error, expected nil", got)
	}
	if kind := err.(*errors.Error).Kind; kind != errors.KindNullPointer {
		t.Errorf("kind = %s, expected %s", kind, errors.KindNullPointer)
	}
}

func TestPointer(t *testing.T) {
	var buf [8]byte
	p := unsafe.Pointer(&buf[0])
	nullErr := func(unsafe.Pointer) error { return errors.NullPointer("rte_mempool_lookup") }

	got, err := Pointer(p, nullErr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != p {
		t.Errorf("pointer changed identity: %p, expected %p", got, p)
	}

	if _, err := Pointer(nil, nullErr); err == nil {
		t.Fatal("expected error for null pointer, got nil")
	}
}

func TestCheck(t *testing.T) {
	errf := func(code int32) error { return errors.NegativeReturn("rte_eth_dev_start", code) }

	if err := Check(0, errf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Check(5, errf); err != nil {
		t.Fatalf("positive return should succeed: %v", err)
	}

	err := Check(-int32(unix.ENOTSUP), errf)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	e := err.(*errors.Error)
	if e.Kind != errors.KindNegativeReturn {
		t.Errorf("kind = %s, expected %s", e.Kind, errors.KindNegativeReturn)
	}
	if e.Errno() != unix.ENOTSUP {
		t.Errorf("errno = %v, expected ENOTSUP", e.Errno())
	}
}
