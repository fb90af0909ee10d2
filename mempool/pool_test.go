package mempool

import (
	"bytes"
	"testing"

	"github.com/wippyai/ethdev/abi"
	"github.com/wippyai/ethdev/errors"
	"github.com/wippyai/ethdev/internal/driver"
)

func fakeDriver(t *testing.T, mutate func(*driver.API)) {
	t.Helper()
	api := *driver.Get()
	mutate(&api)
	t.Cleanup(driver.Set(api))
}

func TestCreatePktPool(t *testing.T) {
	native := &abi.Mempool{}
	var gotName []byte
	var gotN, gotCache uint32
	var gotRoom uint16
	var gotSocket int32

	fakeDriver(t, func(api *driver.API) {
		api.PktmbufPoolCreate = func(name []byte, n, cacheSize uint32, dataRoomSize uint16, socketID int32) *abi.Mempool {
			gotName = append([]byte(nil), name...)
			gotN, gotCache, gotRoom, gotSocket = n, cacheSize, dataRoomSize, socketID
			return native
		}
	})

	p, err := CreatePktPool("mb_pool_0", 8192, 256, 2048, -1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(gotName, []byte("mb_pool_0\x00")) {
		t.Errorf("driver received %q, expected NUL-terminated name", gotName)
	}
	if gotN != 8192 || gotCache != 256 || gotRoom != 2048 || gotSocket != -1 {
		t.Errorf("driver received %d/%d/%d/%d, expected 8192/256/2048/-1",
			gotN, gotCache, gotRoom, gotSocket)
	}
	if !p.Owned() {
		t.Error("created pool is not owned")
	}
	mp, err := p.Handle()
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if mp != native {
		t.Errorf("Handle = %p, expected %p", mp, native)
	}
}

func TestCreatePktPool_Null(t *testing.T) {
	fakeDriver(t, func(api *driver.API) {
		api.PktmbufPoolCreate = func([]byte, uint32, uint32, uint16, int32) *abi.Mempool {
			return nil
		}
	})

	_, err := CreatePktPool("mb_pool_0", 8192, 256, 2048, -1)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if kind := err.(*errors.Error).Kind; kind != errors.KindNullPointer {
		t.Errorf("kind = %s, expected %s", kind, errors.KindNullPointer)
	}
}

func TestCreatePktPool_BadName(t *testing.T) {
	fakeDriver(t, func(api *driver.API) {
		api.PktmbufPoolCreate = func([]byte, uint32, uint32, uint16, int32) *abi.Mempool {
			t.Fatal("driver called with unencodable name")
			return nil
		}
	})

	_, err := CreatePktPool("mb\x00pool", 8192, 256, 2048, -1)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if kind := err.(*errors.Error).Kind; kind != errors.KindEmbeddedNUL {
		t.Errorf("kind = %s, expected %s", kind, errors.KindEmbeddedNUL)
	}
}

func TestLookup(t *testing.T) {
	native := &abi.Mempool{}
	fakeDriver(t, func(api *driver.API) {
		api.MempoolLookup = func(name []byte) *abi.Mempool {
			if bytes.Equal(name, []byte("mb_pool_0\x00")) {
				return native
			}
			return nil
		}
	})

	p, err := Lookup("mb_pool_0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Owned() {
		t.Error("looked-up pool claims ownership")
	}

	err = p.Free()
	if err == nil {
		t.Fatal("expected Free on borrowed handle to fail, got nil")
	}
	if kind := err.(*errors.Error).Kind; kind != errors.KindBadArgument {
		t.Errorf("kind = %s, expected %s", kind, errors.KindBadArgument)
	}

	if _, err := Lookup("absent"); err == nil {
		t.Fatal("expected error for unknown pool, got nil")
	}
}

func TestPoolCounts(t *testing.T) {
	native := &abi.Mempool{}
	fakeDriver(t, func(api *driver.API) {
		api.PktmbufPoolCreate = func([]byte, uint32, uint32, uint16, int32) *abi.Mempool {
			return native
		}
		api.MempoolAvailCount = func(mp *abi.Mempool) uint32 { return 8000 }
		api.MempoolInUseCount = func(mp *abi.Mempool) uint32 { return 192 }
	})

	p, err := CreatePktPool("mb_pool_0", 8192, 256, 2048, -1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	avail, err := p.AvailCount()
	if err != nil {
		t.Fatalf("AvailCount: %v", err)
	}
	inUse, err := p.InUseCount()
	if err != nil {
		t.Fatalf("InUseCount: %v", err)
	}
	if avail != 8000 || inUse != 192 {
		t.Errorf("counts = %d/%d, expected 8000/192", avail, inUse)
	}
}

func TestPoolFree(t *testing.T) {
	native := &abi.Mempool{}
	frees := 0
	fakeDriver(t, func(api *driver.API) {
		api.PktmbufPoolCreate = func([]byte, uint32, uint32, uint16, int32) *abi.Mempool {
			return native
		}
		api.MempoolFree = func(mp *abi.Mempool) { frees++ }
	})

	p, err := CreatePktPool("mb_pool_0", 8192, 256, 2048, -1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := p.Free(); err != nil {
		t.Fatalf("Free: %v", err)
	}
	if frees != 1 {
		t.Fatalf("driver freed %d times, expected 1", frees)
	}

	// Released handle: methods report closed, repeat Free stays a no-op.
	if _, err := p.AvailCount(); err == nil {
		t.Fatal("expected error after Free, got nil")
	} else if kind := err.(*errors.Error).Kind; kind != errors.KindClosed {
		t.Errorf("kind = %s, expected %s", kind, errors.KindClosed)
	}
	if _, err := p.Handle(); err == nil {
		t.Fatal("expected Handle after Free to fail, got nil")
	}
	if err := p.Free(); err != nil {
		t.Fatalf("second Free: %v", err)
	}
	if frees != 1 {
		t.Errorf("driver freed %d times after repeat Free, expected 1", frees)
	}
}
