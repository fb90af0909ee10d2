package filter

import (
	"context"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/ethdev/errors"
)

// Module is a compiled filter program ready to instantiate.
type Module struct {
	runtime  wazero.Runtime
	compiled wazero.CompiledModule
}

// Close releases the compiled code. Instances created from the module
// keep working until closed themselves.
func (m *Module) Close(ctx context.Context) error {
	return m.compiled.Close(ctx)
}

// Instantiate creates an isolated filter instance with its own linear
// memory. Instances are independent; create one per goroutine.
func (m *Module) Instantiate(ctx context.Context) (*Filter, error) {
	mod, err := m.runtime.InstantiateModule(ctx, m.compiled,
		wazero.NewModuleConfig().WithName(""))
	if err != nil {
		return nil, errors.CallFailed("filter.Instantiate", err)
	}
	mem := mod.Memory()
	if mem == nil {
		_ = mod.Close(ctx)
		return nil, errors.BadArgument("filter.Instantiate", "guest exports no memory")
	}
	return &Filter{
		module: mod,
		memory: mem,
		alloc:  mod.ExportedFunction(allocExport),
		filter: mod.ExportedFunction(filterExport),
	}, nil
}

// Filter is one instantiated guest. It is not safe for concurrent use.
type Filter struct {
	module api.Module
	memory api.Memory
	alloc  api.Function
	filter api.Function
}

// Keep copies frame into the guest and asks it to judge. A nonzero
// return from the guest keeps the frame.
func (f *Filter) Keep(ctx context.Context, frame []byte) (bool, error) {
	results, err := f.alloc.Call(ctx, uint64(len(frame)))
	if err != nil {
		return false, errors.CallFailed("filter.alloc", err)
	}
	ptr := uint32(results[0])
	if len(frame) > 0 && !f.memory.Write(ptr, frame) {
		return false, errors.BadArgument("filter.Keep", "guest allocator returned memory out of bounds")
	}
	results, err = f.filter.Call(ctx, uint64(ptr), uint64(len(frame)))
	if err != nil {
		return false, errors.CallFailed("filter.filter", err)
	}
	return uint32(results[0]) != 0, nil
}

// Close releases the instance and its memory.
func (f *Filter) Close(ctx context.Context) error {
	return f.module.Close(ctx)
}
