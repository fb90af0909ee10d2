// Package filter runs WebAssembly packet filters over device frames.
//
// A guest module exports two functions and a memory:
//
//	alloc(size: i32) -> i32           reserve size bytes, return the offset
//	filter(ptr: i32, len: i32) -> i32 judge the frame; nonzero keeps it
//
// The host copies each frame into guest memory through alloc and calls
// filter on the copy, so guests can never touch device buffers. Frame
// data flows one way: no result crosses back except the verdict.
package filter

import (
	"context"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/wippyai/ethdev/errors"
)

const (
	allocExport  = "alloc"
	filterExport = "filter"
)

// Engine compiles guest filter modules. One engine per process is
// typical; modules compiled through an engine share its cache and close
// with it.
type Engine struct {
	runtime wazero.Runtime
}

// NewEngine creates an engine.
func NewEngine(ctx context.Context) *Engine {
	return &Engine{runtime: wazero.NewRuntime(ctx)}
}

// Close releases the engine and every module compiled through it.
func (e *Engine) Close(ctx context.Context) error {
	return e.runtime.Close(ctx)
}

// Compile validates and compiles a guest module. Both required exports
// must be present with the right shapes; a module missing either fails
// with a MissingExportsError naming all of them.
func (e *Engine) Compile(ctx context.Context, wasmBytes []byte) (*Module, error) {
	compiled, err := e.runtime.CompileModule(ctx, wasmBytes)
	if err != nil {
		return nil, errors.CallFailed("filter.Compile", err)
	}

	exports := compiled.ExportedFunctions()
	var missing []errors.MissingExport
	if def, ok := exports[allocExport]; !ok || !isI32Sig(def, 1, 1) {
		missing = append(missing, errors.MissingExport{Name: allocExport, Signature: "(i32) -> i32"})
	}
	if def, ok := exports[filterExport]; !ok || !isI32Sig(def, 2, 1) {
		missing = append(missing, errors.MissingExport{Name: filterExport, Signature: "(i32, i32) -> i32"})
	}
	if len(missing) > 0 {
		_ = compiled.Close(ctx)
		return nil, errors.NewMissingExportsError(missing)
	}

	Logger().Debug("filter module compiled", zap.Int("size", len(wasmBytes)))
	return &Module{runtime: e.runtime, compiled: compiled}, nil
}

func isI32Sig(def api.FunctionDefinition, nParams, nResults int) bool {
	params, results := def.ParamTypes(), def.ResultTypes()
	if len(params) != nParams || len(results) != nResults {
		return false
	}
	for _, vt := range params {
		if vt != api.ValueTypeI32 {
			return false
		}
	}
	for _, vt := range results {
		if vt != api.ValueTypeI32 {
			return false
		}
	}
	return true
}
