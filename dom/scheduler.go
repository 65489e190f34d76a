//go:build js || wasm

package dom

import (
	"syscall/js"

	"github.com/vcrobe/nojs-shell/scheduler"
)

// Scheduler defers work to the browser event loop: ticks run as microtasks,
// frames on requestAnimationFrame.
type Scheduler struct{}

// Compile-time assertion to ensure Scheduler implements the scheduler.Scheduler interface.
var _ scheduler.Scheduler = Scheduler{}

func (Scheduler) NextTick(fn func()) {
	once("queueMicrotask", fn)
}

func (Scheduler) NextFrame(fn func()) {
	once("requestAnimationFrame", fn)
}

// once schedules fn through a global function and releases the callback after
// its single call.
func once(method string, fn func()) {
	var cb js.Func
	cb = js.FuncOf(func(this js.Value, args []js.Value) any {
		cb.Release()
		fn()
		return nil
	})
	js.Global().Call(method, cb)
}

// StateID returns the page id stored in history.state, or 0.
func StateID() int {
	state := js.Global().Get("history").Get("state")
	if !state.Truthy() {
		return 0
	}
	id := state.Get("__id__")
	if id.Type() != js.TypeNumber {
		return 0
	}
	return id.Int()
}
