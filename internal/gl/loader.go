package gl

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/ebitengine/purego"
)

// ErrMissingProc is returned by Load when an entry point cannot be resolved.
var ErrMissingProc = errors.New("missing OpenGL entry point")

// ProcAddressFunc resolves an entry point of the current context, returning
// nil when it is not available.
type ProcAddressFunc func(name string) unsafe.Pointer

type openGL struct {
	clearColor func(float32, float32, float32, float32)
	clear      func(uint32)
	viewport   func(int32, int32, int32, int32)
	enable     func(uint32)
	disable    func(uint32)
	blendFunc  func(uint32, uint32)
	getError   func() uint32
	getString  func(uint32) *byte
}

func (gl *openGL) ClearColor(r, g, b, a float32) {
	gl.clearColor(r, g, b, a)
}

func (gl *openGL) Clear(mask uint32) {
	gl.clear(mask)
}

func (gl *openGL) Viewport(x, y, width, height int32) {
	gl.viewport(x, y, width, height)
}

func (gl *openGL) Enable(cap uint32) {
	gl.enable(cap)
}

func (gl *openGL) Disable(cap uint32) {
	gl.disable(cap)
}

func (gl *openGL) BlendFunc(sfactor, dfactor uint32) {
	gl.blendFunc(sfactor, dfactor)
}

func (gl *openGL) GetError() uint32 {
	return gl.getError()
}

func (gl *openGL) GetString(name uint32) string {
	return gostring(gl.getString(name))
}

// Load binds the entry points of the current context. The window owning the
// context supplies proc, typically Window.ProcAddress.
func Load(proc ProcAddressFunc) (OpenGL, error) {
	gl := &openGL{}
	entries := []struct {
		dst  any
		name string
	}{
		{&gl.clearColor, "glClearColor"},
		{&gl.clear, "glClear"},
		{&gl.viewport, "glViewport"},
		{&gl.enable, "glEnable"},
		{&gl.disable, "glDisable"},
		{&gl.blendFunc, "glBlendFunc"},
		{&gl.getError, "glGetError"},
		{&gl.getString, "glGetString"},
	}

	// Resolve everything before binding so a missing symbol leaves nothing
	// half registered.
	addrs := make([]uintptr, len(entries))
	for i, e := range entries {
		ptr := proc(e.name)
		if ptr == nil {
			return nil, fmt.Errorf("%w: %s", ErrMissingProc, e.name)
		}
		addrs[i] = uintptr(ptr)
	}
	for i, e := range entries {
		purego.RegisterFunc(e.dst, addrs[i])
	}
	return gl, nil
}
