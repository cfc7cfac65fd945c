package bebop

// Frame is one scope: a mutable name-to-value table.
type Frame map[string]Value

// Copy returns a deep copy of the frame.
func (f Frame) Copy() Frame {
	out := make(Frame, len(f))
	for name, v := range f {
		out[name] = v.Copy()
	}
	return out
}

// Env is an explicit stack of frames. The outermost frame (index 0) is the
// global scope; lookups walk from the innermost frame outward. Values cross
// the boundary by copy, so nothing a caller holds aliases a stored binding.
type Env struct {
	frames []Frame
}

func NewEnv() *Env { return &Env{} }

// Push adds f as the new innermost frame. A nil frame pushes an empty one.
func (e *Env) Push(f Frame) {
	if f == nil {
		f = Frame{}
	}
	e.frames = append(e.frames, f)
}

// Pop removes and returns the innermost frame.
func (e *Env) Pop() (Frame, bool) {
	if len(e.frames) == 0 {
		return nil, false
	}
	f := e.frames[len(e.frames)-1]
	e.frames = e.frames[:len(e.frames)-1]
	return f, true
}

// Peek returns the innermost frame without removing it.
func (e *Env) Peek() (Frame, bool) {
	if len(e.frames) == 0 {
		return nil, false
	}
	return e.frames[len(e.frames)-1], true
}

// Depth returns the number of frames on the stack.
func (e *Env) Depth() int { return len(e.frames) }

// Insert binds name in the innermost frame. No-op on an empty environment.
func (e *Env) Insert(name string, v Value) {
	if len(e.frames) == 0 {
		return
	}
	e.frames[len(e.frames)-1][name] = v
}

// InsertGlobal binds name in the outermost frame. No-op on an empty
// environment.
func (e *Env) InsertGlobal(name string, v Value) {
	if len(e.frames) == 0 {
		return
	}
	e.frames[0][name] = v
}

// Get looks name up from the innermost frame outward. The returned value is
// a private copy; mutating it never touches the stored binding.
func (e *Env) Get(name string) (Value, bool) {
	for i := len(e.frames) - 1; i >= 0; i-- {
		if v, ok := e.frames[i][name]; ok {
			return v.Copy(), true
		}
	}
	return Value{}, false
}

// Copy returns a deep copy of the whole stack.
func (e *Env) Copy() *Env {
	frames := make([]Frame, len(e.frames))
	for i, f := range e.frames {
		frames[i] = f.Copy()
	}
	return &Env{frames: frames}
}
