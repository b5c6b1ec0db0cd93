package machine

import (
	"github.com/dolthub/swiss"

	"ippcode23/lang/types"
)

// frame is a single variable frame: a mapping from declared variable name to
// its current value (or types.Uninit if declared but never assigned). A
// swiss.Map is used instead of a builtin Go map because frames are created
// and thrown away frequently (CREATEFRAME, PUSHFRAME snapshots) and swiss
// tables give cheap allocation and cloning for the small frames typical of
// IPPcode23 programs.
type frame struct {
	vars *swiss.Map[string, types.Value]
}

func newFrame() *frame {
	return &frame{vars: swiss.NewMap[string, types.Value](8)}
}

// declare adds name to the frame as Uninit. It reports whether name was
// already present (in which case the frame is left unchanged).
func (f *frame) declare(name string) (redeclared bool) {
	if _, ok := f.vars.Get(name); ok {
		return true
	}
	f.vars.Put(name, types.Uninit)
	return false
}

// get returns the current value of name and whether it is declared at all.
func (f *frame) get(name string) (types.Value, bool) {
	return f.vars.Get(name)
}

// set overwrites the value of an already-declared name. It reports whether
// name was declared; if not, the frame is left unchanged.
func (f *frame) set(name string, v types.Value) (declared bool) {
	if _, ok := f.vars.Get(name); !ok {
		return false
	}
	f.vars.Put(name, v)
	return true
}

// clone returns a deep (value-level) copy of f, giving PUSHFRAME its
// snapshot semantics: mutations to the pushed local frame must never be
// observed through a later CREATEFRAME/PUSHFRAME of the temporary frame.
func (f *frame) clone() *frame {
	cp := newFrame()
	f.vars.Iter(func(k string, v types.Value) bool {
		cp.vars.Put(k, v)
		return false
	})
	return cp
}
