// SPDX-License-Identifier: EPL-2.0

package sound

import "reflect"

// Request says where a play comes from. Build it with At, From or FromAt.
// The zero Request has neither a position nor a source and plays nothing.
type Request struct {
	pos    Vec2
	hasPos bool
	source Entity
}

// At plays at a fixed position. Looped groups cannot be played this way.
func At(pos Vec2) Request { return Request{pos: pos, hasPos: true} }

// From plays at the current position of e. A nil e, typed or not, gives a
// request without a source.
func From(e Entity) Request { return Request{source: entityOrNil(e)} }

// FromAt plays at pos on behalf of e.
func FromAt(e Entity, pos Vec2) Request {
	return Request{pos: pos, hasPos: true, source: entityOrNil(e)}
}

// entityOrNil turns an interface holding a nil pointer (or other nil
// reference) into a plain nil.
func entityOrNil(e Entity) Entity {
	if e == nil {
		return nil
	}
	switch v := reflect.ValueOf(e); v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		if v.IsNil() {
			return nil
		}
	}
	return e
}

// Position returns the explicit position, else the source position.
func (r Request) Position() (Vec2, bool) {
	if r.hasPos {
		return r.pos, true
	}
	if r.source != nil {
		return r.source.Position(), true
	}
	return Vec2{}, false
}

// Source returns the emitting entity, or nil.
func (r Request) Source() Entity { return r.source }

// Outcome tells what Manager.Play did with a request.
type Outcome int

const (
	Played Outcome = iota
	Muted
	NoPosition
	Inaudible
	Suppressed
	NoClips
	Rejected // comes with an error
)

func (o Outcome) String() string {
	switch o {
	case Played:
		return "played"
	case Muted:
		return "muted"
	case NoPosition:
		return "no position"
	case Inaudible:
		return "inaudible"
	case Suppressed:
		return "suppressed"
	case NoClips:
		return "no clips"
	case Rejected:
		return "rejected"
	default:
		return "unknown"
	}
}
