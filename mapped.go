// SPDX-License-Identifier: GPL-3.0-or-later

package pipe

import "github.com/fatih/structs"

// mappedSeg is the leaf behind [NewMapped]: exit_cast is m.Find,
// entry_cast is m.RFind, and Inject runs exit_cast.
type mappedSeg[From, To any] struct {
	m AssocMap[From, To]
}

var (
	_ Injector[int, string]    = (*mappedSeg[int, string])(nil)
	_ ExitCaster[int, string]  = (*mappedSeg[int, string])(nil)
	_ EntryCaster[int, string] = (*mappedSeg[int, string])(nil)
)

func (s *mappedSeg[From, To]) Inject(in From) To {
	return s.m.Find(in)
}

func (s *mappedSeg[From, To]) ExitCast(in From) To {
	return s.m.Find(in)
}

func (s *mappedSeg[From, To]) EntryCast(out To) From {
	return s.m.RFind(out)
}

// NewMapped returns a segment whose exit_cast is m.Find and whose
// entry_cast is m.RFind, for any of [IndexMap], [OrderedMap], or
// [RandomMap].
func NewMapped[From, To any](m AssocMap[From, To]) Segment[From, To] {
	return Wrap[From, To](&mappedSeg[From, To]{m: m})
}

// MappedFromStruct builds a field-name-to-value [AssocMap] from an
// arbitrary struct using reflection-based field extraction, letting
// [NewMapped] look a struct's exported field values up by field name
// (and, via RFind, recover a field name from one of its values).
func MappedFromStruct(s any) AssocMap[string, any] {
	fields := structs.Map(s)
	pairs := make([]entry[string, any], 0, len(fields))
	for _, name := range structs.Names(s) {
		v, ok := fields[name]
		if !ok {
			continue
		}
		pairs = append(pairs, IndexMapEntry[string, any](name, v))
	}
	return NewIndexMap(pairs...)
}
