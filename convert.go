// SPDX-License-Identifier: GPL-3.0-or-later

package pipe

// Converter is a stateless bidirectional conversion between I and O,
// supplied to [NewConvert].
type Converter[I, O any] interface {
	ExitCast(I) O
	EntryCast(O) I
}

// convertSeg is the leaf behind [NewConvert]: wraps a [Converter],
// running it forward via Inject/ExitCast and backward via EntryCast.
type convertSeg[I, O any] struct {
	conv Converter[I, O]
}

var (
	_ Injector[int, string]    = (*convertSeg[int, string])(nil)
	_ EntryCaster[int, string] = (*convertSeg[int, string])(nil)
	_ ExitCaster[int, string]  = (*convertSeg[int, string])(nil)
)

func (c *convertSeg[I, O]) Inject(in I) O {
	return c.conv.ExitCast(in)
}

func (c *convertSeg[I, O]) ExitCast(in I) O {
	return c.conv.ExitCast(in)
}

func (c *convertSeg[I, O]) EntryCast(out O) I {
	return c.conv.EntryCast(out)
}

// NewConvert returns a segment wrapping a stateless [Converter] between
// I and O.
func NewConvert[I, O any](conv Converter[I, O]) Segment[I, O] {
	return Wrap[I, O](&convertSeg[I, O]{conv: conv})
}

// ConverterFunc builds a [Converter] from a pair of plain functions.
type ConverterFunc[I, O any] struct {
	ToFunc   func(I) O
	FromFunc func(O) I
}

var _ Converter[int, string] = ConverterFunc[int, string]{}

// ExitCast implements [Converter].
func (c ConverterFunc[I, O]) ExitCast(in I) O {
	return c.ToFunc(in)
}

// EntryCast implements [Converter].
func (c ConverterFunc[I, O]) EntryCast(out O) I {
	return c.FromFunc(out)
}
