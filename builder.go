// SPDX-License-Identifier: GPL-3.0-or-later

package pipe

// Entry starts building a pipe over input/output type T. The returned
// Segment is an implicit [NewIdentity] leaf, matching spec.md §4.3's
// rule that "if Entry<T> is followed directly by a terminator, an
// implicit Identity<T> segment is inserted" — here that identity is
// always present, and chaining a real first segment after it with
// [Then] simply adds one (cheap) extra hop rather than requiring a
// separate entry-marker type.
func Entry[T any]() Segment[T, T] {
	return NewIdentity[T]()
}

// Cap finalizes seg as a [CappedPipe] that the caller owns exclusively.
// cfg is optional; pass nil to use [NewConfig]'s defaults.
func Cap[I, O any](seg Segment[I, O], cfg *Config) *CappedPipe[I, O] {
	return newCappedPipe(seg, cfg)
}

// Exit finalizes seg as an [OpenPipe] that can later be
// [OpenPipe.Connect]ed to a downstream entry. cfg is optional.
func Exit[I, O any](seg Segment[I, O], cfg *Config) *OpenPipe[I, O] {
	return newOpenPipe(seg, cfg)
}

// Ref finalizes seg as a [CappedPipe] owned by group and returns it.
// cfg is optional.
func Ref[I, O any](group *Group, seg Segment[I, O], cfg *Config) *CappedPipe[I, O] {
	p := newCappedPipe(seg, cfg)
	if err := group.Add(p); err != nil {
		panic(err)
	}
	return p
}
