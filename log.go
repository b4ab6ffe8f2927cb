// SPDX-License-Identifier: GPL-3.0-or-later

package pipe

// logSeg is the leaf behind [NewLog]: logs each injected value at Debug
// level under label, then passes it through unchanged.
type logSeg[T any] struct {
	label  string
	logger SLogger
}

var _ Injector[int, int] = (*logSeg[int])(nil)

func (l *logSeg[T]) Inject(in T) T {
	l.logger.Debug(l.label, "value", in)
	return in
}

// NewLog returns a segment that logs each injected value under label
// using logger (see [SLogger]) and passes it through unchanged. Pass
// nil to use [DefaultSLogger], which discards output.
func NewLog[T any](label string, logger SLogger) Segment[T, T] {
	if logger == nil {
		logger = DefaultSLogger()
	}
	return Wrap[T, T](&logSeg[T]{label: label, logger: logger})
}
