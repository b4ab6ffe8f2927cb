// SPDX-License-Identifier: GPL-3.0-or-later

package pipe

// ObservabilitySink receives failures from segments that wrap user
// callbacks or external objects (e.g. [NewCall], [NewSignal], [NewGet],
// [NewSet]). Because inject/extract/trigger must be total functions,
// such a failure cannot be returned to the caller; the segment reports
// it here and carries on. The segment does not substitute the zero
// value: [NewCall], [NewSignal] and [NewSet]'s Inject pass the input
// through unchanged, and [NewGet] returns the last value it read
// successfully.
type ObservabilitySink interface {
	// SegmentError reports that segment (its type name, e.g. "Signal")
	// named name (the caller-assigned instance name, if any) failed
	// with err during a single invocation.
	SegmentError(segment, name string, err error)
}

// ObservabilitySinkFunc adapts a function to the [ObservabilitySink]
// interface.
//
//	cfg.ErrorSink = ObservabilitySinkFunc(func(segment, name string, err error) {
//		log.Printf("%s %s: %v", segment, name, err)
//	})
type ObservabilitySinkFunc func(segment, name string, err error)

var _ ObservabilitySink = ObservabilitySinkFunc(nil)

// SegmentError implements [ObservabilitySink].
func (f ObservabilitySinkFunc) SegmentError(segment, name string, err error) {
	f(segment, name, err)
}

// DefaultObservabilitySink is a no-op sink that discards all errors.
var DefaultObservabilitySink = ObservabilitySinkFunc(func(string, string, error) {})
