// SPDX-License-Identifier: GPL-3.0-or-later

package pipe

import (
	"github.com/bassosimone/runtimex"
	"github.com/google/uuid"
)

// NewSpanID returns a UUIDv7 suitable for tagging a pipe or group
// instance for log correlation and (when a [Config.Tracer] is set)
// as a trace span attribute.
//
// This function panics if the system random number generator fails,
// which should only happen under extraordinary circumstances.
func NewSpanID() string {
	return runtimex.PanicOnError1(uuid.NewV7()).String()
}
