/*
Copyright (C) 2026  Carl-Philip Hänsch

    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU General Public License as published by
    the Free Software Foundation, either version 3 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU General Public License
    along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package ring

import (
	"log"
	"sync/atomic"

	"github.com/dc0d/onexit"
)

// SettingsT holds the package-level knobs an embedding engine tunes
// before constructing a Facade, mirroring storage.SettingsT's role for
// the teacher's column store.
type SettingsT struct {
	// Trace records the state last set by SetTrace, which switches
	// log.Printf diagnostics of plan builds and tracker minting. Writing
	// this field directly does not switch tracing.
	Trace bool
}

// Settings is the package-level configuration an embedding engine reads
// and sets before constructing a Facade; tracing is switched through
// SetTrace.
var Settings = SettingsT{Trace: false}

var traceEnabled atomic.Bool

func init() {
	onexit.Register(func() { traceEnabled.Store(false) })
}

// SetTrace toggles plan-construction tracing on or off.
func SetTrace(on bool) {
	Settings.Trace = on
	traceEnabled.Store(on)
}

func tracef(format string, args ...any) {
	if traceEnabled.Load() {
		log.Printf("ring: "+format, args...)
	}
}
