package ring

import "testing"

func TestSetTraceTogglesFlag(t *testing.T) {
	defer SetTrace(false)
	SetTrace(true)
	if !Settings.Trace {
		t.Errorf("Settings.Trace = false after SetTrace(true)")
	}
	if !traceEnabled.Load() {
		t.Errorf("traceEnabled = false after SetTrace(true)")
	}
	SetTrace(false)
	if Settings.Trace {
		t.Errorf("Settings.Trace = true after SetTrace(false)")
	}
}
