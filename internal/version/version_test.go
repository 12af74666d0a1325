package version

import (
	"strings"
	"testing"
)

func TestGetFullVersion(t *testing.T) {
	full := GetFullVersion()
	if !strings.HasPrefix(full, Program+", version ") {
		t.Errorf("GetFullVersion() = %q, want prefix %q", full, Program+", version ")
	}
	if !strings.Contains(full, GetVersion()) {
		t.Errorf("GetFullVersion() = %q, want it to contain %q", full, GetVersion())
	}
}
