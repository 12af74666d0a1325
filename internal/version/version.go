package version

import (
	"github.com/prometheus/common/version"
)

// Program is the name reported in version output and build info metrics.
const Program = "captive-portal"

// Build details are injected with -ldflags into
// github.com/prometheus/common/version.{Version,Revision,Branch,BuildUser,BuildDate}.

func GetVersion() string {
	return version.Version
}

func GetFullVersion() string {
	return version.Print(Program)
}
