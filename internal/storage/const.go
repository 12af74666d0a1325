package storage

import (
	"os"
)

const (
	dirPerm  os.FileMode = 0o755
	filePerm os.FileMode = 0o644
)

const (
	OperationEnsureHeader = "ensure_header"
	OperationAppend       = "append"
	OperationInspect      = "inspect"
)

type HeaderStatus int

const (
	HeaderMissing HeaderStatus = iota
	HeaderOK
	HeaderMismatch
)

func (h HeaderStatus) String() string {
	switch h {
	case HeaderMissing:
		return "missing"
	case HeaderOK:
		return "ok"
	case HeaderMismatch:
		return "mismatch"
	default:
		return "unknown"
	}
}
