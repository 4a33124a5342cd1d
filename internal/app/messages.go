package app

import (
	"fmt"

	"github.com/llehouerou/drawbar/internal/errmsg"
)

// setStatus shows an informational message in the status line.
func (m *Model) setStatus(format string, args ...any) {
	m.status = fmt.Sprintf(format, args...)
	m.statusErr = false
}

// fail logs err and shows it in the status line.
func (m *Model) fail(op errmsg.Op, context string, err error) {
	if err == nil {
		return
	}
	m.logger.Error("operation failed", "op", string(op), "context", context, "error", err)
	m.status = errmsg.FormatWith(op, context, err)
	m.statusErr = true
}
