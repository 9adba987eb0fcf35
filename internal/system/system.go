//go:build !windows

package system

import (
	"syscall"

	"github.com/sirupsen/logrus"
)

// InitResourceLimits raises the open-file limit. Preview rasterization opens
// one document handle per worker, and batch invocations can otherwise run
// into the conservative default soft limit.
func InitResourceLimits() {
	var rLimit syscall.Rlimit
	if err := syscall.Getrlimit(syscall.RLIMIT_NOFILE, &rLimit); err != nil {
		logrus.Warnf("could not read file limit: %v", err)
		return
	}

	rLimit.Cur = 2048
	if rLimit.Cur > rLimit.Max {
		rLimit.Cur = rLimit.Max
	}

	if err := syscall.Setrlimit(syscall.RLIMIT_NOFILE, &rLimit); err != nil {
		logrus.Warnf("could not raise file limit: %v", err)
	} else {
		logrus.Debugf("open file limit raised to %d", rLimit.Cur)
	}
}
