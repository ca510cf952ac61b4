// SPDX-License-Identifier: MIT

// Command xorsolve solves minimum-toggle instances read from a file or stdin.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.WithError(err).Error("xorsolve failed")
		os.Exit(1)
	}
}
