// SPDX-License-Identifier: MIT

package gf2

import "github.com/sirupsen/logrus"

var log = logrus.WithField("prefix", "gf2")
