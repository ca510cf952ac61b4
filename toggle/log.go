// SPDX-License-Identifier: MIT

package toggle

import "github.com/sirupsen/logrus"

var log = logrus.WithField("prefix", "toggle")
