package ta

import "github.com/sirupsen/logrus"

var log = logrus.WithField("component", "ta")
