package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

// NullLogger discards everything; use it where a logger is required but output is not wanted, e.g. tests.
var NullLogger = &logrus.Logger{
	Out:       io.Discard,
	Formatter: new(logrus.TextFormatter),
	Hooks:     make(logrus.LevelHooks),
	Level:     logrus.PanicLevel,
}
