package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Setup configures the standard logrus logger. format is "text" or "json".
func Setup(level, format string, out io.Writer) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	l := logrus.StandardLogger()
	l.SetLevel(lvl)

	switch format {
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	default:
		l.SetFormatter(&logrus.TextFormatter{
			DisableColors: true,
			FullTimestamp: true,
		})
	}

	if out == nil {
		out = os.Stderr
	}
	l.SetOutput(out)
	return nil
}

// Component returns an entry tagged with the subsystem name.
func Component(name string) *logrus.Entry {
	return logrus.WithField("component", name)
}
