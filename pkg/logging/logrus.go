package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

const DefaultLevel = logrus.InfoLevel

// Logrus builds loggers for the sensor components. The sensor document owns
// stdout, so output is normally stderr.
type Logrus struct {
	level  string
	output io.Writer
}

// NewLogrus creates a new logrus factory
func NewLogrus(level string, output io.Writer) *Logrus {
	return &Logrus{level: level, output: output}
}

// Get returns a logger tagged with the component it is used by. Unknown
// levels fall back to DefaultLevel.
func (l *Logrus) Get(component string) *logrus.Entry {
	log := logrus.New()
	level, err := logrus.ParseLevel(l.level)
	if err != nil {
		level = DefaultLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	log.SetOutput(l.output)

	return log.WithFields(logrus.Fields{
		"Context": component,
	})
}
