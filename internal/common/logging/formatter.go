package logging

import (
	"bytes"
	"fmt"

	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// CommandLineFormatter prints bare messages, suitable for output read by a person at a terminal.
// Warnings and errors are prefixed with their level, and fields are appended as sorted key=value pairs.
type CommandLineFormatter struct{}

func (f *CommandLineFormatter) Format(entry *log.Entry) ([]byte, error) {
	var b bytes.Buffer
	if entry.Level <= log.WarnLevel {
		fmt.Fprintf(&b, "%s: ", entry.Level.String())
	}
	b.WriteString(entry.Message)

	keys := maps.Keys(entry.Data)
	slices.Sort(keys)
	for _, key := range keys {
		if key == Stacktrace {
			continue
		}
		fmt.Fprintf(&b, " %s=%v", key, entry.Data[key])
	}
	b.WriteByte('\n')
	return b.Bytes(), nil
}
