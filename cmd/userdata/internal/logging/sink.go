package logging

import (
	"encoding/json"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// redactingWriter turns zerolog's JSON events into formatted text lines.
// Every line goes through the formatter so no message reaches out unredacted.
type redactingWriter struct {
	out       io.Writer
	name      string
	formatter *RedactingFormatter
	clock     func() time.Time
}

func (w *redactingWriter) Write(p []byte) (int, error) {
	var event map[string]any
	if err := json.Unmarshal(p, &event); err != nil {
		// Not a zerolog event; still redact before writing
		line := w.formatter.redactor.Redact(strings.TrimRight(string(p), "\n"))
		if _, err := io.WriteString(w.out, line+"\n"); err != nil {
			return 0, err
		}
		return len(p), nil
	}

	level, _ := event[zerolog.LevelFieldName].(string)
	message, _ := event[zerolog.MessageFieldName].(string)
	if errMsg, ok := event[zerolog.ErrorFieldName].(string); ok && errMsg != "" {
		if message == "" {
			message = errMsg
		} else {
			message = message + ": " + errMsg
		}
	}

	line := w.formatter.Format(Record{
		Logger:  w.name,
		Level:   Level(level),
		Time:    w.clock(),
		Message: message,
	})
	if _, err := io.WriteString(w.out, line+"\n"); err != nil {
		return 0, err
	}
	return len(p), nil
}
