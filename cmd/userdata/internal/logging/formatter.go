package logging

import (
	"fmt"
	"strings"
	"time"

	"github.com/thalib/personaldata/cmd/userdata/internal/constants"
	"github.com/thalib/personaldata/cmd/userdata/internal/redact"
)

// Record is a single rendered log event.
type Record struct {
	Logger  string
	Level   Level
	Time    time.Time
	Message string
}

// TemplateFunc renders a record into its final line, without a trailing newline.
type TemplateFunc func(Record) string

// Template returns the base renderer for lines of the form
// [<tag>] <logger> <LEVEL> <timestamp>: <message>
func Template(tag string) TemplateFunc {
	return func(r Record) string {
		return fmt.Sprintf("[%s] %s %s %s: %s",
			tag,
			r.Logger,
			strings.ToUpper(string(r.Level)),
			r.Time.Format(constants.TimestampLayout),
			r.Message,
		)
	}
}

// RedactingFormatter obfuscates sensitive fields in a record's message and
// then hands the record to a base template.
type RedactingFormatter struct {
	redactor *redact.Redactor
	base     TemplateFunc
}

// NewRedactingFormatter creates a formatter redacting fields with the fixed
// token and separator. A nil base uses Template(constants.ProductTag).
func NewRedactingFormatter(fields []string, base TemplateFunc) *RedactingFormatter {
	if base == nil {
		base = Template(constants.ProductTag)
	}
	return &RedactingFormatter{
		redactor: redact.New(fields, constants.RedactionToken, constants.FieldSeparator),
		base:     base,
	}
}

// Fields returns the field names this formatter redacts.
func (f *RedactingFormatter) Fields() []string {
	return f.redactor.Fields()
}

// Format redacts the record's message and renders it through the base template.
func (f *RedactingFormatter) Format(r Record) string {
	r.Message = f.redactor.Redact(r.Message)
	return f.base(r)
}
