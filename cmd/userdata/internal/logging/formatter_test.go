package logging

import (
	"strings"
	"testing"
)

func TestTemplate(t *testing.T) {
	render := Template("HOLBERTON")
	got := render(Record{
		Logger:  "my_logger",
		Level:   LevelInfo,
		Time:    fixedTime,
		Message: "name=egg;",
	})

	want := "[HOLBERTON] my_logger INFO 2019-11-19 18:24:25,105: name=egg;"
	if got != want {
		t.Errorf("Template() = %q, want %q", got, want)
	}
}

func TestRedactingFormatter_Format(t *testing.T) {
	f := NewRedactingFormatter([]string{"email", "ssn", "password"}, nil)

	got := f.Format(Record{
		Logger:  "my_logger",
		Level:   LevelInfo,
		Time:    fixedTime,
		Message: "name=Bob; email=bob@dylan.com; ssn=000-123-0000; password=bobbycool;",
	})

	want := "[HOLBERTON] my_logger INFO 2019-11-19 18:24:25,105: name=Bob; email=***; ssn=***; password=***;"
	if got != want {
		t.Errorf("Format() = %q\nwant       %q", got, want)
	}
}

func TestRedactingFormatter_WrapsBase(t *testing.T) {
	var seen Record
	base := func(r Record) string {
		seen = r
		return "base:" + r.Message
	}

	f := NewRedactingFormatter([]string{"name"}, base)
	got := f.Format(Record{Logger: "x", Level: LevelWarn, Message: "name=Ann;age=3;"})

	if got != "base:name=***;age=3;" {
		t.Errorf("Expected base template output, got %q", got)
	}
	if seen.Logger != "x" || seen.Level != LevelWarn {
		t.Errorf("Expected record metadata to reach base template, got %+v", seen)
	}
}

func TestRedactingFormatter_DoesNotMutateRecord(t *testing.T) {
	f := NewRedactingFormatter([]string{"name"}, nil)
	r := Record{Logger: "x", Level: LevelInfo, Time: fixedTime, Message: "name=Ann;"}

	f.Format(r)

	if r.Message != "name=Ann;" {
		t.Errorf("Format should not change the caller's record, got %q", r.Message)
	}
}

func TestRedactingWriter_NonJSON(t *testing.T) {
	var sb strings.Builder
	w := &redactingWriter{
		out:       &sb,
		name:      "raw",
		formatter: NewRedactingFormatter([]string{"ssn"}, nil),
		clock:     fixedClock,
	}

	p := []byte("ssn=123-45-6789;user=1;\n")
	n, err := w.Write(p)
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if n != len(p) {
		t.Errorf("Expected %d bytes reported, got %d", len(p), n)
	}
	if sb.String() != "ssn=***;user=1;\n" {
		t.Errorf("Expected redacted raw line, got %q", sb.String())
	}
}
