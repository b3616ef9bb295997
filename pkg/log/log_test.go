package log

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewWithLevel(t *testing.T) {
	l, err := NewWithLevel("debug")
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	l.SetOutput(&buf)
	l.Debugf("0x%04x: %s", 0x100, "NOP")

	if !strings.Contains(buf.String(), "0x0100: NOP") {
		t.Errorf("expected debug line to be written, got %q", buf.String())
	}

	if _, err := NewWithLevel("loud"); err == nil {
		t.Errorf("expected an error for an unknown level")
	}
}

func TestNullLogger(t *testing.T) {
	l := NewNullLogger()
	l.Infof("%d", 1)
	l.Warnf("%d", 2)
	l.Errorf("%d", 3)
	l.Debugf("%d", 4)
}
