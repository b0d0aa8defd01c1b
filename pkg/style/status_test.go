package style

import (
	"strings"
	"testing"
)

func TestStatusStyle(t *testing.T) {
	for _, status := range []Status{StatusError, StatusInfo, StatusMuted} {
		if StatusStyle(status) == nil {
			t.Errorf("StatusStyle(%q) returned nil", status)
		}
	}
}

func TestErrorLine(t *testing.T) {
	line := ErrorLine("something broke")
	if !strings.Contains(line, "Error: ") {
		t.Errorf("ErrorLine() = %q, want an Error: prefix", line)
	}
	if !strings.Contains(line, "something broke") {
		t.Errorf("ErrorLine() = %q, want the message preserved", line)
	}
}

func TestHeader(t *testing.T) {
	header := Header("Found 2 matches in PATH")
	if !strings.Contains(header, "Found 2 matches in PATH") {
		t.Errorf("Header() = %q, want the text preserved", header)
	}
}

func TestBold(t *testing.T) {
	if !strings.Contains(Bold("symseek"), "symseek") {
		t.Errorf("Bold() must preserve the text")
	}
}
