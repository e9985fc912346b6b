package progress

import (
	"bytes"
	"testing"
)

func TestCIReporter(t *testing.T) {
	var buf bytes.Buffer
	r := NewCIReporter(&buf)

	r.Start(2)
	r.Update(1, "en/pages/terms/terms-of-use.html: written")
	r.Update(2, "pages/terms/accessibility.html: unchanged")
	r.Finish()

	want := "Migrating 2 documents\n" +
		"[1/2] en/pages/terms/terms-of-use.html: written\n" +
		"[2/2] pages/terms/accessibility.html: unchanged\n" +
		"Migration complete\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestNewReporterInCI(t *testing.T) {
	t.Setenv("CI", "true")
	if _, ok := NewReporter().(*CIReporter); !ok {
		t.Error("NewReporter() under CI is not a CIReporter")
	}
}

func TestNewReporterInTerminal(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("GITHUB_ACTIONS", "")
	if _, ok := NewReporter().(*TerminalReporter); !ok {
		t.Error("NewReporter() outside CI is not a TerminalReporter")
	}
}

func TestTerminalReporterUpdateBeforeStart(t *testing.T) {
	var buf bytes.Buffer
	r := &TerminalReporter{out: &buf}
	r.Update(1, "ignored")
	r.Finish()
	if buf.Len() != 0 {
		t.Errorf("unexpected output %q", buf.String())
	}
}
