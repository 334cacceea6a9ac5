package segslider

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func newLoggedSlider(buf *bytes.Buffer, debug bool) *Slider {
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return New(Config{
		Points:        5,
		Frame:         testFrame,
		Logger:        logger,
		Debug:         debug,
		IgnoreDevices: true,
		Renderer:      &recordingRenderer{},
	})
}

func TestDebugLogsFrameStats(t *testing.T) {
	var buf bytes.Buffer
	s := newLoggedSlider(&buf, true)

	s.Tick(testDT)
	s.Draw(nil)

	out := buf.String()
	if !strings.Contains(out, "msg=frame") {
		t.Fatalf("expected a frame record, got:\n%s", out)
	}
	if !strings.Contains(out, "segments=8") {
		t.Errorf("frame record should report 8 outline segments:\n%s", out)
	}
	if !strings.Contains(out, "component=segslider") {
		t.Errorf("records should carry the component attribute:\n%s", out)
	}
}

func TestDebugOffIsQuiet(t *testing.T) {
	var buf bytes.Buffer
	s := newLoggedSlider(&buf, false)

	s.Tick(testDT)
	s.Draw(nil)
	if strings.Contains(buf.String(), "msg=frame") {
		t.Error("frame stats logged with debug off")
	}

	s.SetDebug(true)
	s.Draw(nil)
	if !strings.Contains(buf.String(), "msg=frame") {
		t.Error("SetDebug(true) should enable frame stats")
	}
}

func TestIndexChangeIsLogged(t *testing.T) {
	var buf bytes.Buffer
	s := newLoggedSlider(&buf, false)

	s.SetCurrentIndex(3)
	out := buf.String()
	if !strings.Contains(out, `msg="index changed"`) || !strings.Contains(out, "to=3") {
		t.Errorf("expected an index change record, got:\n%s", out)
	}
}
