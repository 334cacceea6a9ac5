package segslider

import (
	"strings"
	"testing"
)

func TestLoadTestScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "screenshot", "label": "initial"},
			{"action": "tap", "x": 100, "y": 200},
			{"action": "drag", "fromX": 10, "fromY": 20, "toX": 90, "toY": 20, "frames": 8},
			{"action": "wait", "frames": 3},
			{"action": "index", "value": 2},
			{"action": "points", "value": 7}
		]
	}`)

	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 6 {
		t.Fatalf("expected 6 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].Action != "screenshot" || runner.steps[0].Label != "initial" {
		t.Error("step 0 mismatch")
	}
	if runner.steps[1].Action != "tap" || runner.steps[1].X != 100 || runner.steps[1].Y != 200 {
		t.Error("step 1 mismatch")
	}
	if st := runner.steps[2]; st.FromX != 10 || st.ToX != 90 || st.Frames != 8 {
		t.Error("step 2 mismatch")
	}
	if runner.steps[4].Value != 2 || runner.steps[5].Value != 7 {
		t.Error("value steps mismatch")
	}
}

func TestLoadTestScript_Invalid(t *testing.T) {
	_, err := LoadTestScript([]byte(`not json`))
	if err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestLoadTestScript_Empty(t *testing.T) {
	_, err := LoadTestScript([]byte(`{"steps": []}`))
	if err == nil {
		t.Error("expected error for empty steps")
	}
}

func TestLoadTestScript_UnknownAction(t *testing.T) {
	_, err := LoadTestScript([]byte(`{"steps": [{"action": "wait"}, {"action": "click"}]}`))
	if err == nil {
		t.Fatal("expected error for unknown action")
	}
	if !strings.Contains(err.Error(), "step 1") || !strings.Contains(err.Error(), `"click"`) {
		t.Errorf("error %q should name the step and action", err)
	}
}

func TestRunnerStep_Tap(t *testing.T) {
	s, got := newTestSlider(t, 5, 2)

	data := []byte(`{"steps": [{"action": "tap", "x": 14, "y": 40}]}`)
	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatal(err)
	}
	s.SetTestRunner(runner)

	// First step call: tap queues press+release (2 events).
	runner.step(s)
	if len(s.injectQueue) != 2 {
		t.Fatalf("expected 2 queued events, got %d", len(s.injectQueue))
	}
	if runner.Done() {
		t.Error("runner should not be done while inject queue has events")
	}

	// Drain injections.
	s.processInjectedInput()
	s.processInjectedInput()

	runner.step(s)
	if !runner.Done() {
		t.Error("runner should be done after all steps executed and queue drained")
	}

	tickUntilIdle(t, s)
	if len(*got) != 1 || (*got)[0] != 0 {
		t.Errorf("changes = %v, want [0]", *got)
	}
}

func TestRunnerStep_Wait(t *testing.T) {
	s, _ := newTestSlider(t, 5, 0)

	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "wait", "frames": 3}]}`))
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 3; i++ {
		runner.step(s)
		if runner.Done() {
			t.Fatalf("runner done after %d frames, want 3 frames of waiting", i+1)
		}
	}
	runner.step(s)
	if !runner.Done() {
		t.Error("runner should be done after the wait")
	}
}

func TestRunnerStep_IndexAndPoints(t *testing.T) {
	s, got := newTestSlider(t, 5, 0)

	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "index", "value": 4},
		{"action": "points", "value": 3},
		{"action": "screenshot", "label": "end"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	s.SetTestRunner(runner)

	for i := 0; i < 10 && !runner.Done(); i++ {
		s.Tick(testDT)
	}
	if !runner.Done() {
		t.Fatal("runner should finish")
	}
	if len(*got) != 2 || (*got)[0] != 4 || (*got)[1] != 2 {
		t.Errorf("changes = %v, want [4 2]", *got)
	}
	if len(s.screenshotQueue) != 1 || s.screenshotQueue[0] != "end" {
		t.Errorf("screenshotQueue = %v, want [end]", s.screenshotQueue)
	}
}
