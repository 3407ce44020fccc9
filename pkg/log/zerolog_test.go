package log

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rnakit/lncbench/pkg/errors"
)

func lastLine(buf *bytes.Buffer) map[string]interface{} {
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	var entry map[string]interface{}
	if err := json.Unmarshal(lines[len(lines)-1], &entry); err != nil {
		return nil
	}
	return entry
}

func TestZerologLoggerEmitsJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologLogger(&buf, LevelDebug)

	logger.Info("run complete",
		ComponentKey, "eval",
		RunIndexKey, 3,
		AccuracyKey, 0.91,
	)

	entry := lastLine(&buf)
	if entry == nil {
		t.Fatal("output is not valid JSON")
	}
	if entry["message"] != "run complete" {
		t.Errorf("message = %v", entry["message"])
	}
	if entry[ComponentKey] != "eval" {
		t.Errorf("%s = %v", ComponentKey, entry[ComponentKey])
	}
	if entry[RunIndexKey] != float64(3) {
		t.Errorf("%s = %v", RunIndexKey, entry[RunIndexKey])
	}
}

func TestZerologLoggerStructuredErrors(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologLogger(&buf, LevelDebug)

	err := errors.NewInsufficientSamplesError("partition", "lncRNA", 500, 200)
	var isErr *errors.InsufficientSamplesError
	if !errors.As(err, &isErr) {
		t.Fatalf("unexpected error type: %v", err)
	}
	logger.Error("partition failed", ErrAttrKey, isErr)

	entry := lastLine(&buf)
	if entry == nil {
		t.Fatal("output is not valid JSON")
	}
	// LogObjectMarshaler errors expand into structured fields.
	obj, ok := entry[ErrAttrKey].(map[string]interface{})
	if !ok {
		t.Fatalf("%s is not an object: %v", ErrAttrKey, entry[ErrAttrKey])
	}
	if obj["class"] != "lncRNA" {
		t.Errorf("class = %v", obj["class"])
	}
}

func TestZerologLoggerWith(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologLogger(&buf, LevelInfo).With(SeedKey, int64(42))

	logger.Info("sweep started", SweepModeKey, "grid")

	entry := lastLine(&buf)
	if entry[SeedKey] != float64(42) {
		t.Errorf("%s = %v", SeedKey, entry[SeedKey])
	}
	if entry[SweepModeKey] != "grid" {
		t.Errorf("%s = %v", SweepModeKey, entry[SweepModeKey])
	}
}

func TestZerologLoggerLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologLogger(&buf, LevelWarn)

	logger.Debug("noise")
	logger.Info("noise")
	if buf.Len() != 0 {
		t.Errorf("filtered levels wrote output: %s", buf.String())
	}
	if logger.Enabled(context.Background(), LevelInfo) {
		t.Error("info should be disabled at warn level")
	}
	if !logger.Enabled(context.Background(), LevelError) {
		t.Error("error should be enabled at warn level")
	}

	logger.Warn("kept")
	if buf.Len() == 0 {
		t.Error("warn should write output")
	}
}

func TestZerologWarnSink(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologLogger(&buf, LevelDebug)

	errors.SetZerologWarnFunc(logger.WarnSink())
	defer errors.SetZerologWarnFunc(nil)

	errors.Warn(errors.NewUndefinedMetricWarning("f1", "precision+recall == 0", 0))

	entry := lastLine(&buf)
	if entry == nil {
		t.Fatal("warning did not reach the logger")
	}
	if entry["message"] != "library warning" {
		t.Errorf("message = %v", entry["message"])
	}
}

func TestTestLoggerCapture(t *testing.T) {
	logger, _ := NewTestLogger(LevelDebug)

	logger.Info("run complete", StrategyKey, "weight")
	logger.Warn("evaluation run failed", RunIndexKey, 2)

	if !logger.ContainsMessage("run complete") {
		t.Error("ContainsMessage should find the info entry")
	}
	if !logger.ContainsField(StrategyKey, "weight") {
		t.Error("ContainsField should find the strategy")
	}
	logger.Clear()
	if logger.ContainsMessage("run complete") {
		t.Error("Clear should drop captured entries")
	}
}
