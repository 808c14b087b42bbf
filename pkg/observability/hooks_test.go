package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Pipeline hooks
	p := NoopPipelineHooks{}
	p.OnCalculateStart(ctx, 10)
	p.OnCalculateComplete(ctx, 10, 25, time.Millisecond, nil)
	p.OnRenderStart(ctx, "rod", []string{"png"})
	p.OnRenderComplete(ctx, "rod", []string{"png"}, time.Millisecond, nil)

	// Output hooks
	o := NoopOutputHooks{}
	o.OnWrite(ctx, "grid_layout.png", 1024, nil)
	o.OnOpen(ctx, "grid_layout.png", nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should return NoopPipelineHooks by default")
	}
	if _, ok := Output().(NoopOutputHooks); !ok {
		t.Error("Output() should return NoopOutputHooks by default")
	}

	// Set custom hooks
	customPipeline := &testPipelineHooks{}
	SetPipelineHooks(customPipeline)
	if Pipeline() != customPipeline {
		t.Error("SetPipelineHooks should set custom hooks")
	}

	customOutput := &testOutputHooks{}
	SetOutputHooks(customOutput)
	if Output() != customOutput {
		t.Error("SetOutputHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Reset() should restore NoopPipelineHooks")
	}
	if _, ok := Output().(NoopOutputHooks); !ok {
		t.Error("Reset() should restore NoopOutputHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testPipelineHooks{}
	SetPipelineHooks(custom)

	// Setting nil should be ignored
	SetPipelineHooks(nil)
	SetOutputHooks(nil)

	if Pipeline() != custom {
		t.Error("SetPipelineHooks(nil) should be ignored")
	}
	if _, ok := Output().(NoopOutputHooks); !ok {
		t.Error("SetOutputHooks(nil) should be ignored")
	}
}

// Test implementations
type testPipelineHooks struct{ NoopPipelineHooks }
type testOutputHooks struct{ NoopOutputHooks }
