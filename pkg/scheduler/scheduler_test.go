package scheduler

import "testing"

func TestLayoutCallbacksRunBeforePostFrame(t *testing.T) {
	Reset()
	defer Reset()

	var order []string
	AddPostFrameCallback(func() { order = append(order, "post") })
	AddLayoutCallback(func() { order = append(order, "layout") })

	// The frame loop always drains layout callbacks first.
	FlushLayoutCallbacks()
	FlushPostFrameCallbacks()

	if len(order) != 2 || order[0] != "layout" || order[1] != "post" {
		t.Errorf("expected [layout post], got %v", order)
	}
}

func TestCallbacksAreOneShot(t *testing.T) {
	Reset()
	defer Reset()

	count := 0
	AddLayoutCallback(func() { count++ })

	FlushLayoutCallbacks()
	FlushLayoutCallbacks()

	if count != 1 {
		t.Errorf("expected callback to run once, ran %d times", count)
	}
}

func TestChainedCallbacksSettleInOneFlush(t *testing.T) {
	Reset()
	defer Reset()

	var order []string
	AddLayoutCallback(func() {
		order = append(order, "first")
		AddLayoutCallback(func() { order = append(order, "second") })
	})

	FlushLayoutCallbacks()

	if len(order) != 2 || order[1] != "second" {
		t.Errorf("expected chained callback to run in the same flush, got %v", order)
	}
	if HasPending() {
		t.Error("expected no pending callbacks after flush")
	}
}

func TestHasPending(t *testing.T) {
	Reset()
	defer Reset()

	if HasPending() {
		t.Error("expected no pending callbacks initially")
	}
	AddPostFrameCallback(func() {})
	if !HasPending() {
		t.Error("expected pending after scheduling")
	}
	if HasLayoutCallbacks() {
		t.Error("expected no layout callbacks")
	}
	FlushPostFrameCallbacks()
	if HasPending() {
		t.Error("expected no pending after flush")
	}
}

func TestNilCallbackIgnored(t *testing.T) {
	Reset()
	defer Reset()

	AddLayoutCallback(nil)
	AddPostFrameCallback(nil)
	if HasPending() {
		t.Error("expected nil callbacks to be dropped")
	}
}
