package main

import (
	"context"
	"testing"
	"time"

	"github.com/nextcore/glint/pkg/core"
	glinttest "github.com/nextcore/glint/pkg/testing"
)

func blockedLoader() *StylesheetLoader {
	loader := NewStylesheetLoader("test://styles.css")
	loader.Fetch = func(ctx context.Context, url string) error {
		<-ctx.Done()
		return ctx.Err()
	}
	return loader
}

func resolvedLoader() *StylesheetLoader {
	loader := NewStylesheetLoader("test://styles.css")
	loader.Fetch = func(ctx context.Context, url string) error {
		return nil
	}
	return loader
}

// pumpUntilReady pumps frames until the app has swapped the placeholder for
// the cards. The readiness signal crosses a goroutine, so this polls.
func pumpUntilReady(t *testing.T, tester *glinttest.WidgetTester) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !tester.Find(glinttest.ByTextContaining("Theme:")).Exists() {
		if time.Now().After(deadline) {
			t.Fatal("app never became ready")
		}
		time.Sleep(time.Millisecond)
		if err := tester.Pump(); err != nil {
			t.Fatalf("pump failed: %v", err)
		}
	}
}

func TestAppHoldsPlaceholderWhileStylesheetPending(t *testing.T) {
	tester := glinttest.NewWidgetTesterWithT(t)
	tester.SetThemeData(nil)

	if err := tester.PumpWidget(App{Loader: blockedLoader()}); err != nil {
		t.Fatalf("pump failed: %v", err)
	}

	if !tester.Find(glinttest.ByText("Loading stylesheet...")).Exists() {
		t.Fatal("expected placeholder while fetch is pending")
	}
	for i := 0; i < 3; i++ {
		if err := tester.Pump(); err != nil {
			t.Fatalf("pump failed: %v", err)
		}
	}
	if tester.Find(glinttest.ByTextContaining("Theme:")).Exists() {
		t.Error("cards must not mount before the stylesheet resolves")
	}
	if tester.Find(glinttest.ByKey("tracked-box")).Exists() {
		t.Error("tracked box must not mount before the stylesheet resolves")
	}
}

func TestAppMountsCardsWhenStylesheetResolves(t *testing.T) {
	tester := glinttest.NewWidgetTesterWithT(t)
	tester.SetThemeData(nil)

	if err := tester.PumpWidget(App{Loader: resolvedLoader()}); err != nil {
		t.Fatalf("pump failed: %v", err)
	}
	pumpUntilReady(t, tester)

	for _, want := range []string{"Theme: light", "Count: 0", "Width: full (776px)"} {
		if !tester.Find(glinttest.ByText(want)).Exists() {
			t.Errorf("expected %q after readiness", want)
		}
	}
	if tester.Find(glinttest.ByText("Loading stylesheet...")).Exists() {
		t.Error("expected placeholder gone after readiness")
	}
	if got := tester.WindowTitle(); got != "Count: 0 | Theme: light" {
		t.Errorf("expected title synced after first committed frame, got %q", got)
	}
}

func TestAppThemeToggleReachesAllCards(t *testing.T) {
	tester := glinttest.NewWidgetTesterWithT(t)
	tester.SetThemeData(nil)

	if err := tester.PumpWidget(App{Loader: resolvedLoader()}); err != nil {
		t.Fatalf("pump failed: %v", err)
	}
	pumpUntilReady(t, tester)

	if err := tester.Tap(glinttest.ByKey("toggle-theme")); err != nil {
		t.Fatalf("tap failed: %v", err)
	}

	if !tester.Find(glinttest.ByText("Theme: dark")).Exists() {
		t.Error("expected theme card in dark mode")
	}
	if got := tester.WindowTitle(); got != "Count: 0 | Theme: dark" {
		t.Errorf("expected counter title re-synced for the new mode, got %q", got)
	}

	if err := tester.Tap(glinttest.ByKey("toggle-theme")); err != nil {
		t.Fatalf("tap failed: %v", err)
	}
	if !tester.Find(glinttest.ByText("Theme: light")).Exists() {
		t.Error("expected theme card back in light mode")
	}
}

func TestAppFocusButtonFocusesInput(t *testing.T) {
	tester := glinttest.NewWidgetTesterWithT(t)
	tester.SetThemeData(nil)

	if err := tester.PumpWidget(App{Loader: resolvedLoader()}); err != nil {
		t.Fatalf("pump failed: %v", err)
	}
	pumpUntilReady(t, tester)

	element := tester.Find(glinttest.ByType[ThemeCard]()).First()
	state := element.(*core.StatefulElement).State().(*themeCardState)

	if state.inputNode.HasPrimaryFocus() {
		t.Fatal("input must not start focused")
	}
	if err := tester.Tap(glinttest.ByKey("focus-input")); err != nil {
		t.Fatalf("tap failed: %v", err)
	}
	if !state.inputNode.HasPrimaryFocus() {
		t.Error("expected input focused after tapping the focus button")
	}
}

func TestAppCancelsFetchOnUnmount(t *testing.T) {
	tester := glinttest.NewWidgetTesterWithT(t)
	tester.SetThemeData(nil)

	started := make(chan struct{})
	done := make(chan error, 1)
	loader := NewStylesheetLoader("test://styles.css")
	loader.Fetch = func(ctx context.Context, url string) error {
		close(started)
		<-ctx.Done()
		done <- ctx.Err()
		return ctx.Err()
	}

	if err := tester.PumpWidget(App{Loader: loader}); err != nil {
		t.Fatalf("pump failed: %v", err)
	}
	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("fetch never started")
	}

	// Replacing the root unmounts the app, which releases the loader.
	if err := tester.PumpWidget(App{Loader: resolvedLoader()}); err != nil {
		t.Fatalf("pump failed: %v", err)
	}

	select {
	case err := <-done:
		if err != context.Canceled {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Error("expected in-flight fetch cancelled on unmount")
	}
}
