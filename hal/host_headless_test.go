package hal

import (
	"context"
	"errors"
	"testing"
)

func TestRunHeadlessStopsAfterFrames(t *testing.T) {
	var steps int
	var held Buttons
	newApp := func(h HAL) (func() error, error) {
		return func() error {
			steps++
			held = h.Input().Buttons()
			return nil
		}, nil
	}
	cfg := HeadlessConfig{Hz: 1000, Frames: 5, Buttons: ButtonCross}
	if err := RunHeadless(context.Background(), newApp, cfg); err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if steps != 5 {
		t.Fatalf("steps = %d want 5", steps)
	}
	if held != ButtonCross {
		t.Fatalf("buttons = %#x", held)
	}
}

func TestRunHeadlessErrStopIsClean(t *testing.T) {
	var steps int
	newApp := func(HAL) (func() error, error) {
		return func() error {
			steps++
			if steps == 3 {
				return ErrStop
			}
			return nil
		}, nil
	}
	if err := RunHeadless(context.Background(), newApp, HeadlessConfig{}); err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if steps != 3 {
		t.Fatalf("steps = %d want 3", steps)
	}
}

func TestRunHeadlessReportsErrors(t *testing.T) {
	boom := errors.New("boom")
	failing := func(HAL) (func() error, error) { return nil, boom }
	if err := RunHeadless(context.Background(), failing, HeadlessConfig{}); !errors.Is(err, boom) {
		t.Fatalf("constructor err = %v", err)
	}

	stepping := func(HAL) (func() error, error) {
		return func() error { return boom }, nil
	}
	if err := RunHeadless(context.Background(), stepping, HeadlessConfig{}); !errors.Is(err, boom) {
		t.Fatalf("step err = %v", err)
	}
}

func TestRunHeadlessHonoursCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	newApp := func(HAL) (func() error, error) {
		return func() error {
			t.Fatal("step ran after cancel")
			return nil
		}, nil
	}
	if err := RunHeadless(ctx, newApp, HeadlessConfig{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v", err)
	}
}
