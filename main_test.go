package main

import (
	"context"
	"encoding/json"
	"testing"
)

func TestIsWarmupEvent_Warmup(t *testing.T) {
	warmup, ok := IsWarmupEvent(json.RawMessage(`{"source":"warmup","concurrency":3}`))
	if !ok {
		t.Fatal("expected warmup event to be detected")
	}
	if warmup.Concurrency != 3 {
		t.Errorf("expected concurrency 3, got %d", warmup.Concurrency)
	}
}

func TestIsWarmupEvent_AgentEvent(t *testing.T) {
	event := json.RawMessage(`{"arguments":{"service_code":"AmazonEC2"}}`)
	if _, ok := IsWarmupEvent(event); ok {
		t.Error("agent event misdetected as warmup")
	}
}

func TestIsWarmupEvent_OtherSource(t *testing.T) {
	if _, ok := IsWarmupEvent(json.RawMessage(`{"source":"aws.events"}`)); ok {
		t.Error("non-warmup source misdetected as warmup")
	}
}

func TestIsWarmupEvent_Invalid(t *testing.T) {
	if _, ok := IsWarmupEvent(json.RawMessage(`[1,2,3]`)); ok {
		t.Error("non-object event misdetected as warmup")
	}
	if _, ok := IsWarmupEvent(json.RawMessage(`not json`)); ok {
		t.Error("invalid JSON misdetected as warmup")
	}
}

func TestHandleWarmup_NoConcurrency(t *testing.T) {
	resp, err := HandleWarmup(context.Background(), &WarmupEvent{Source: warmupSource})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Status != "warm" {
		t.Errorf("expected status warm, got %q", resp.Status)
	}
	if resp.InstancesWarmed != 1 {
		t.Errorf("expected 1 instance warmed, got %d", resp.InstancesWarmed)
	}
}
