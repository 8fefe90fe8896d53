// Warmup handling for scheduled CloudWatch pings that keep Lambda instances
// warm between agent executions.
package main

import (
	"context"
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	lambdasdk "github.com/aws/aws-sdk-go-v2/service/lambda"
	lambdatypes "github.com/aws/aws-sdk-go-v2/service/lambda/types"
	log "github.com/sirupsen/logrus"
)

const (
	// warmupSource identifies warmup events scheduled through CloudWatch.
	warmupSource = "warmup"

	// warmupDelay keeps this instance busy long enough for child invocations
	// to land on fresh instances instead of being routed back here.
	warmupDelay = 75 * time.Millisecond
)

// WarmupEvent is the scheduled payload that keeps instances warm.
type WarmupEvent struct {
	Source      string `json:"source"`
	Concurrency int    `json:"concurrency"`
}

// WarmupResponse reports how many instances a warmup round touched.
type WarmupResponse struct {
	Status          string `json:"status"`
	InstancesWarmed int    `json:"instancesWarmed"`
}

// IsWarmupEvent reports whether event is a warmup ping rather than an agent
// execution.
func IsWarmupEvent(event json.RawMessage) (*WarmupEvent, bool) {
	var warmup WarmupEvent
	if err := json.Unmarshal(event, &warmup); err != nil {
		return nil, false
	}
	if warmup.Source != warmupSource {
		return nil, false
	}
	return &warmup, true
}

// HandleWarmup answers a warmup ping, self-invoking to warm additional
// instances when concurrency is requested.
func HandleWarmup(ctx context.Context, warmup *WarmupEvent) (*WarmupResponse, error) {
	instancesWarmed := 1

	if warmup.Concurrency > 0 {
		if err := selfInvoke(ctx, warmup.Concurrency); err != nil {
			log.WithError(err).Warnf("warmup self-invoke failed [concurrency=%d]", warmup.Concurrency)
		} else {
			instancesWarmed += warmup.Concurrency
		}
	}

	time.Sleep(warmupDelay)

	return &WarmupResponse{Status: "warm", InstancesWarmed: instancesWarmed}, nil
}

// selfInvoke fires count async invocations of this function. Children carry
// concurrency=0 so they don't fan out again.
func selfInvoke(ctx context.Context, count int) error {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return err
	}
	client := lambdasdk.NewFromConfig(cfg)
	functionName := os.Getenv("AWS_LAMBDA_FUNCTION_NAME")

	payload, err := json.Marshal(WarmupEvent{Source: warmupSource, Concurrency: 0})
	if err != nil {
		return err
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	var invokeErr error

	for i := 0; i < count; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := client.Invoke(ctx, &lambdasdk.InvokeInput{
				FunctionName:   aws.String(functionName),
				InvocationType: lambdatypes.InvocationTypeEvent,
				Payload:        payload,
			})
			if err != nil {
				mu.Lock()
				if invokeErr == nil {
					invokeErr = err
				}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	return invokeErr
}
