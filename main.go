// Package main is the Lambda entrypoint for the AWS pricing agent.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	log "github.com/sirupsen/logrus"

	"github.com/ratiolabs/aws-pricing-agent/agent"
)

func main() {
	configureLogging()
	lambda.Start(handleRequest)
}

func configureLogging() {
	rawLevel := os.Getenv("LOG_LEVEL")
	if rawLevel == "" {
		return
	}
	parsedLevel, err := log.ParseLevel(rawLevel)
	if err != nil {
		log.WithError(err).Warnf("Couldn't parse log level, using default: %s", log.GetLevel())
		return
	}
	log.SetLevel(parsedLevel)
	log.Debugf("Set log level to %s", parsedLevel)
}

func handleRequest(ctx context.Context, event json.RawMessage) (any, error) {
	// Warmup detection runs before any request decoding.
	if warmup, ok := IsWarmupEvent(event); ok {
		return HandleWarmup(ctx, warmup)
	}

	log.Debugf("received pricing agent event: %s", event)

	var agentEvent agent.AgentEvent
	if err := json.Unmarshal(event, &agentEvent); err != nil {
		return nil, fmt.Errorf("failed to decode agent event: %w", err)
	}

	bucket := os.Getenv("RESULTS_BUCKET")
	if bucket == "" {
		return nil, errors.New("RESULTS_BUCKET environment variable is required")
	}
	store, err := agent.NewS3StoreFromConfig(ctx, bucket)
	if err != nil {
		return nil, err
	}

	workingDir := os.Getenv("WORKING_DIR")
	if workingDir == "" {
		workingDir = "pricing-results"
	}

	sys := agent.NewEventSystem(agentEvent, store, workingDir)

	a := agent.New(&agent.SDKClientFactory{})
	if err := a.Run(ctx, sys); err != nil {
		return nil, err
	}
	if failure := sys.Failure(); failure != nil {
		return nil, failure
	}
	return sys.Response(), nil
}
