package agent

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/pricing"
)

// SDKClientFactory creates real AWS SDK clients. Implements ClientFactory.
type SDKClientFactory struct{}

// NewPricingClient returns a Price List API client. The API is only served
// out of a handful of regions, so the client is always pinned to us-east-1
// regardless of which regions are being queried.
func (f *SDKClientFactory) NewPricingClient() (pricing.GetProductsAPIClient, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion("us-east-1"))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config for Pricing API: %w", err)
	}
	return pricing.NewFromConfig(cfg), nil
}
