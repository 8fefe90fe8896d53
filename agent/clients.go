package agent

import "github.com/aws/aws-sdk-go-v2/service/pricing"

// ClientFactory creates the AWS API clients the agent depends on, enabling
// dependency injection for testing.
type ClientFactory interface {
	NewPricingClient() (pricing.GetProductsAPIClient, error)
}
