package agent

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-sdk-go-v2/service/pricing"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// mockPricingClient implements pricing.GetProductsAPIClient for testing.
type mockPricingClient struct {
	GetProductsFn func(ctx context.Context, params *pricing.GetProductsInput, optFns ...func(*pricing.Options)) (*pricing.GetProductsOutput, error)
}

func (m *mockPricingClient) GetProducts(ctx context.Context, params *pricing.GetProductsInput, optFns ...func(*pricing.Options)) (*pricing.GetProductsOutput, error) {
	return m.GetProductsFn(ctx, params, optFns...)
}

// mockClientFactory implements ClientFactory for testing.
type mockClientFactory struct {
	pricingClient pricing.GetProductsAPIClient
	pricingErr    error
}

func (f *mockClientFactory) NewPricingClient() (pricing.GetProductsAPIClient, error) {
	return f.pricingClient, f.pricingErr
}

// putFileCall records one PutFile invocation on mockSystem.
type putFileCall struct {
	path     string
	data     []byte
	metadata map[string]string
}

// mockSystem implements System for testing.
type mockSystem struct {
	arguments  map[string]json.RawMessage
	workingDir string
	putFileErr error

	putFiles []putFileCall
	response *Response
	failure  error
}

func (s *mockSystem) GetArgument(name string) (json.RawMessage, bool) {
	raw, ok := s.arguments[name]
	return raw, ok
}

func (s *mockSystem) WorkingDir() string {
	if s.workingDir == "" {
		return "work"
	}
	return s.workingDir
}

func (s *mockSystem) PutFile(ctx context.Context, path string, data []byte, metadata map[string]string) error {
	if s.putFileErr != nil {
		return s.putFileErr
	}
	s.putFiles = append(s.putFiles, putFileCall{path: path, data: data, metadata: metadata})
	return nil
}

func (s *mockSystem) ReportSuccess(ctx context.Context, body *Response) error {
	s.response = body
	return nil
}

func (s *mockSystem) ReportFailure(ctx context.Context, err error) error {
	s.failure = err
	return nil
}

// mockS3Client implements S3PutObjectAPI for testing.
type mockS3Client struct {
	PutObjectFn func(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

func (m *mockS3Client) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	return m.PutObjectFn(ctx, params, optFns...)
}

// makeProductJSON builds a minimal valid Price List entry for testing.
func makeProductJSON(sku, instanceType string) string {
	entry := map[string]any{
		"product": map[string]any{
			"sku":           sku,
			"productFamily": "Compute Instance",
			"attributes": map[string]string{
				"instanceType": instanceType,
			},
		},
		"serviceCode": "AmazonEC2",
	}
	b, _ := json.Marshal(entry)
	return string(b)
}

// filterMap flattens the TERM_MATCH filter list of a get-products call back
// into a map for assertions.
func filterMap(params *pricing.GetProductsInput) map[string]string {
	filters := make(map[string]string, len(params.Filters))
	for _, f := range params.Filters {
		filters[*f.Field] = *f.Value
	}
	return filters
}
