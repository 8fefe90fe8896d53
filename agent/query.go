package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/pricing"
	pricingtypes "github.com/aws/aws-sdk-go-v2/service/pricing/types"
	log "github.com/sirupsen/logrus"
)

// buildAPIFilters converts a filter map to the TERM_MATCH filter list the
// Price List API takes.
func buildAPIFilters(filters map[string]string) []pricingtypes.Filter {
	apiFilters := make([]pricingtypes.Filter, 0, len(filters))
	for field, value := range filters {
		apiFilters = append(apiFilters, pricingtypes.Filter{
			Type:  pricingtypes.FilterTypeTermMatch,
			Field: aws.String(field),
			Value: aws.String(value),
		})
	}
	return apiFilters
}

// queryRegionPricing drains every page of a get-products query for one
// location. Each returned entry is parsed as a self-describing JSON document
// and tagged with the display name it was queried under; entries that fail
// to parse are logged and skipped.
func queryRegionPricing(ctx context.Context, client pricing.GetProductsAPIClient, serviceCode, location string, filters map[string]string, maxRecords int32) ([]PricingRecord, error) {
	pag := pricing.NewGetProductsPaginator(
		client,
		&pricing.GetProductsInput{
			ServiceCode: aws.String(serviceCode),
			MaxResults:  aws.Int32(maxRecords),
			Filters:     buildAPIFilters(filters),
		},
	)

	var records []PricingRecord
	for pag.HasMorePages() {
		pricelist, err := pag.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("error while fetching pricing [service=%s, location=%s]: %w", serviceCode, location, err)
		}
		for _, price := range pricelist.PriceList {
			var record PricingRecord
			if err := json.Unmarshal([]byte(price), &record); err != nil {
				log.WithError(err).Warnf("failed to parse pricing item [service=%s, location=%s]", serviceCode, location)
				continue
			}
			record["queryRegion"] = location
			records = append(records, record)
		}
	}

	return records, nil
}
