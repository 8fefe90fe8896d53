// Package agent implements the AWS pricing agent. It normalizes
// caller-supplied filters to the Price List API's field-name convention,
// resolves region codes to the API's location display names, runs a
// paginated get-products query per region in sequence and persists the
// aggregate result set through the system file store, returning a bounded
// inline summary.
package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"strconv"
	"strings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Agent executes pricing queries against the Price List API.
type Agent struct {
	clientFactory ClientFactory
}

// New returns an Agent using clientFactory for its API clients.
func New(clientFactory ClientFactory) *Agent {
	return &Agent{clientFactory: clientFactory}
}

// Run parses the request off the system, executes it and signals the outcome
// back through the system. The returned error only reflects signaling
// failures; request and query errors are reported through ReportFailure.
func (a *Agent) Run(ctx context.Context, sys System) error {
	req, err := ParseRequest(sys)
	if err != nil {
		log.WithError(err).Error("rejecting pricing request")
		return sys.ReportFailure(ctx, err)
	}

	resp, err := a.Execute(ctx, sys, req)
	if err != nil {
		log.WithError(err).Errorf("pricing query failed [service=%s]", req.ServiceCode)
		return sys.ReportFailure(ctx, err)
	}

	return sys.ReportSuccess(ctx, resp)
}

// Execute runs one pricing query end to end: region resolution, sequential
// per-region fetches, persistence of the full result set and assembly of the
// truncated response. An unknown region aborts before any query is issued.
func (a *Agent) Execute(ctx context.Context, sys System, req Request) (*Response, error) {
	req.applyDefaults()

	log.Debugf("normalizing filters [service=%s, filters=%v]", req.ServiceCode, req.Filters)
	finalFilters := NormalizeFilters(req.Filters)

	locations, err := ResolveRegions(req.Regions)
	if err != nil {
		return nil, err
	}

	// For a single region the location becomes part of the reported filter
	// set. Multi-region queries instead overwrite location on a per-region
	// copy, clobbering any caller-supplied location filter.
	if len(locations) == 1 {
		finalFilters["location"] = locations[0]
	}

	client, err := a.clientFactory.NewPricingClient()
	if err != nil {
		return nil, err
	}

	allRecords := []PricingRecord{}
	for _, location := range locations {
		queryFilters := make(map[string]string, len(finalFilters)+1)
		for k, v := range finalFilters {
			queryFilters[k] = v
		}
		queryFilters["location"] = location

		log.Debugf("querying pricing [service=%s, location=%s, filters=%v]", req.ServiceCode, location, queryFilters)

		records, err := queryRegionPricing(ctx, client, req.ServiceCode, location, queryFilters, req.MaxRecords)
		if err != nil {
			return nil, err
		}

		log.Debugf("found %d pricing records [service=%s, location=%s]", len(records), req.ServiceCode, location)
		allRecords = append(allRecords, records...)
	}

	resultFilePath := req.ResultFilePath
	if resultFilePath == "" {
		resultFilePath = path.Join(sys.WorkingDir(), fmt.Sprintf("aws_pricing_%s_%s.json", req.ServiceCode, uuid.New()))
	}

	envelope := ResultEnvelope{
		ServiceCode:    req.ServiceCode,
		RegionsQueried: req.Regions,
		FiltersApplied: finalFilters,
		RecordCount:    len(allRecords),
		PricingRecords: allRecords,
	}
	data, err := json.MarshalIndent(envelope, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result envelope: %w", err)
	}

	metadata := map[string]string{
		"service_code": req.ServiceCode,
		"regions":      strings.Join(req.Regions, ","),
		"record_count": strconv.Itoa(len(allRecords)),
	}
	if err := sys.PutFile(ctx, resultFilePath, data, metadata); err != nil {
		return nil, err
	}

	summary := allRecords
	if len(summary) > summaryRecordLimit {
		summary = summary[:summaryRecordLimit]
	}

	return &Response{
		PricingRecords: summary,
		ResultFilePath: resultFilePath,
		ServiceCode:    req.ServiceCode,
		RegionsQueried: req.Regions,
		RecordCount:    len(allRecords),
		FiltersApplied: finalFilters,
	}, nil
}
