package agent

const (
	// DefaultRegion is queried when the caller supplies no regions.
	DefaultRegion = "us-east-1"

	// DefaultMaxRecords caps each page-iteration call against the Price List API.
	DefaultMaxRecords int32 = 50

	// summaryRecordLimit bounds the number of records returned inline; the
	// full set is only available through the result file.
	summaryRecordLimit = 10
)

// Request is the caller-supplied input to the pricing agent.
type Request struct {
	ServiceCode    string            `json:"service_code"`
	Regions        []string          `json:"regions,omitempty"`
	Filters        map[string]string `json:"filters,omitempty"`
	MaxRecords     int32             `json:"max_records,omitempty"`
	ResultFilePath string            `json:"result_file_path,omitempty"`
}

// applyDefaults fills the documented defaults for omitted fields.
func (r *Request) applyDefaults() {
	if len(r.Regions) == 0 {
		r.Regions = []string{DefaultRegion}
	}
	if r.Filters == nil {
		r.Filters = map[string]string{}
	}
	if r.MaxRecords <= 0 {
		r.MaxRecords = DefaultMaxRecords
	}
}

// PricingRecord is one product entry from the Price List API. The API hands
// entries back as self-describing JSON documents, so the shape is kept open;
// a queryRegion key is added to record which location the entry was fetched
// under.
type PricingRecord map[string]any

// Response is the body returned to the invoking framework on success.
type Response struct {
	PricingRecords []PricingRecord   `json:"pricing_records"`
	ResultFilePath string            `json:"result_file_path"`
	ServiceCode    string            `json:"service_code"`
	RegionsQueried []string          `json:"regions_queried"`
	RecordCount    int               `json:"record_count"`
	FiltersApplied map[string]string `json:"filters_applied"`
}

// ResultEnvelope is the full result set persisted to the file store. It is
// written once per invocation and never updated.
type ResultEnvelope struct {
	ServiceCode    string            `json:"service_code"`
	RegionsQueried []string          `json:"regions_queried"`
	FiltersApplied map[string]string `json:"filters_applied"`
	RecordCount    int               `json:"record_count"`
	PricingRecords []PricingRecord   `json:"pricing_records"`
}
