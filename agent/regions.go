package agent

import "fmt"

// regionDisplayNames maps AWS region codes to the display names the Price
// List API expects in its location filter.
var regionDisplayNames = map[string]string{
	"us-east-1":      "US East (N. Virginia)",
	"us-east-2":      "US East (Ohio)",
	"us-west-1":      "US West (N. California)",
	"us-west-2":      "US West (Oregon)",
	"eu-west-1":      "Europe (Ireland)",
	"eu-west-2":      "Europe (London)",
	"eu-west-3":      "Europe (Paris)",
	"eu-central-1":   "Europe (Frankfurt)",
	"eu-north-1":     "Europe (Stockholm)",
	"ap-southeast-1": "Asia Pacific (Singapore)",
	"ap-southeast-2": "Asia Pacific (Sydney)",
	"ap-northeast-1": "Asia Pacific (Tokyo)",
	"ap-northeast-2": "Asia Pacific (Seoul)",
	"ap-south-1":     "Asia Pacific (Mumbai)",
	"ca-central-1":   "Canada (Central)",
	"sa-east-1":      "South America (Sao Paulo)",
}

// UnknownRegionError reports a region code missing from the region table.
type UnknownRegionError struct {
	Region string
}

func (e *UnknownRegionError) Error() string {
	return fmt.Sprintf("unknown region: %s", e.Region)
}

// ResolveRegions maps region codes to Price List display names, preserving
// order. A single unknown code fails the whole request before any query is
// issued; there are no partial results.
func ResolveRegions(regions []string) ([]string, error) {
	names := make([]string, 0, len(regions))
	for _, region := range regions {
		name, ok := regionDisplayNames[region]
		if !ok {
			return nil, &UnknownRegionError{Region: region}
		}
		names = append(names, name)
	}
	return names, nil
}
