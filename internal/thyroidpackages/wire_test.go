package thyroidpackages

import (
	"encoding/json"
	"testing"

	"thybackend/internal/domain/thyroid"
)

// The package page binds to a mix of camelCase and snake_case keys; this
// pins the contract so a tag cleanup cannot silently break the page.
func TestPackageWireKeys(t *testing.T) {
	body, err := json.Marshal(thyroid.Package{
		Name:            "Thyroid Advanced",
		Price:           999,
		OriginalPrice:   1499,
		TestsIncluded:   "T3, T4, TSH, Anti-TPO",
		ReportTime:      "6 hours",
		SampleType:      "Blood",
		FastingRequired: "Not required",
		Popular:         true,
	})
	if err != nil {
		t.Fatal(err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(body, &doc); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{
		"id", "name", "price", "originalPrice", "tests_included",
		"description", "report_time", "sample_type", "fasting_required", "popular",
	} {
		if _, ok := doc[key]; !ok {
			t.Errorf("package body missing key %q", key)
		}
	}
}
