package settings

import (
	"encoding/json"
	"testing"
)

// The profile page destructures every top-level key of the document, so the
// served default must carry all of them with non-nil lists.
func TestDefaultCompanyProfileComplete(t *testing.T) {
	p := defaultCompanyProfile()

	if p.CompanyName == "" || p.Tagline == "" || p.About == "" {
		t.Fatalf("default profile missing text fields: %+v", p)
	}
	if len(p.Certifications) == 0 || len(p.Stats) == 0 || len(p.Services) == 0 || len(p.Leadership) == 0 {
		t.Fatalf("default profile has empty lists: %+v", p)
	}
	for _, s := range p.Services {
		if len(s.Tests) == 0 {
			t.Fatalf("service category %q has no tests", s.Category)
		}
	}
	if p.Contact.Address == "" || p.Contact.Phone == "" || p.Contact.Email == "" || p.Contact.Hours == "" {
		t.Fatalf("default contact block incomplete: %+v", p.Contact)
	}
}

func TestCompanyProfileWireKeys(t *testing.T) {
	body, err := json.Marshal(defaultCompanyProfile())
	if err != nil {
		t.Fatal(err)
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(body, &doc); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{
		"companyName", "tagline", "certifications", "about", "mission",
		"vision", "stats", "services", "leadership", "contact",
	} {
		if _, ok := doc[key]; !ok {
			t.Errorf("profile body missing key %q", key)
		}
	}

	var contact map[string]string
	if err := json.Unmarshal(doc["contact"], &contact); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"address", "phone", "email", "hours"} {
		if _, ok := contact[key]; !ok {
			t.Errorf("contact block missing key %q", key)
		}
	}
}
