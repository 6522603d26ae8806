package services

import (
	"reflect"
	"testing"
)

func TestFormArrayIndexedKeys(t *testing.T) {
	values := map[string][]string{
		"features[0]": {"70+ tests"},
		"features[1]": {"Free home collection"},
		"features[2]": {"Reports in 24h"},
	}
	got := formArray(values, "features")
	want := []string{"70+ tests", "Free home collection", "Reports in 24h"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestFormArrayRepeatedKeys(t *testing.T) {
	values := map[string][]string{
		"features": {"a", "b"},
	}
	got := formArray(values, "features")
	if !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("got %v", got)
	}
}

func TestFormArrayOptAbsent(t *testing.T) {
	values := map[string][]string{"title": {"Full Body"}}
	if got := formArrayOpt(values, "features"); got != nil {
		t.Fatalf("absent field must stay nil, got %v", got)
	}
}

func TestFormArrayOptPresentEmptyAndIndexed(t *testing.T) {
	if got := formArrayOpt(map[string][]string{"features[0]": {"x"}}, "features"); !reflect.DeepEqual(got, []string{"x"}) {
		t.Fatalf("indexed-only field not picked up: %v", got)
	}
}

func TestFormOpt(t *testing.T) {
	values := map[string][]string{"title": {"Full Body"}}
	if p := formOpt(values, "title"); p == nil || *p != "Full Body" {
		t.Fatalf("got %v", p)
	}
	if p := formOpt(values, "price"); p != nil {
		t.Fatalf("absent field must be nil, got %v", *p)
	}
}
