package certstore

import (
	"reflect"
	"testing"
)

func TestExtractCommonName(t *testing.T) {
	tests := []struct {
		subject string
		want    string
	}{
		{"CN=Jane Doe, O=Example Corp, C=ES", "Jane Doe"},
		{"cn=lowercase prefix, OU=x", "lowercase prefix"},
		{"O=Example Corp, CN=Trailing Name", "Trailing Name"},
		{"CN=  Padded Name  , O=x", "Padded Name"},
		{"O=No Common Name", "O=No Common Name"},
		{"  bare alias  ", "bare alias"},
	}
	for _, tt := range tests {
		if got := ExtractCommonName(tt.subject); got != tt.want {
			t.Fatalf("ExtractCommonName(%q)=%q want %q", tt.subject, got, tt.want)
		}
	}
}

func TestDedupAliases(t *testing.T) {
	in := []string{
		"CN=Alice, O=X",
		"CN=Bob",
		"",
		"   ",
		"CN=Alice, O=Y",
		"Carol",
	}
	want := []string{"Alice", "Bob", "Carol"}
	if got := DedupAliases(in); !reflect.DeepEqual(got, want) {
		t.Fatalf("DedupAliases=%v want %v", got, want)
	}
}

func TestDedupAliasesEmpty(t *testing.T) {
	if got := DedupAliases(nil); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
	if got := DedupAliases([]string{"", "  "}); len(got) != 0 {
		t.Fatalf("expected empty result for blank subjects, got %v", got)
	}
}
