package version

import "testing"

func TestIsOutdated(t *testing.T) {
	tests := []struct {
		current string
		latest  string
		want    bool
	}{
		{current: "v0.1.0", latest: "v0.1.1", want: true},
		{current: "v0.1.0", latest: "v0.2.0", want: true},
		{current: "v0.1.0", latest: "v1.0.0", want: true},
		{current: "0.1.1", latest: "v0.1.1", want: false},
		{current: "v0.2.0", latest: "v0.1.9", want: false},
		{current: "dev", latest: "v0.1.1", want: false},
		{current: "v0.1.1", latest: "latest", want: false},
		{current: "v0.1.1-rc1", latest: "v0.1.2", want: true},
		{current: "v0.1.1+build5", latest: "v0.1.1", want: false},
		{current: "", latest: "v0.1.1", want: false},
	}

	for _, tt := range tests {
		if got := IsOutdated(tt.current, tt.latest); got != tt.want {
			t.Fatalf("IsOutdated(%q,%q)=%v want %v", tt.current, tt.latest, got, tt.want)
		}
	}
}
