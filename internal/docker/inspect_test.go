package docker

import (
	"encoding/json"
	"testing"
)

func TestOwned(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want bool
	}{
		{
			name: "ownership label present",
			doc:  `[{"Config":{"Labels":{"tool":"spade-docker"}}}]`,
			want: true,
		},
		{
			name: "empty label map",
			doc:  `[{"Config":{"Labels":{}}}]`,
			want: false,
		},
		{
			name: "missing Config entirely",
			doc:  `[{"Id":"sha256:abc"}]`,
			want: false,
		},
		{
			name: "wrong label value",
			doc:  `[{"Config":{"Labels":{"tool":"someone-else"}}}]`,
			want: false,
		},
		{
			name: "unrelated labels only",
			doc:  `[{"Config":{"Labels":{"maintainer":"nobody"}}}]`,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var inspections []Inspection
			if err := json.Unmarshal([]byte(tt.doc), &inspections); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got := inspections[0].Owned(); got != tt.want {
				t.Fatalf("Owned() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOwnedNilInspection(t *testing.T) {
	var i *Inspection
	if i.Owned() {
		t.Fatal("nil inspection reported as owned")
	}
}
