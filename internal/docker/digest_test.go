package docker

import (
	"errors"
	"strings"
	"testing"
)

func TestExtractDigest(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		want    string
		wantErr error
	}{
		{
			name:   "single marker line",
			output: "#12 writing image sha256:abc123 done",
			want:   "abc123",
		},
		{
			name:   "marker among other lines",
			output: "#11 exporting layers\n#12 writing image sha256:abc123 done\n#13 naming to spade",
			want:   "abc123",
		},
		{
			name:   "last marker wins",
			output: "#12 writing image sha256:aaa111 done\n#14 writing image sha256:bbb222 done",
			want:   "bbb222",
		},
		{
			name:   "first digest token wins within the line",
			output: "#12 writing image sha256:abc123 sha256:def456",
			want:   "abc123",
		},
		{
			name:   "full-length digest",
			output: "#12 writing image sha256:" + strings.Repeat("ab", 32) + " done",
			want:   strings.Repeat("ab", 32),
		},
		{
			name:   "unusable token skipped in favor of a later digest",
			output: "#12 writing image sha256: sha256:XYZ sha256:abc123 done",
			want:   "abc123",
		},
		{
			name:    "no marker line",
			output:  "#1 [internal] load build definition\n#1 DONE 0.0s",
			wantErr: ErrNoImage,
		},
		{
			name:    "empty output",
			output:  "",
			wantErr: ErrNoImage,
		},
		{
			name:    "marker line with empty digest",
			output:  "#12 writing image sha256: done",
			wantErr: ErrMalformedReference,
		},
		{
			name:    "marker line with non-hex digest",
			output:  "#12 writing image sha256:not-hex-at-all!! done",
			wantErr: ErrMalformedReference,
		},
		{
			name:    "marker line with uppercase digest",
			output:  "#12 writing image sha256:DEADBEEF done",
			wantErr: ErrMalformedReference,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractDigest(tt.output)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ExtractDigest: %v", err)
			}
			if got != tt.want {
				t.Fatalf("digest = %q, want %q", got, tt.want)
			}
		})
	}
}
