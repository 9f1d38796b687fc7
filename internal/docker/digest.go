package docker

import (
	"fmt"
	"strings"

	"github.com/opencontainers/go-digest"
)

// Prefix of image references in builder diagnostics ("sha256:").
var digestPrefix = digest.Canonical.String() + ":"

// Line marker emitted by the builder when an image manifest is written.
var imageWrittenMarker = "writing image " + digestPrefix

// Recovers the built image's identifier from accumulated builder
// diagnostics.
//
// Lines are scanned for the "writing image" marker and the last match wins:
// the builder repeats the line when cached stages replay, and only the
// final occurrence names the image that was actually written. Within the
// marker line, the first whitespace-delimited token carrying a usable
// digest supplies the identifier, returned as bare hex. No marker line
// fails with [ErrNoImage]; a marker line where no token carries a digest
// fails with [ErrMalformedReference].
func ExtractDigest(output string) (string, error) {
	line, ok := lastMarkerLine(output)
	if !ok {
		return "", ErrNoImage
	}

	for _, token := range strings.Fields(line) {
		if id, ok := tokenDigest(token); ok {
			return id, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrMalformedReference, line)
}

// Returns the identifier carried by a digest-prefixed token, if any.
//
// A full reference must parse as a canonical digest. The builder is free to
// abbreviate the digest it prints, so shorter references are also accepted
// when the encoded portion is plain hex. Anything else — an empty digest,
// non-hex garbage, a foreign algorithm — is not a digest token.
func tokenDigest(token string) (string, bool) {
	if dgst, err := digest.Parse(token); err == nil {
		if dgst.Algorithm() != digest.Canonical {
			return "", false
		}
		return dgst.Encoded(), true
	}

	id, ok := strings.CutPrefix(token, digestPrefix)
	if !ok || id == "" || !isHex(id) {
		return "", false
	}
	return id, true
}

// Reports whether s is non-empty lowercase hex.
func isHex(s string) bool {
	for _, r := range s {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return false
		}
	}
	return s != ""
}

// Returns the last line of text containing the image-written marker.
func lastMarkerLine(text string) (string, bool) {
	var match string
	var found bool
	for _, line := range strings.Split(text, "\n") {
		if strings.Contains(line, imageWrittenMarker) {
			match = line
			found = true
		}
	}
	return match, found
}
