package docker

import (
	"bytes"
	"io"
)

// Size of the read buffer for streaming builder diagnostics.
const streamChunkSize = 4096

// Copies a diagnostic stream to out while accumulating it for later parsing.
//
// Chunks are forwarded in arrival order so the user sees the builder's
// progress in real time. The loop blocks on each read and exits only when
// the stream signals end-of-data; forwarding failures are ignored so that a
// closed terminal cannot abort a build whose output is still needed for
// digest extraction.
func tee(r io.Reader, out io.Writer) ([]byte, error) {
	var captured bytes.Buffer
	chunk := make([]byte, streamChunkSize)

	for {
		n, err := r.Read(chunk)
		if n > 0 {
			captured.Write(chunk[:n])
			out.Write(chunk[:n])
		}
		if err == io.EOF {
			return captured.Bytes(), nil
		}
		if err != nil {
			return nil, err
		}
	}
}
