package docker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"unicode/utf8"

	"github.com/containerd/errdefs"
	v1 "github.com/opencontainers/image-spec/specs-go/v1"
)

// Diagnostic emitted by docker when an inspected image does not exist.
const noSuchImageMarker = "No such image"

// Invokes the docker CLI for building, inspecting, and removing images.
//
// All interaction goes through the CLI's documented output formats: the
// build diagnostics stream, the inspect JSON document, and the remove exit
// status. The client holds no connection state and is safe to reuse across
// commands within one invocation.
type Client struct {
	bin string
	out io.Writer
}

// Creates a client that invokes the given docker binary.
//
// Diagnostics from build and remove invocations are forwarded to out as
// they arrive. An empty binary defaults to "docker"; a nil writer defaults
// to standard error.
func NewClient(bin string, out io.Writer) *Client {
	if bin == "" {
		bin = "docker"
	}
	if out == nil {
		out = os.Stderr
	}
	return &Client{bin: bin, out: out}
}

// Runs a build in the current directory with the given --build-arg flags.
//
// The builder runs with plain progress output so its diagnostics are
// line-oriented. The stderr stream is forwarded to the client's output
// writer while being accumulated; the accumulated text is returned for
// digest extraction. A stream read failure or a non-zero exit fails with
// [ErrBuildFailed]; non-UTF-8 diagnostics fail with [ErrEncoding]. The
// stream is always forwarded regardless of the eventual outcome.
func (c *Client) Build(ctx context.Context, buildArgs []string) (string, error) {
	args := append([]string{"build"}, buildArgs...)
	args = append(args, ".", "--progress", "plain")

	cmd := exec.CommandContext(ctx, c.bin, args...)
	cmd.Stdout = c.out

	stderr, err := cmd.StderrPipe()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildFailed, err)
	}
	if err := cmd.Start(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildFailed, err)
	}

	captured, readErr := tee(stderr, c.out)
	waitErr := cmd.Wait()
	if readErr != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildFailed, readErr)
	}
	if waitErr != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildFailed, waitErr)
	}

	if !utf8.Valid(captured) {
		return "", fmt.Errorf("%w: %w: build diagnostics", ErrBuildFailed, ErrEncoding)
	}
	return string(captured), nil
}

// Element of the JSON array printed by `docker image inspect`.
//
// Only the fields the ownership check needs are decoded; the Config section
// follows the OCI image configuration schema.
type Inspection struct {
	ID     string         `json:"Id"`
	Config v1.ImageConfig `json:"Config"`
}

// Retrieves the metadata of one image.
//
// A failed invocation whose diagnostics name a missing image is reported as
// [errdefs.ErrNotFound] so callers can distinguish "already gone" from real
// inspector failures. Output that is not valid text or not the documented
// JSON array fails with [ErrEncoding].
func (c *Client) Inspect(ctx context.Context, id string) (*Inspection, error) {
	cmd := exec.CommandContext(ctx, c.bin, "image", "inspect", id)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if strings.Contains(stderr.String(), noSuchImageMarker) {
			return nil, fmt.Errorf("%w: image %s", errdefs.ErrNotFound, id)
		}
		return nil, fmt.Errorf("%w: %w", ErrTool, err)
	}

	if !utf8.Valid(stdout.Bytes()) {
		return nil, fmt.Errorf("%w: inspect output", ErrEncoding)
	}

	var inspections []Inspection
	if err := json.Unmarshal(stdout.Bytes(), &inspections); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	if len(inspections) == 0 {
		return nil, fmt.Errorf("%w: image %s", errdefs.ErrNotFound, id)
	}
	return &inspections[0], nil
}

// Forcibly removes one image.
//
// Success is signaled by the exit status alone; the remover's output is
// forwarded to the client's output writer.
func (c *Client) Remove(ctx context.Context, id string) error {
	cmd := exec.CommandContext(ctx, c.bin, "rmi", "-f", id)
	cmd.Stdout = c.out
	cmd.Stderr = c.out

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: %w", ErrTool, err)
	}
	return nil
}
