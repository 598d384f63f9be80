package cli

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// RunOptions configures a suite invocation handed to go test.
type RunOptions struct {
	Filter      string        // go test -run pattern; empty selects everything
	Tag         string        // scenario tag filter; empty runs every case
	Parallelism int           // go test -parallel; zero keeps the default
	Timeout     time.Duration // go test -timeout; zero keeps the default
	BaseURL     string        // storefront to target; empty boots one in process
	Headless    bool
	Dir         string // working directory for the test process
	Stdout      io.Writer
	Stderr      io.Writer
}

// buildTestArgs assembles the go test argument list for the e2e suite.
func buildTestArgs(opts RunOptions) []string {
	args := []string{"test", "-v", "-tags", "e2e", "./e2e/..."}
	if opts.Filter != "" {
		args = append(args, "-run", opts.Filter)
	}
	if opts.Parallelism > 0 {
		args = append(args, "-parallel", strconv.Itoa(opts.Parallelism))
	}
	if opts.Timeout > 0 {
		args = append(args, "-timeout", opts.Timeout.String())
	}
	return args
}

// buildSuiteEnv layers the run options over the inherited environment. Later
// entries win, so option values override anything already exported.
func buildSuiteEnv(base []string, opts RunOptions) []string {
	env := append([]string(nil), base...)
	if opts.BaseURL != "" {
		env = append(env, "BASE_URL="+opts.BaseURL)
	}
	if opts.Headless {
		env = append(env, "HEADLESS=true")
	} else {
		env = append(env, "HEADLESS=false")
	}
	if opts.Tag != "" {
		env = append(env, "SCENARIO_TAG="+opts.Tag)
	}
	return env
}

// RunSuite executes the e2e suite as a child go test process and streams its
// output to the configured writers. A failing suite surfaces as the child's
// non-zero exit error.
func RunSuite(ctx context.Context, opts RunOptions) error {
	cmd := exec.CommandContext(ctx, "go", buildTestArgs(opts)...)
	cmd.Dir = opts.Dir
	cmd.Env = buildSuiteEnv(os.Environ(), opts)
	cmd.Stdout = opts.Stdout
	cmd.Stderr = opts.Stderr
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to run suite: %w", err)
	}
	return nil
}

// WaitForStorefront polls the storefront's login page until it answers
// 200 OK, then returns. It gives up when the timeout elapses or the context
// is cancelled.
func WaitForStorefront(ctx context.Context, baseURL string, timeout, interval time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	url := strings.TrimRight(baseURL, "/") + "/"
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if storefrontUp(ctx, url) {
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("storefront at %s did not become ready within %s: %w", baseURL, timeout, ctx.Err())
		case <-ticker.C:
		}
	}
}

func storefrontUp(ctx context.Context, url string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	return resp.StatusCode == http.StatusOK
}
