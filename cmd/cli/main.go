package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// apiClient talks to the ledger engine HTTP API.
type apiClient struct {
	baseURL string
	actor   string
	http    *http.Client
}

func (c *apiClient) do(ctx context.Context, method, path string, query url.Values, body any, headers map[string]string) ([]byte, error) {
	u := strings.TrimRight(c.baseURL, "/") + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.actor != "" {
		req.Header.Set("X-Actor-ID", c.actor)
	}
	for k, v := range headers {
		if v != "" {
			req.Header.Set(k, v)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 300 {
		return respBody, fmt.Errorf("request failed (status %d): %s", resp.StatusCode, truncate(strings.TrimSpace(string(respBody)), 512))
	}
	return respBody, nil
}

func newRootCmd() *cobra.Command {
	client := &apiClient{}
	var timeout time.Duration

	root := &cobra.Command{
		Use:           "ledgerctl",
		Short:         "Ledger engine CLI tool",
		Long:          `A command line interface for posting operations and running day close against the ledger engine API.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			client.http = &http.Client{Timeout: timeout}
		},
	}

	root.PersistentFlags().StringVar(&client.baseURL, "url", envOr("LEDGER_URL", "http://localhost:8080"), "Base URL of the ledger engine API")
	root.PersistentFlags().StringVar(&client.actor, "actor", os.Getenv("LEDGER_ACTOR"), "Actor recorded on postings")
	root.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	root.AddCommand(
		postCmd(client),
		reverseCmd(client),
		dayCloseCmd(client),
		trialBalanceCmd(client),
		trackerCmd(client),
		configCmd(client),
		ledgerCmd(client),
		migrateCmd(),
	)
	return root
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// printJSON indents raw JSON, printing it unchanged when it is not JSON.
func printJSON(w io.Writer, raw []byte) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		fmt.Fprintln(w, string(raw))
		return
	}
	fmt.Fprintln(w, buf.String())
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}
