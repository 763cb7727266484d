package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

type healthResponse struct {
	Status string `json:"status"`
	Model  struct {
		ID        string `json:"id"`
		Available bool   `json:"available"`
	} `json:"model"`
}

type emailRequest struct {
	EmailContent  string `json:"emailContent"`
	Tone          string `json:"tone,omitempty"`
	SummaryLength string `json:"summaryLength,omitempty"`
}

type result struct {
	Sample    string `json:"sample"`
	Operation string `json:"operation"`
	Chars     int    `json:"chars"`
	Run       int    `json:"run"`
	WallMs    int64  `json:"wall_ms"`
	OutChars  int    `json:"out_chars"`
	Fallback  bool   `json:"fallback,omitempty"`
	Error     string `json:"error,omitempty"`
}

// operation maps a benchmark label to the relay endpoint and payload.
type operation struct {
	Name string
	Path string
	Body func(Sample) emailRequest
}

var operations = []operation{
	{"generate", "/api/email/generate", func(s Sample) emailRequest { return emailRequest{EmailContent: s.Text} }},
	{"summarize", "/api/email/summarize", func(s Sample) emailRequest { return emailRequest{EmailContent: s.Text, SummaryLength: "short"} }},
}

var (
	baseURL string
	apiKey  string
	runs    int
	quality bool
	jsonOut string
	warmup  bool
)

var rootCmd = &cobra.Command{
	Use:          "benchmark",
	Short:        "Measure reply and summarize latency against a running relay",
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&baseURL, "url", "http://localhost:8080", "API base URL")
	rootCmd.Flags().StringVar(&apiKey, "api-key", "", "API key (optional)")
	rootCmd.Flags().IntVar(&runs, "runs", 3, "number of runs per sample and operation")
	rootCmd.Flags().BoolVar(&quality, "quality", false, "print drafted replies for each tone sample instead of timing")
	rootCmd.Flags().StringVar(&jsonOut, "json", "", "write results to JSON file (e.g. results.json)")
	rootCmd.Flags().BoolVar(&warmup, "warmup", false, "run one warmup request per sample before measuring")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	base := strings.TrimRight(baseURL, "/")
	client := &http.Client{Timeout: 180 * time.Second}

	modelID, err := checkHealth(client, base)
	if err != nil {
		return err
	}

	if quality {
		return runQualityMode(client, base, modelID)
	}

	fmt.Printf("Benchmarking against %s using model: %s (%d runs per sample", base, modelID, runs)
	if warmup {
		fmt.Print(", warmup enabled")
	}
	fmt.Println(")")

	var results []result
	var failures int
	for _, op := range operations {
		for _, sample := range Samples {
			if warmup {
				fmt.Printf("  Warming up %s/%s...", op.Name, sample.Name)
				w := benchmark(client, base, op, sample, 0)
				if w.Error != "" {
					fmt.Printf(" FAILED (%s)\n", w.Error)
				} else {
					fmt.Printf(" %dms (discarded)\n", w.WallMs)
				}
			}
			for i := 1; i <= runs; i++ {
				fmt.Printf("  Running %s/%s (run %d/%d)...", op.Name, sample.Name, i, runs)
				r := benchmark(client, base, op, sample, i)
				results = append(results, r)
				if r.Error != "" {
					fmt.Printf(" FAILED (%s)\n", r.Error)
					failures++
				} else {
					fmt.Printf(" %dms\n", r.WallMs)
				}
			}
		}
	}

	fmt.Println()
	printTable(results)
	printSummary(results)

	if jsonOut != "" {
		if err := writeJSON(jsonOut, results, base, modelID); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing JSON: %v\n", err)
		} else {
			fmt.Printf("\nResults written to %s\n", jsonOut)
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d runs failed", failures, len(results))
	}
	return nil
}

func checkHealth(client *http.Client, base string) (string, error) {
	resp, err := client.Get(base + "/api/health")
	if err != nil {
		return "", fmt.Errorf("health: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("health endpoint returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var hr healthResponse
	if err := json.NewDecoder(resp.Body).Decode(&hr); err != nil {
		return "", fmt.Errorf("health: decode: %w", err)
	}
	if !hr.Model.Available {
		return "", errors.New("health: model is not available")
	}
	return hr.Model.ID, nil
}

// post sends one request and returns the plain-text body.
func post(client *http.Client, url string, payload emailRequest) (string, bool, error) {
	data, _ := json.Marshal(payload)
	req, err := http.NewRequest(http.MethodPost, url, strings.NewReader(string(data)))
	if err != nil {
		return "", false, err
	}
	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set("X-API-Key", apiKey)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", false, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", false, err
	}
	if resp.StatusCode != http.StatusOK {
		return "", false, fmt.Errorf("HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return string(body), resp.Header.Get("X-Model-Fallback") == "true", nil
}

func benchmark(client *http.Client, base string, op operation, sample Sample, run int) result {
	r := result{Sample: sample.Name, Operation: op.Name, Chars: len([]rune(sample.Text)), Run: run}

	start := time.Now()
	out, fallback, err := post(client, base+op.Path, op.Body(sample))
	r.WallMs = time.Since(start).Milliseconds()
	if err != nil {
		r.Error = err.Error()
		return r
	}
	r.OutChars = len([]rune(out))
	r.Fallback = fallback
	return r
}

func printTable(results []result) {
	fmt.Println("| Operation | Sample | Chars | Run | Wall (ms) | Out Chars | Ratio |")
	fmt.Println("|-----------|--------|-------|-----|-----------|-----------|-------|")
	for _, r := range results {
		if r.Error != "" {
			fmt.Printf("| %-9s | %-6s | %5d | %d | %9s | %9s | %5s |\n",
				r.Operation, r.Sample, r.Chars, r.Run, "FAIL", "-", "-")
			continue
		}
		ratio := float64(r.OutChars) / float64(r.Chars)
		fmt.Printf("| %-9s | %-6s | %5d | %d | %9d | %9d | %5.2f |\n",
			r.Operation, r.Sample, r.Chars, r.Run, r.WallMs, r.OutChars, ratio)
	}
}

func runQualityMode(client *http.Client, base, modelID string) error {
	fmt.Printf("Quality test against %s using model: %s\n", base, modelID)
	fmt.Println(strings.Repeat("=", 72))

	var failures int
	for i, s := range ToneSamples {
		fmt.Printf("\n--- %d/%d: %s (tone: %s) ---\n", i+1, len(ToneSamples), s.Name, s.Tone)
		fmt.Printf("IN:  %s\n", s.Text)

		start := time.Now()
		out, _, err := post(client, base+"/api/email/generate", emailRequest{EmailContent: s.Text, Tone: s.Tone})
		if err != nil {
			fmt.Printf("ERR: %s\n", err)
			failures++
			continue
		}
		fmt.Printf("OUT: %s\n", out)
		fmt.Printf("     [%dms, %d->%d chars]\n", time.Since(start).Milliseconds(), len([]rune(s.Text)), len([]rune(out)))
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 72))
	fmt.Printf("Done: %d/%d passed\n", len(ToneSamples)-failures, len(ToneSamples))
	if failures > 0 {
		return fmt.Errorf("%d quality samples failed", failures)
	}
	return nil
}

func printSummary(results []result) {
	var ok []result
	for _, r := range results {
		if r.Error == "" {
			ok = append(ok, r)
		}
	}

	failed := len(results) - len(ok)

	if len(ok) == 0 {
		fmt.Printf("\nSummary: all %d runs failed\n", len(results))
		return
	}

	var totalMs int64
	var totalChars, fallbacks int
	fastest, slowest := ok[0], ok[0]

	for _, r := range ok {
		totalMs += r.WallMs
		totalChars += r.Chars
		if r.Fallback {
			fallbacks++
		}
		if r.WallMs < fastest.WallMs {
			fastest = r
		}
		if r.WallMs > slowest.WallMs {
			slowest = r
		}
	}

	fmt.Printf("\nSummary:\n")
	fmt.Printf("- Avg ms/char: %.2f\n", float64(totalMs)/float64(totalChars))
	fmt.Printf("- Min wall: %dms (%s/%s)\n", fastest.WallMs, fastest.Operation, fastest.Sample)
	fmt.Printf("- Max wall: %dms (%s/%s)\n", slowest.WallMs, slowest.Operation, slowest.Sample)
	fmt.Printf("- Fallback responses: %d\n", fallbacks)
	fmt.Printf("- Total runs: %d (%d ok, %d failed)\n", len(results), len(ok), failed)
}

type jsonReport struct {
	Timestamp string   `json:"timestamp"`
	URL       string   `json:"url"`
	Model     string   `json:"model"`
	Results   []result `json:"results"`
}

func writeJSON(path string, results []result, base, modelID string) error {
	report := jsonReport{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		URL:       base,
		Model:     modelID,
		Results:   results,
	}
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
