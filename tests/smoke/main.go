package main

import (
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"sort"
	"strings"
	"time"

	json "github.com/goccy/go-json"
)

// Requests are issued one at a time: the journal store is rewritten on every
// submission and parallel writers would drop entries.

var httpClient = &http.Client{
	Timeout: 5 * time.Second,
	// Keep the 303 so the redirect target can be checked.
	CheckRedirect: func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	},
}

type health struct {
	Status   string `json:"status"`
	Entries  int    `json:"entries"`
	LastRead string `json:"last_read"`
}

func main() {
	baseURL := flag.String("url", "http://127.0.0.1:5000", "journal base URL")
	count := flag.Int("n", 20, "entries to submit")
	flag.Parse()

	fmt.Println("=== Journal Smoke Test ===")
	fmt.Print("Waiting for server... ")
	before, err := waitForHealth(*baseURL)
	if err != nil {
		fmt.Println("FAILED:", err)
		os.Exit(1)
	}
	fmt.Printf("OK (%d entries, last read from %s)\n", before.Entries, before.LastRead)

	run := time.Now().Format("150405")
	var latencies []time.Duration
	for i := 0; i < *count; i++ {
		marker := fmt.Sprintf("smoke-%s-%03d", run, i)
		lat, err := submit(*baseURL, marker)
		if err != nil {
			fmt.Println("FAILED:", err)
			os.Exit(1)
		}
		latencies = append(latencies, lat)
	}

	body, err := get(*baseURL + "/entries")
	if err != nil {
		fmt.Println("FAILED:", err)
		os.Exit(1)
	}
	last := -1
	for i := 0; i < *count; i++ {
		marker := fmt.Sprintf("smoke-%s-%03d", run, i)
		pos := strings.Index(body, marker)
		if pos < 0 || pos < last {
			fmt.Printf("FAILED: %s missing or out of order in /entries\n", marker)
			os.Exit(1)
		}
		last = pos
	}

	after, err := fetchHealth(*baseURL)
	if err != nil {
		fmt.Println("FAILED:", err)
		os.Exit(1)
	}
	if after.Entries != before.Entries+*count {
		fmt.Printf("FAILED: expected %d entries, health reports %d\n", before.Entries+*count, after.Entries)
		os.Exit(1)
	}

	sort.Slice(latencies, func(i, j int) bool { return latencies[i] < latencies[j] })
	fmt.Printf("\n  Submitted %d entries | Avg %s | P50 %s | P95 %s\n",
		*count, fmtDur(avgDuration(latencies)), fmtDur(percentile(latencies, 0.50)), fmtDur(percentile(latencies, 0.95)))
	fmt.Printf("  Store now holds %d entries (last read from %s)\n", after.Entries, after.LastRead)
}

func submit(baseURL, marker string) (time.Duration, error) {
	form := url.Values{
		"date":     {time.Now().Format("2006-01-02")},
		"time":     {time.Now().Format("15:04")},
		"location": {"smoke test"},
		"summary":  {marker},
	}
	start := time.Now()
	resp, err := httpClient.PostForm(baseURL+"/submit", form)
	lat := time.Since(start)
	if err != nil {
		return lat, err
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusSeeOther || resp.Header.Get("Location") != "/" {
		return lat, fmt.Errorf("POST /submit: unexpected %d -> %q", resp.StatusCode, resp.Header.Get("Location"))
	}
	return lat, nil
}

func get(u string) (string, error) {
	resp, err := httpClient.Get(u)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("GET %s: status %d", u, resp.StatusCode)
	}
	return string(data), nil
}

func fetchHealth(baseURL string) (*health, error) {
	body, err := get(baseURL + "/health")
	if err != nil {
		return nil, err
	}
	var h health
	if err = json.Unmarshal([]byte(body), &h); err != nil {
		return nil, err
	}
	return &h, nil
}

// waitForHealth also lists the entries once so the health counters reflect the store.
func waitForHealth(baseURL string) (*health, error) {
	var lastErr error
	for i := 0; i < 30; i++ {
		if _, err := get(baseURL + "/entries"); err != nil {
			lastErr = err
			time.Sleep(200 * time.Millisecond)
			continue
		}
		return fetchHealth(baseURL)
	}
	return nil, fmt.Errorf("server not responding: %w", lastErr)
}

func avgDuration(d []time.Duration) time.Duration {
	if len(d) == 0 {
		return 0
	}
	var sum time.Duration
	for _, v := range d {
		sum += v
	}
	return sum / time.Duration(len(d))
}

func percentile(d []time.Duration, p float64) time.Duration {
	if len(d) == 0 {
		return 0
	}
	idx := int(float64(len(d)) * p)
	if idx >= len(d) {
		idx = len(d) - 1
	}
	return d[idx]
}

func fmtDur(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
	return fmt.Sprintf("%.1fms", float64(d.Microseconds())/1000.0)
}
