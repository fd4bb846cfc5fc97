package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// ### Start - fixed configs (no change)
// These values define deterministic test data generation and must match expected results.
const (
	totalEvents = 20000 // Total number of unique machine events to generate
)

var (
	machines = []string{"M-001", "M-002", "M-003", "M-004"}
	lines    = []string{"L-A", "L-B", "L-C"}
)

// ### End - fixed configs

type eventJSON struct {
	EventID     string `json:"eventId"`
	EventTime   string `json:"eventTime"`
	MachineID   string `json:"machineId"`
	DurationMs  int64  `json:"durationMs"`
	DefectCount int    `json:"defectCount"`
	LineID      string `json:"lineId"`
	FactoryID   string `json:"factoryId"`
}

type ingestResponse struct {
	Accepted int `json:"accepted"`
	Deduped  int `json:"deduped"`
	Updated  int `json:"updated"`
	Rejected int `json:"rejected"`
}

type statsResponse struct {
	EventsCount  int64 `json:"eventsCount"`
	DefectsCount int64 `json:"defectsCount"`
}

type topLinesResponse struct {
	Lines []struct {
		LineID       string `json:"lineId"`
		TotalDefects int64  `json:"totalDefects"`
		EventCount   int64  `json:"eventCount"`
	} `json:"lines"`
}

type batchToSend struct {
	batchIndex int
	jsonData   []byte
	isOriginal bool
}

// main runs the e2e scenario: 001_concurrent_batch_dedup
//
// It sends totalEvents machine events in batches to a running server, resends
// a share of those batches concurrently under the same Idempotency-Key, and
// then checks that the stats endpoints see every event exactly once.
//
// Expected results:
//   - Every request returns 200
//   - accepted summed over all responses equals totalEvents
//   - deduped summed over all responses equals the number of resent events
//   - Per machine eventsCount and defectsCount match the generated data
//   - Top defect lines for F-01 list all three lines with matching totals
func main() {
	// these configs can be changed to run the scenario
	baseURL := "http://localhost:8080" // Base URL of the factory monitoring API server
	itemsPerBatch := 200               // Number of events per batch. Original batches = totalEvents / itemsPerBatch
	parallel := 8                      // Number of concurrent batch requests to send
	totalDuplicates := 40              // Number of batches resent after their original

	if totalEvents%itemsPerBatch != 0 {
		fmt.Fprintf(os.Stderr, "ERROR: TOTAL_EVENTS (%d) must be divisible by ITEMS_PER_BATCH (%d)\n", totalEvents, itemsPerBatch)
		os.Exit(1)
	}
	batchCount := totalEvents / itemsPerBatch

	// Events live in the hour that ended before the run started, so none of them
	// are in the future from the server's point of view.
	windowEnd := time.Now().UTC().Truncate(time.Hour)
	windowStart := windowEnd.Add(-time.Hour)
	runID := time.Now().UTC().Format("20060102T150405")

	fmt.Println("Starting e2e scenario: 001_concurrent_batch_dedup")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("RUN_ID: %s\n", runID)
	fmt.Printf("WINDOW: [%s, %s)\n", windowStart.Format(time.RFC3339), windowEnd.Format(time.RFC3339))
	fmt.Printf("ITEMS_PER_BATCH: %d\n", itemsPerBatch)
	fmt.Printf("BATCH_COUNT: %d\n", batchCount)
	fmt.Printf("PARALLEL: %d\n", parallel)
	fmt.Printf("TOTAL_DUPLICATES: %d\n", totalDuplicates)
	fmt.Println()

	events := generateAllEvents(runID, windowStart)
	wantEvents := make(map[string]int64)
	wantDefects := make(map[string]int64)
	wantLineDefects := make(map[string]int64)
	for _, e := range events {
		wantEvents[e.MachineID]++
		wantDefects[e.MachineID] += int64(e.DefectCount)
		wantLineDefects[e.LineID] += int64(e.DefectCount)
	}

	batchesToSend := make([]batchToSend, 0, batchCount+totalDuplicates)
	for batchIndex := 1; batchIndex <= batchCount; batchIndex++ {
		chunk := events[(batchIndex-1)*itemsPerBatch : batchIndex*itemsPerBatch]
		jsonData, err := json.Marshal(chunk)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: Failed to generate JSON for batch %d: %v\n", batchIndex, err)
			os.Exit(1)
		}
		batchesToSend = append(batchesToSend, batchToSend{batchIndex: batchIndex, jsonData: jsonData, isOriginal: true})
	}
	for i := 0; i < totalDuplicates; i++ {
		original := batchesToSend[i%batchCount]
		batchesToSend = append(batchesToSend, batchToSend{batchIndex: original.batchIndex, jsonData: original.jsonData})
	}
	sort.SliceStable(batchesToSend, func(i, j int) bool {
		return batchesToSend[i].batchIndex < batchesToSend[j].batchIndex
	})

	workerChan := make(chan struct{}, parallel)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var failures []error
	var accepted, deduped, updated, rejected int64

	for _, batch := range batchesToSend {
		wg.Add(1)
		workerChan <- struct{}{}

		go func(b batchToSend) {
			defer wg.Done()
			defer func() { <-workerChan }()

			resp, err := sendBatch(baseURL, runID, b)
			if err != nil {
				mu.Lock()
				failures = append(failures, fmt.Errorf("batch %d (original=%v): %w", b.batchIndex, b.isOriginal, err))
				mu.Unlock()
				return
			}
			atomic.AddInt64(&accepted, int64(resp.Accepted))
			atomic.AddInt64(&deduped, int64(resp.Deduped))
			atomic.AddInt64(&updated, int64(resp.Updated))
			atomic.AddInt64(&rejected, int64(resp.Rejected))
		}(batch)
	}
	wg.Wait()

	if len(failures) > 0 {
		for _, err := range failures {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		}
		os.Exit(1)
	}

	fmt.Println("=== Ingestion ===")
	fmt.Printf("Accepted: %d\n", accepted)
	fmt.Printf("Deduped: %d\n", deduped)
	fmt.Printf("Updated: %d\n", updated)
	fmt.Printf("Rejected: %d\n", rejected)

	var mismatches []string
	check := func(what string, got, want int64) {
		if got != want {
			mismatches = append(mismatches, fmt.Sprintf("%s: got %d, want %d", what, got, want))
		}
	}
	check("accepted", accepted, totalEvents)
	check("deduped", deduped, int64(totalDuplicates*itemsPerBatch))
	check("updated", updated, 0)
	check("rejected", rejected, 0)

	fmt.Println("=== Stats ===")
	for _, machineID := range machines {
		var stats statsResponse
		query := url.Values{
			"machineId": {runID + "-" + machineID},
			"start":     {windowStart.Format(time.RFC3339)},
			"end":       {windowEnd.Format(time.RFC3339)},
		}
		if err := getJSON(baseURL+"/api/stats?"+query.Encode(), &stats); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: stats for %s: %v\n", machineID, err)
			os.Exit(1)
		}
		fmt.Printf("%s: events=%d defects=%d\n", machineID, stats.EventsCount, stats.DefectsCount)
		check(machineID+" eventsCount", stats.EventsCount, wantEvents[runID+"-"+machineID])
		check(machineID+" defectsCount", stats.DefectsCount, wantDefects[runID+"-"+machineID])
	}

	var top topLinesResponse
	query := url.Values{
		"factoryId": {runID + "-F-01"},
		"from":      {windowStart.Format(time.RFC3339)},
		"to":        {windowEnd.Format(time.RFC3339)},
	}
	if err := getJSON(baseURL+"/api/stats/top-defect-lines?"+query.Encode(), &top); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: top defect lines: %v\n", err)
		os.Exit(1)
	}
	check("top lines", int64(len(top.Lines)), int64(len(lines)))
	for _, line := range top.Lines {
		fmt.Printf("%s: defects=%d events=%d\n", line.LineID, line.TotalDefects, line.EventCount)
		check(line.LineID+" totalDefects", line.TotalDefects, wantLineDefects[line.LineID])
	}

	fmt.Println()
	if len(mismatches) > 0 {
		for _, m := range mismatches {
			fmt.Fprintf(os.Stderr, "MISMATCH: %s\n", m)
		}
		os.Exit(1)
	}
	fmt.Println("Scenario completed successfully")
}

func generateAllEvents(runID string, windowStart time.Time) []eventJSON {
	events := make([]eventJSON, 0, totalEvents)
	for i := 0; i < totalEvents; i++ {
		occurredAt := windowStart.Add(time.Duration(i%3600) * time.Second)
		events = append(events, eventJSON{
			EventID:     fmt.Sprintf("%s-E-%06d", runID, i),
			EventTime:   occurredAt.Format(time.RFC3339),
			MachineID:   runID + "-" + machines[i%len(machines)],
			DurationMs:  int64(500 + i%1000),
			DefectCount: i % 5,
			LineID:      lines[i%len(lines)],
			FactoryID:   runID + "-F-01",
		})
	}
	return events
}

func sendBatch(baseURL, runID string, batch batchToSend) (*ingestResponse, error) {
	// Same key for all copies of a batch
	idempotencyKey := fmt.Sprintf("%s-batch-%06d", runID, batch.batchIndex)

	req, err := http.NewRequest(http.MethodPost, baseURL+"/api/events/batch", bytes.NewReader(batch.jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", idempotencyKey)

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body)
	}

	var result ingestResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &result, nil
}

func getJSON(target string, into any) error {
	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Get(target)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body)
	}
	return json.Unmarshal(body, into)
}
