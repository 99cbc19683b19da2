// Command seed-items submits synthetic documents and events to a running
// service so readiness behavior can be exercised end to end.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	defaultNumItems = 200
	defaultWorkers  = 8
	defaultTimeout  = 10 * time.Second
	runTimeout      = 5 * time.Minute
)

// samples hold representative text per award theme plus some noise.
var samples = []struct {
	title string
	text  string
}{
	{"Leadership summit keynote", "Our executive director spoke about how to lead with purpose and inspire others through a community leadership initiative."},
	{"Mentorship program recap", "The mentorship and coaching workshop helped new team leads develop others and drive change across departments."},
	{"STEM workshop series", "Volunteers ran a science technology engineering math curriculum for local students, advancing education through hands-on learning."},
	{"Classroom outreach", "Teachers and students explored a new learning program that promotes academic achievement and scholarship."},
	{"Startup pitch night", "Founders presented innovation and entrepreneurship ideas, from prototypes to a new venture launched this quarter."},
	{"Hackathon results", "The team built a creative invention over the weekend, a breakthrough pilot for an emerging technology."},
	{"Neighborhood cleanup", "Residents joined a local community event to strengthen the region through grassroots civic engagement."},
	{"Town hall meeting", "The municipal council discussed regional development and how neighborhood volunteers support the district."},
	{"Charity fundraiser", "A service project raised funds for charity, with volunteers demonstrating civic responsibility and giving back."},
	{"Weekly standup notes", "Discussed sprint goals, blockers, and the release checklist for the billing migration."},
}

func main() {
	var (
		baseURL  = flag.String("url", "http://localhost:9080", "Base URL of the service")
		numItems = flag.Int("items", defaultNumItems, "Number of items to generate and submit")
		workers  = flag.Int("workers", defaultWorkers, "Number of concurrent submitters")
		timeout  = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		seed     = flag.Int64("seed", time.Now().UnixNano(), "Random seed")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	client := &http.Client{Timeout: *timeout}
	rng := rand.New(rand.NewSource(*seed))

	jobs := make(chan map[string]string, *workers)
	var wg sync.WaitGroup
	var mu sync.Mutex
	accepted, duplicates, failed := 0, 0, 0

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range jobs {
				status, err := submit(ctx, client, *baseURL, item)
				mu.Lock()
				switch {
				case err != nil || status >= http.StatusBadRequest:
					failed++
				case status == http.StatusOK:
					duplicates++
				default:
					accepted++
				}
				mu.Unlock()
			}
		}()
	}

	for i := 0; i < *numItems; i++ {
		s := samples[rng.Intn(len(samples))]
		kind := "document"
		if rng.Intn(2) == 1 {
			kind = "event"
		}
		jobs <- map[string]string{
			"external_id": uuid.NewString(),
			"kind":        kind,
			"title":       s.title,
			"text":        s.text,
		}
	}
	close(jobs)
	wg.Wait()

	fmt.Printf("submitted %d items: %d accepted, %d duplicates, %d failed\n",
		*numItems, accepted, duplicates, failed)
	if failed > 0 {
		os.Exit(1)
	}
}

func submit(ctx context.Context, client *http.Client, baseURL string, item map[string]string) (int, error) {
	body, err := json.Marshal(item)
	if err != nil {
		return 0, fmt.Errorf("marshal item: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/items", bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("submit item: %w", err)
	}
	defer resp.Body.Close()
	return resp.StatusCode, nil
}
