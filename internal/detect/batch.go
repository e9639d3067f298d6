package detect

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"sync"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/clauseai/clausehound/internal/common"
	"github.com/clauseai/clausehound/models"
	"github.com/clauseai/clausehound/pkg/coordinator"
	"github.com/clauseai/clausehound/pkg/extract"
	"github.com/clauseai/clausehound/pkg/fetcher"
	"github.com/clauseai/clausehound/pkg/messaging"
	"github.com/clauseai/clausehound/pkg/pagecontext"
	"github.com/clauseai/clausehound/pkg/runner"
	"github.com/clauseai/clausehound/pkg/vocab"
)

const defaultWorkerCount = 4

// ScanConfig is the YAML config for a batch scan.
type ScanConfig struct {
	URLs        []string `yaml:"urls"`
	WorkerCount int      `yaml:"worker_count"`
}

// LoadScanConfig reads and validates a scan config file.
func LoadScanConfig(path string) (*ScanConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config ScanConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if len(config.URLs) == 0 {
		return nil, fmt.Errorf("config has no urls")
	}
	if config.WorkerCount <= 0 {
		config.WorkerCount = defaultWorkerCount
	}
	return &config, nil
}

type scanJob struct {
	TabID int
	URL   string
}

type scanResult struct {
	URL       string                  `json:"url"`
	TabID     int                     `json:"tab_id"`
	Result    *models.DetectionResult `json:"result,omitempty"`
	Error     string                  `json:"error,omitempty"`
	ErrorType string                  `json:"error_type,omitempty"`
}

// ScanAction runs the detection pipeline concurrently over every URL in a
// config file. Each URL gets its own tab id; all runs report into one shared
// coordinator, so the per-tab indicator state and the last-detection slot
// behave exactly as they do for single pages.
func ScanAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	config, err := LoadScanConfig(c.String("config"))
	if err != nil {
		return err
	}
	if workers := c.Int("workers"); workers > 0 {
		config.WorkerCount = workers
	}

	store, closeStore, err := openStore(c.String("db"))
	if err != nil {
		return err
	}
	defer closeStore()

	bus := messaging.NewBus(logger)
	coord := coordinator.New(store, &logBadge{log: logger}, nil, logger)
	coord.Register(bus)

	results := scan(c.Context, logger, config, bus)

	detected := 0
	for _, r := range results {
		if r.Result != nil && r.Result.ContractDetected {
			detected++
		}
	}
	logger.Info("Scan finished", "url_count", len(config.URLs), "contract_pages", detected)

	out, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	fmt.Println(string(out))

	for _, r := range results {
		if r.Error != "" {
			return fmt.Errorf("one or more pages failed")
		}
	}
	return nil
}

// scan fans the URLs out over a worker pool and collects every result.
func scan(ctx context.Context, logger *slog.Logger, config *ScanConfig, bus *messaging.Bus) []scanResult {
	logger.Info("Starting concurrent scan", "url_count", len(config.URLs), "workers", config.WorkerCount)

	var wg sync.WaitGroup
	jobs := make(chan scanJob, len(config.URLs))
	results := make(chan scanResult, len(config.URLs))

	for w := 1; w <= config.WorkerCount; w++ {
		wg.Add(1)
		go scanWorker(ctx, w, logger, bus, &wg, jobs, results)
	}

	for i, rawURL := range config.URLs {
		jobs <- scanJob{TabID: i + 1, URL: rawURL}
	}
	close(jobs)

	wg.Wait()
	close(results)
	logger.Info("All scan workers finished")

	collected := make([]scanResult, 0, len(config.URLs))
	for r := range results {
		collected = append(collected, r)
	}
	sort.Slice(collected, func(i, j int) bool {
		return collected[i].TabID < collected[j].TabID
	})
	return collected
}

func scanWorker(ctx context.Context, id int, logger *slog.Logger, bus *messaging.Bus, wg *sync.WaitGroup, jobs <-chan scanJob, results chan<- scanResult) {
	defer wg.Done()
	f := fetcher.New()
	tables := vocab.Default()

	for job := range jobs {
		logger.Info("Worker started job", "worker_id", id, "url", job.URL)
		result := scanResult{URL: job.URL, TabID: job.TabID}

		rawURL, err := common.SanitizeAndValidateURL(job.URL)
		if err != nil {
			logger.Error("Invalid URL", "worker_id", id, "url", job.URL, "error", err)
			result.Error = err.Error()
			result.ErrorType = "invalid_url"
			results <- result
			continue
		}

		resp, err := f.Get(ctx, rawURL)
		if err != nil {
			logger.Error("Error fetching page", "worker_id", id, "url", rawURL, "error", err)
			result.Error = err.Error()
			result.ErrorType = "fetch_error"
			results <- result
			continue
		}

		html := string(resp.Body)
		if extract.DetectType(resp.Body, resp.ContentType) == extract.ContentPDF {
			html = ""
		}

		page, err := pagecontext.FromHTML(rawURL, html)
		if err != nil {
			logger.Error("Error building page context", "worker_id", id, "url", rawURL, "error", err)
			result.Error = err.Error()
			result.ErrorType = "context_error"
			results <- result
			continue
		}

		run := runner.New(tables, bus, nil, job.TabID, logger)
		detection := run.OnPageLoad(ctx, page)
		result.Result = &detection

		results <- result
		logger.Info("Worker finished processing", "worker_id", id, "url", rawURL, "contract_detected", detection.ContractDetected)
	}
}
