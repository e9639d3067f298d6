package detect

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/clauseai/clausehound/internal/common"
	"github.com/clauseai/clausehound/pkg/coordinator"
	"github.com/clauseai/clausehound/pkg/extract"
	"github.com/clauseai/clausehound/pkg/fetcher"
	"github.com/clauseai/clausehound/pkg/messaging"
	"github.com/clauseai/clausehound/pkg/pagecontext"
	"github.com/clauseai/clausehound/pkg/runner"
	"github.com/clauseai/clausehound/pkg/statestore"
	"github.com/clauseai/clausehound/pkg/vocab"
)

// DetectAction fetches a page and runs the full detection pipeline on it:
// build PageContext, extract signals, decide, report to the coordinator, and
// print the DetectionResult.
func DetectAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	rawURL, err := common.SanitizeAndValidateURL(c.String("url"))
	if err != nil {
		return fmt.Errorf("invalid --url: %w", err)
	}

	html, err := fetchHTML(c, logger, rawURL)
	if err != nil {
		return err
	}

	page, err := pagecontext.FromHTML(rawURL, html)
	if err != nil {
		return err
	}

	store, closeStore, err := openStore(c.String("db"))
	if err != nil {
		return err
	}
	defer closeStore()

	bus := messaging.NewBus(logger)
	coord := coordinator.New(store, &logBadge{log: logger}, nil, logger)
	coord.Register(bus)

	tabID := c.Int("tab")
	prompt := &logPrompt{log: logger}
	run := runner.New(vocab.Default(), bus, prompt, tabID, logger)
	run.Register()

	result := run.OnPageLoad(c.Context, page)

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// fetchHTML pulls the page body. PDF responses skip HTML parsing: the URL
// heuristics carry the whole PDF signal.
func fetchHTML(c *cli.Context, logger *slog.Logger, rawURL string) (string, error) {
	f := fetcher.New()
	resp, err := f.Get(c.Context, rawURL)
	if err != nil {
		return "", fmt.Errorf("failed to fetch page: %w", err)
	}

	if extract.DetectType(resp.Body, resp.ContentType) == extract.ContentPDF {
		logger.Info("PDF response, skipping DOM extraction", "url", rawURL)
		return "", nil
	}
	return string(resp.Body), nil
}

func openStore(dbPath string) (statestore.Store, func(), error) {
	if dbPath == "" {
		return statestore.NewMemory(), func() {}, nil
	}
	store, err := statestore.OpenPath(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open state database: %w", err)
	}
	return store, func() { _ = store.Close() }, nil
}

// logBadge is the CLI's indicator surface: it records badge updates in the
// log instead of painting a toolbar.
type logBadge struct {
	log *slog.Logger
}

func (b *logBadge) SetBadge(tabID int, text, color string) error {
	b.log.Info("badge updated", "tab_id", tabID, "text", text, "color", color)
	return nil
}

// logPrompt is the CLI's prompt affordance: one line on stdout, at most once.
type logPrompt struct {
	log   *slog.Logger
	shown bool
}

func (p *logPrompt) Visible() bool {
	return p.shown
}

func (p *logPrompt) Show(url, title string) error {
	p.shown = true
	fmt.Fprintf(os.Stderr, "Contract page detected: %s\nRun `clausehound extract --url %q` to pull its text.\n",
		strings.TrimSpace(title), url)
	return nil
}
