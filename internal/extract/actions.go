package extract

import (
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/clauseai/clausehound/internal/common"
	extractpkg "github.com/clauseai/clausehound/pkg/extract"
	"github.com/clauseai/clausehound/pkg/fetcher"
)

// ExtractAction fetches a URL and prints its cleaned contract text with
// length, word count, and detected language.
func ExtractAction(c *cli.Context) error {
	rawURL, err := common.SanitizeAndValidateURL(c.String("url"))
	if err != nil {
		return fmt.Errorf("invalid --url: %w", err)
	}

	result, err := extractpkg.FromURL(c.Context, fetcher.New(), rawURL, c.String("content-type"))
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
