package classify

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	classifypkg "github.com/clauseai/clausehound/pkg/classify"
)

// ClassifyAction classifies a SaaS vendor from command-line input and prints
// the category, confidence, benchmark key, and top products.
func ClassifyAction(c *cli.Context) error {
	input := classifypkg.VendorInput{
		Name:        c.String("name"),
		Description: c.String("description"),
		WebsiteText: c.String("text"),
	}

	if file := c.String("file"); file != "" {
		raw, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read --file: %w", err)
		}
		input.WebsiteText = string(raw)
	}

	if tags := c.String("tags"); tags != "" {
		for _, tag := range strings.Split(tags, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				input.ProductTags = append(input.ProductTags, tag)
			}
		}
	}

	if input.WebsiteText == "" && input.Description == "" && len(input.ProductTags) == 0 {
		return fmt.Errorf("nothing to classify: provide --text, --file, --description, or --tags")
	}

	result := classifypkg.Classify(input, nil)
	if !c.Bool("breakdown") {
		result.Breakdown = nil
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
