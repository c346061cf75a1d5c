// Package testkit generates synthetic feedback datasets for tests and
// the sample subcommand.
package testkit

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
)

// GeneratorConfig configures the feedback data generator
type GeneratorConfig struct {
	RowCount      int     `json:"row_count"`
	PositiveRatio float64 `json:"positive_ratio"`
	NegativeRatio float64 `json:"negative_ratio"`
	Seed          int64   `json:"seed"`
}

// DefaultGeneratorConfig returns sensible defaults for feedback generation
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		RowCount:      200,
		PositiveRatio: 0.45,
		NegativeRatio: 0.30,
		Seed:          42,
	}
}

// FeedbackGenerator generates plausible customer feedback rows
type FeedbackGenerator struct {
	config GeneratorConfig
	rng    *rand.Rand
}

// NewFeedbackGenerator creates a new feedback generator
func NewFeedbackGenerator(config GeneratorConfig) *FeedbackGenerator {
	return &FeedbackGenerator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

var positivePhrases = []string{
	"Great product, the quality is excellent and I would recommend it to anyone.",
	"Amazing customer service, the support agent was wonderful and solved everything fast.",
	"Love the website, the interface is perfect and navigation is easy.",
	"Delivery arrived early and the package was in perfect condition, very happy.",
	"Fantastic value for the price, best purchase I have made this year.",
	"The app works perfectly and the online checkout was a pleasant surprise.",
}

var negativePhrases = []string{
	"Terrible experience, the item arrived broken and support was useless.",
	"Shipping was slow and the delivery person left the package in the rain.",
	"The product quality is poor and the material feels cheap, very disappointed.",
	"Horrible customer service, the agent was rude over the phone.",
	"The website is confusing and the app keeps crashing, worst interface ever.",
	"Way too expensive for what you get, I hate that I wasted my money.",
}

var neutralPhrases = []string{
	"The item does what the description says, nothing more to add.",
	"Received an email about my order status yesterday afternoon.",
	"I ordered the standard version through the online store last month.",
	"The package contains the product and a short printed manual.",
}

// Rows returns a header row followed by the generated data rows. The
// shape matches a typical export: id, feedback text, numeric rating.
func (g *FeedbackGenerator) Rows() [][]string {
	rows := [][]string{{"customer_id", "feedback", "rating"}}
	for i := 0; i < g.config.RowCount; i++ {
		text, rating := g.nextFeedback()
		rows = append(rows, []string{
			fmt.Sprintf("C%04d", i+1),
			text,
			fmt.Sprintf("%d", rating),
		})
	}
	return rows
}

func (g *FeedbackGenerator) nextFeedback() (string, int) {
	roll := g.rng.Float64()
	switch {
	case roll < g.config.PositiveRatio:
		return positivePhrases[g.rng.Intn(len(positivePhrases))], 4 + g.rng.Intn(2)
	case roll < g.config.PositiveRatio+g.config.NegativeRatio:
		return negativePhrases[g.rng.Intn(len(negativePhrases))], 1 + g.rng.Intn(2)
	default:
		return neutralPhrases[g.rng.Intn(len(neutralPhrases))], 3
	}
}

// WriteCSV writes the generated dataset to a CSV file
func (g *FeedbackGenerator) WriteCSV(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.WriteAll(g.Rows()); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	writer.Flush()
	return writer.Error()
}
