package humanid

import (
	"fmt"
	"math"

	"github.com/dmitrymomot/namekit/pkg/vocab"
)

// sampleSizes is the candidate generation-volume ladder evaluated by
// Analyze, already in ascending order.
var sampleSizes = []int{50, 100, 200, 500, 1000, 2000, 5000, 10000, 20000, 50000}

// Scenario estimates the collision risk of drawing SampleSize identifiers
// from the full combination space. Percentage is Probability rendered as
// "12.34%".
type Scenario struct {
	SampleSize  int
	Probability float64
	Percentage  string
}

// Analysis summarizes the combination space and the collision risk ladder
// for one generation configuration.
type Analysis struct {
	TotalCombinations int
	Scenarios         []Scenario
}

// Combinations returns the number of distinct identifiers producible with
// wordCount components and suffixRange possible suffix values. Pass a
// suffixRange of 1 for configurations without a suffix. A non-positive
// suffixRange yields 0, representing an impossible configuration.
func Combinations(wordCount, suffixRange int) (int, error) {
	if wordCount < 1 || wordCount > 5 {
		return 0, ErrInvalidWordCount
	}
	if suffixRange <= 0 {
		return 0, nil
	}

	total := suffixRange
	for _, cat := range vocab.Categories()[:wordCount] {
		total *= vocab.Size(cat)
	}
	return total, nil
}

// CollisionProbability estimates the chance that sample independent draws
// from total equally likely identifiers contain at least one duplicate,
// using the birthday-paradox approximation 1 - e^(-n²/2N) rather than the
// exact birthday formula.
func CollisionProbability(total, sample int) float64 {
	if sample >= total {
		return 1.0
	}
	if sample <= 1 {
		return 0.0
	}

	exponent := -(float64(sample) * float64(sample)) / (2.0 * float64(total))
	return 1.0 - math.Exp(exponent)
}

// Analyze computes the combination space for the configuration and a
// Scenario for every candidate sample size worth reporting, meaning below
// 80% of the space (a presentation cutoff, not a domain limit). Scenarios
// come back in ascending sample-size order.
func Analyze(wordCount, suffixRange int) (Analysis, error) {
	total, err := Combinations(wordCount, suffixRange)
	if err != nil {
		return Analysis{}, err
	}

	analysis := Analysis{TotalCombinations: total}
	for _, size := range sampleSizes {
		if float64(size) >= 0.8*float64(total) {
			continue
		}

		p := CollisionProbability(total, size)
		analysis.Scenarios = append(analysis.Scenarios, Scenario{
			SampleSize:  size,
			Probability: p,
			Percentage:  fmt.Sprintf("%.2f%%", p*100),
		})
	}

	return analysis, nil
}
