package model

import (
	"math"
	"strconv"
	"strings"
)

// Score is a mutation score in percent, rounded to two decimal places.
type Score float64

// MaxScore is the highest possible mutation score.
const MaxScore Score = 100

// NewScore computes round(killed/total*100, 2). A report without mutations scores 0.
func NewScore(killed, total int) Score {
	if total <= 0 {
		return 0
	}

	return RoundScore(float64(killed) / float64(total) * 100)
}

// RoundScore rounds a percentage to two decimal places. Exact half-cent ties
// go to the even digit (15.625 -> 15.62).
func RoundScore(value float64) Score {
	return Score(math.RoundToEven(value*100) / 100)
}

// ParseScore parses the text form of a score.
func ParseScore(text string) (Score, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, err
	}

	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, strconv.ErrSyntax
	}

	return Score(value), nil
}

// String returns the shortest decimal form, always with a fractional part (70.0, 66.67).
func (s Score) String() string {
	text := strconv.FormatFloat(float64(s), 'f', -1, 64)
	if !strings.Contains(text, ".") {
		text += ".0"
	}

	return text
}

// Percent renders the score with a percent sign.
func (s Score) Percent() string {
	return s.String() + "%"
}

// Ratio returns the score as a fraction in [0, 1].
func (s Score) Ratio() float64 {
	return float64(s) / float64(MaxScore)
}

// Valid reports whether the score lies in [0, 100].
func (s Score) Valid() bool {
	return s >= 0 && s <= MaxScore
}
