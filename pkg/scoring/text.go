package scoring

import (
	"fmt"
	"strconv"
	"strings"
)

// RecommendationText renders a one-line human summary for a scored crop.
func RecommendationText(suitability, confidence float64, factors []string) string {
	s := fmtScore(suitability)
	c := fmtScore(confidence)
	switch {
	case suitability >= 80 && confidence >= 80:
		return fmt.Sprintf("Highly recommended crop with %s%% suitability and %s%% confidence. %s.",
			s, c, strings.Join(head(factors, 3), ", "))
	case suitability >= 60 && confidence >= 60:
		return fmt.Sprintf("Good choice with %s%% suitability and %s%% confidence. %s.",
			s, c, strings.Join(head(factors, 2), ", "))
	case suitability >= 40:
		return fmt.Sprintf("Moderate recommendation with %s%% suitability. Consider soil improvements. %s.",
			s, strings.Join(head(factors, 2), ", "))
	default:
		return fmt.Sprintf("Not recommended due to low suitability (%s%%). Requires significant soil/condition improvements.", s)
	}
}

func fmtScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func head(ss []string, n int) []string {
	if len(ss) > n {
		return ss[:n]
	}
	return ss
}
