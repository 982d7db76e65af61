package prediction

// Confidence bands derived from the probability's distance to 0.5.
const (
	ConfidenceHigh   = "High"
	ConfidenceMedium = "Medium"
	ConfidenceLow    = "Low"
)

const (
	RecommendationIntervene = "High abandon risk - intervention recommended"
	RecommendationMonitor   = "Moderate abandon risk - monitoring advised"
	RecommendationObserve   = "Early session - keep observing"
	RecommendationEngaged   = "Engaged user - no intervention needed"
)

func Confidence(probability float64) string {
	switch {
	case probability > 0.8 || probability < 0.2:
		return ConfidenceHigh
	case probability > 0.65 || probability < 0.35:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// Recommend picks the action message for a probability and the session's
// raw action count. The count is the pre-windowing one, so a long session
// truncated to the observation window still reads as a long session.
func Recommend(probability float64, rawActionCount int) string {
	switch {
	case probability > 0.7:
		return RecommendationIntervene
	case probability > 0.5:
		return RecommendationMonitor
	case rawActionCount < 5:
		return RecommendationObserve
	default:
		return RecommendationEngaged
	}
}
