package agent

import (
	"time"

	"github.com/scouterlab/talentscout/types"
)

// Stats aggregates per-conversation counters for the front end's analytics
// panel.
type Stats struct {
	SessionDuration    time.Duration           `json:"session_duration"`
	AverageTurnLatency time.Duration           `json:"average_turn_latency"`
	SentimentCounts    map[types.Sentiment]int `json:"sentiment_counts"`
	DetectedLanguage   string                  `json:"detected_language"`
}

func (iv *Interview) Stats() Stats {
	counts := make(map[types.Sentiment]int, len(iv.sentimentCounts))
	for sentiment, n := range iv.sentimentCounts {
		counts[sentiment] = n
	}
	var average time.Duration
	if len(iv.turnLatencies) > 0 {
		var total time.Duration
		for _, latency := range iv.turnLatencies {
			total += latency
		}
		average = total / time.Duration(len(iv.turnLatencies))
	}
	return Stats{
		SessionDuration:    time.Since(iv.startTime),
		AverageTurnLatency: average,
		SentimentCounts:    counts,
		DetectedLanguage:   iv.detectedLanguage,
	}
}
