// Package scoring computes idea ranking scores for the Top and Trending
// sort orders.
package scoring

import (
	"math"

	"github.com/echoboard/echoboard/internal/domain/models"
)

// referenceOffsetMillis anchors the trending time-decay term. The value
// is part of the ranking contract; changing it reorders existing data.
const referenceOffsetMillis = 1134028003

// decayDivisor controls how quickly recency dominates score in the
// trending order.
const decayDivisor = 45000

// Score is the static popularity score:
// fundersCount + voteValue + funded + expressionsValue + 1.
func Score(idea models.Idea) float64 {
	return float64(idea.FundersCount) + float64(idea.VoteValue) + float64(idea.Funded) + idea.ExpressionsValue + 1
}

// TrendingScore combines the log of the static score with a linear
// time-decay term, so fresh ideas outrank stale high scorers.
func TrendingScore(idea models.Idea) float64 {
	order := math.Log(math.Max(Score(idea), 1))
	millis := float64(idea.Created.UnixMilli() - referenceOffsetMillis)
	return math.Ceil(order + millis/decayDivisor)
}
