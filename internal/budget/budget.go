// Package budget assembles the daily brief: a greedy selection of unseen
// articles bounded by total read time and by emotional load, so the brief
// fits the reader's attention budget instead of the day's volume.
package budget

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"sort"
	"time"

	"newsbrief/internal/model"
)

// highArousalCutoff marks an article as high-arousal. At most one such
// article makes it into a brief.
const highArousalCutoff = 0.6

// Options bound one brief.
type Options struct {
	MaxReadTimeMin float64
	MaxArousalLoad float64
	Mode           string
	Now            time.Time // zero means time.Now()
}

// Select walks unseen candidates newest first, admitting each one that
// fits the remaining read-time budget, does not add a second high-arousal
// article, and keeps the projected mean |emotional| load under the cap.
// The load check is skipped for the first admission: a brief should never
// be empty just because the freshest story is heavy.
func Select(articles []model.ArticleRecord, opts Options) model.DailyBrief {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	candidates := make([]model.ArticleRecord, 0, len(articles))
	for _, a := range articles {
		if !a.Seen {
			candidates = append(candidates, a)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].PublishedAt > candidates[j].PublishedAt
	})

	var selected []model.ArticleRecord
	totalReadTime := 0.0
	emotionalSum := 0.0
	haveHighArousal := false

	for _, a := range candidates {
		if totalReadTime+a.ReadTimeMin > opts.MaxReadTimeMin {
			continue
		}
		if a.ArousalScore > highArousalCutoff && haveHighArousal {
			continue
		}
		if len(selected) > 0 {
			projected := (emotionalSum + math.Abs(a.EmotionalScore)) / float64(len(selected)+1)
			if projected > opts.MaxArousalLoad {
				continue
			}
		}

		selected = append(selected, a)
		totalReadTime += a.ReadTimeMin
		emotionalSum += math.Abs(a.EmotionalScore)
		if a.ArousalScore > highArousalCutoff {
			haveHighArousal = true
		}
	}

	load := 0.0
	if len(selected) > 0 {
		load = emotionalSum / float64(len(selected))
	}

	return model.DailyBrief{
		ID:             briefID(now),
		GeneratedAt:    now.UnixMilli(),
		Articles:       selected,
		TotalReadTime:  round2(totalReadTime),
		EmotionalLoad:  round2(load),
		Mode:           opts.Mode,
		ArticleCount:   len(selected),
		CandidateCount: len(candidates),
	}
}

// briefID hashes the UTC date and instant, so the id never depends on the
// host timezone.
func briefID(now time.Time) string {
	seed := fmt.Sprintf("brief-%s-%d", now.UTC().Format("2006-01-02"), now.UnixMilli())
	sum := sha256.Sum256([]byte(seed))
	return hex.EncodeToString(sum[:])[:16]
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
