package similarity

import (
	"context"
	"math"
	"sort"
	"strings"
	"unicode"

	"feedback-analyzer/dto"
	"feedback-analyzer/logger"
)

// Acceptance thresholds for merging two answers into one cluster. The
// embedding and word-overlap paths were tuned independently and really
// do use different values.
const (
	CosineThreshold  = 0.5
	JaccardThreshold = 0.6
)

// MaxRemarks caps the trending remark list.
const MaxRemarks = 20

// Item is one question/answer pair to deduplicate, tagged with the
// sentiment label its answer was classified as.
type Item struct {
	Question string
	Answer   string
	Label    string
}

type cluster struct {
	remark dto.TrendingRemark
	clean  string
	vec    []float64
}

// Cluster folds near-identical answers into frequency-counted remarks.
// Items are processed in input order and the first answer seen becomes
// the cluster representative. Only items with the same sentiment label
// may merge. Results are ordered by descending count and truncated to
// MaxRemarks.
//
// Merging first tries bidirectional substring containment of the
// cleaned answers, then cosine similarity of their embeddings. When emb
// is nil or an embedding call fails, the comparison degrades to Jaccard
// similarity over word sets.
func Cluster(ctx context.Context, emb Embedder, items []Item) []dto.TrendingRemark {
	clusters := make([]*cluster, 0, len(items))

	for _, item := range items {
		clean := cleanText(item.Answer)
		if clean == "" {
			continue
		}

		var itemVec []float64
		merged := false
		for _, c := range clusters {
			if c.remark.SentimentLabel != item.Label {
				continue
			}
			if strings.Contains(c.clean, clean) || strings.Contains(clean, c.clean) {
				c.remark.OccurrenceCount++
				merged = true
				break
			}
			if emb != nil {
				if itemVec == nil {
					itemVec = embed(ctx, emb, clean)
				}
				if c.vec == nil {
					c.vec = embed(ctx, emb, c.clean)
				}
				if itemVec != nil && c.vec != nil {
					if Cosine(itemVec, c.vec) > CosineThreshold {
						c.remark.OccurrenceCount++
						merged = true
						break
					}
					continue
				}
			}
			if Jaccard(clean, c.clean) > JaccardThreshold {
				c.remark.OccurrenceCount++
				merged = true
				break
			}
		}
		if merged {
			continue
		}

		clusters = append(clusters, &cluster{
			remark: dto.TrendingRemark{
				Question:        item.Question,
				Answer:          item.Answer,
				SentimentLabel:  item.Label,
				OccurrenceCount: 1,
			},
			clean: clean,
			vec:   itemVec,
		})
	}

	sort.SliceStable(clusters, func(i, j int) bool {
		return clusters[i].remark.OccurrenceCount > clusters[j].remark.OccurrenceCount
	})
	if len(clusters) > MaxRemarks {
		clusters = clusters[:MaxRemarks]
	}

	remarks := make([]dto.TrendingRemark, 0, len(clusters))
	for _, c := range clusters {
		remarks = append(remarks, c.remark)
	}
	return remarks
}

func embed(ctx context.Context, emb Embedder, text string) []float64 {
	vec, err := emb.Embed(ctx, text)
	if err != nil {
		logger.WarnWithFields("embedding failed, falling back to word overlap", logger.Fields{
			"error": err.Error(),
		})
		return nil
	}
	return vec
}

// Cosine returns the cosine similarity of two vectors, or 0 when either
// norm is zero.
func Cosine(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// Jaccard returns the word-set overlap of two cleaned texts.
func Jaccard(a, b string) float64 {
	wordsA := wordSet(a)
	wordsB := wordSet(b)
	if len(wordsA) == 0 && len(wordsB) == 0 {
		return 0
	}

	intersection := 0
	for w := range wordsA {
		if _, ok := wordsB[w]; ok {
			intersection++
		}
	}
	union := len(wordsA) + len(wordsB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

func wordSet(s string) map[string]struct{} {
	set := map[string]struct{}{}
	for _, w := range strings.Fields(s) {
		set[w] = struct{}{}
	}
	return set
}

// cleanText lowercases, strips punctuation and collapses whitespace so
// trivially different spellings of the same remark compare equal.
func cleanText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
