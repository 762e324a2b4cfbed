package domain

import (
	"sort"
	"time"

	"github.com/cleitonmarx/symbiont-semantic-todoapp/internal/common"
	"github.com/google/uuid"
)

const (
	// DefaultEmbeddingDimension is the vector size produced by the default embedding model.
	DefaultEmbeddingDimension = 1536
	// DefaultSimilarityThreshold is the minimum cosine similarity for a todo to be returned by a search.
	DefaultSimilarityThreshold = 0.3
	// DefaultSearchLimit is the number of results returned when no limit is given.
	DefaultSearchLimit = 10
	// MaxSearchLimit is the largest limit accepted by the search endpoints.
	MaxSearchLimit = 50
)

// SearchResult is a todo matched by a semantic search, without its embedding.
type SearchResult struct {
	ID          uuid.UUID
	Title       string
	Description string
	Urgency     TodoUrgency
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Similarity  float64
}

// SimilarityEngine ranks stored todos against a query vector.
type SimilarityEngine struct {
	Dimension int
	Threshold float64
}

// NewSimilarityEngine creates a SimilarityEngine with the given vector dimension and relevance threshold.
func NewSimilarityEngine(dimension int, threshold float64) SimilarityEngine {
	return SimilarityEngine{
		Dimension: dimension,
		Threshold: threshold,
	}
}

// RankCandidates scores every candidate against query and returns the most similar ones,
// best first. Candidates without an embedding of the configured dimension are skipped,
// as are the ones scoring below the threshold. Ties keep the order of candidates.
// A limit lower than 1 falls back to DefaultSearchLimit.
func (e SimilarityEngine) RankCandidates(candidates []Todo, query []float64, limit int) []SearchResult {
	if limit < 1 {
		limit = DefaultSearchLimit
	}

	results := []SearchResult{}
	for _, candidate := range candidates {
		if candidate.Embedding == nil || len(candidate.Embedding) != e.Dimension {
			continue
		}
		score, err := common.CosineSimilarity(query, candidate.Embedding)
		if err != nil {
			continue
		}
		if score < e.Threshold {
			continue
		}
		results = append(results, SearchResult{
			ID:          candidate.ID,
			Title:       candidate.Title,
			Description: candidate.Description,
			Urgency:     candidate.Urgency,
			CreatedAt:   candidate.CreatedAt,
			UpdatedAt:   candidate.UpdatedAt,
			Similarity:  score,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Similarity > results[j].Similarity
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}
