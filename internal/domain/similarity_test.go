package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func todoWithEmbedding(id string, embedding []float64) Todo {
	return Todo{
		ID:        uuid.MustParse(id),
		Title:     "todo " + id[len(id)-1:],
		Urgency:   TodoUrgency_LOW,
		Embedding: embedding,
	}
}

func TestSimilarityEngine_RankCandidates(t *testing.T) {
	engine := NewSimilarityEngine(3, DefaultSimilarityThreshold)
	query := []float64{1, 0, 0}

	exact := todoWithEmbedding("00000000-0000-0000-0000-000000000001", []float64{1, 0, 0})
	near := todoWithEmbedding("00000000-0000-0000-0000-000000000002", []float64{1, 1, 0})
	orthogonal := todoWithEmbedding("00000000-0000-0000-0000-000000000003", []float64{0, 1, 0})
	opposite := todoWithEmbedding("00000000-0000-0000-0000-000000000004", []float64{-1, 0, 0})
	noEmbedding := todoWithEmbedding("00000000-0000-0000-0000-000000000005", nil)
	wrongDimension := todoWithEmbedding("00000000-0000-0000-0000-000000000006", []float64{1, 0})
	tieA := todoWithEmbedding("00000000-0000-0000-0000-000000000007", []float64{2, 0, 0})
	tieB := todoWithEmbedding("00000000-0000-0000-0000-000000000008", []float64{3, 0, 0})

	tests := map[string]struct {
		candidates []Todo
		limit      int
		wantIDs    []uuid.UUID
	}{
		"no-candidates": {
			candidates: nil,
			limit:      10,
			wantIDs:    []uuid.UUID{},
		},
		"sorted-by-similarity-below-threshold-dropped": {
			candidates: []Todo{orthogonal, near, opposite, exact},
			limit:      10,
			wantIDs:    []uuid.UUID{exact.ID, near.ID},
		},
		"missing-and-wrong-dimension-embeddings-skipped": {
			candidates: []Todo{noEmbedding, wrongDimension, near},
			limit:      10,
			wantIDs:    []uuid.UUID{near.ID},
		},
		"limit-truncates": {
			candidates: []Todo{near, exact},
			limit:      1,
			wantIDs:    []uuid.UUID{exact.ID},
		},
		"ties-keep-input-order": {
			candidates: []Todo{tieB, exact, tieA},
			limit:      10,
			wantIDs:    []uuid.UUID{tieB.ID, exact.ID, tieA.ID},
		},
		"zero-limit-uses-default": {
			candidates: []Todo{exact},
			limit:      0,
			wantIDs:    []uuid.UUID{exact.ID},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := engine.RankCandidates(tt.candidates, query, tt.limit)
			require.NotNil(t, got)

			ids := make([]uuid.UUID, 0, len(got))
			for _, r := range got {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)

			for i, r := range got {
				assert.GreaterOrEqual(t, r.Similarity, engine.Threshold)
				if i > 0 {
					assert.LessOrEqual(t, r.Similarity, got[i-1].Similarity)
				}
			}
		})
	}
}

func TestSimilarityEngine_RankCandidates_ThresholdIsInclusive(t *testing.T) {
	engine := NewSimilarityEngine(2, 0.5)
	// cos(60°) == 0.5
	candidate := todoWithEmbedding("00000000-0000-0000-0000-000000000001", []float64{0.5, 0.8660254037844386})

	got := engine.RankCandidates([]Todo{candidate}, []float64{1, 0}, 10)
	if assert.Len(t, got, 1) {
		assert.InDelta(t, 0.5, got[0].Similarity, 1e-9)
	}
}

func TestSimilarityEngine_RankCandidates_DefaultLimit(t *testing.T) {
	engine := NewSimilarityEngine(2, DefaultSimilarityThreshold)
	candidates := make([]Todo, 0, 15)
	for i := 0; i < 15; i++ {
		candidates = append(candidates, Todo{ID: uuid.New(), Embedding: []float64{1, float64(i) / 100}})
	}

	got := engine.RankCandidates(candidates, []float64{1, 0}, 0)
	assert.Len(t, got, DefaultSearchLimit)
	assert.Equal(t, candidates[0].ID, got[0].ID)
}

func TestSimilarityEngine_RankCandidates_CopiesFields(t *testing.T) {
	engine := NewSimilarityEngine(2, 0)
	todo := Todo{
		ID:          uuid.New(),
		Title:       "Pagar aluguel",
		Description: "Até sexta",
		Urgency:     TodoUrgency_URGENT,
		Embedding:   []float64{1, 1},
	}

	got := engine.RankCandidates([]Todo{todo}, []float64{1, 1}, 5)
	require.Len(t, got, 1)
	assert.Equal(t, todo.ID, got[0].ID)
	assert.Equal(t, todo.Title, got[0].Title)
	assert.Equal(t, todo.Description, got[0].Description)
	assert.Equal(t, todo.Urgency, got[0].Urgency)
	assert.InDelta(t, 1.0, got[0].Similarity, 1e-9)
}
