package integration

import (
	"encoding/json"
	"hash/fnv"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"unicode"
)

// fakeProviderDimension is the vector size of the fake embeddings.
const fakeProviderDimension = 256

// newFakeProvider serves the OpenAI-compatible embeddings and chat completions endpoints.
// Embeddings are normalized bag-of-words hashes, so texts sharing words are similar.
// Completions turn the user message into a todo draft.
func newFakeProvider() *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /embeddings", handleEmbeddings)
	mux.HandleFunc("POST /chat/completions", handleChatCompletions)
	return httptest.NewServer(mux)
}

func handleEmbeddings(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Input json.RawMessage `json:"input"`
		Model string          `json:"model"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var inputs []string
	if err := json.Unmarshal(req.Input, &inputs); err != nil {
		var single string
		if err := json.Unmarshal(req.Input, &single); err != nil {
			http.Error(w, "unsupported input", http.StatusBadRequest)
			return
		}
		inputs = []string{single}
	}

	data := make([]map[string]any, 0, len(inputs))
	tokens := 0
	for i, input := range inputs {
		words := tokenize(input)
		tokens += len(words)
		data = append(data, map[string]any{
			"object":    "embedding",
			"index":     i,
			"embedding": bagOfWords(words),
		})
	}

	writeJSON(w, map[string]any{
		"object": "list",
		"model":  req.Model,
		"data":   data,
		"usage":  map[string]int{"prompt_tokens": tokens, "total_tokens": tokens},
	})
}

func handleChatCompletions(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	userMessage := ""
	for _, msg := range req.Messages {
		if msg.Role == "user" {
			userMessage = msg.Content
		}
	}

	urgency := "low"
	if strings.Contains(strings.ToLower(userMessage), "hoje") {
		urgency = "urgent"
	}
	draft, _ := json.Marshal(map[string]string{
		"title":       strings.TrimSpace(userMessage),
		"description": "Criado a partir do pedido: " + userMessage,
		"urgency":     urgency,
	})

	writeJSON(w, map[string]any{
		"id":      "chatcmpl-fake",
		"object":  "chat.completion",
		"created": 0,
		"model":   req.Model,
		"choices": []map[string]any{
			{
				"index":         0,
				"finish_reason": "stop",
				"message": map[string]string{
					"role":    "assistant",
					"content": "```json\n" + string(draft) + "\n```",
				},
			},
		},
		"usage": map[string]int{"prompt_tokens": 42, "completion_tokens": 17, "total_tokens": 59},
	})
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

func bagOfWords(words []string) []float64 {
	vec := make([]float64, fakeProviderDimension)
	for _, word := range words {
		h := fnv.New32a()
		_, _ = h.Write([]byte(word))
		vec[h.Sum32()%fakeProviderDimension]++
	}

	var norm float64
	for _, v := range vec {
		norm += v * v
	}
	if norm == 0 {
		vec[0] = 1
		return vec
	}
	norm = math.Sqrt(norm)
	for i := range vec {
		vec[i] /= norm
	}
	return vec
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
