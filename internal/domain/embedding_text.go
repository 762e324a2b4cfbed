package domain

import (
	"strings"

	"github.com/google/uuid"
)

// EmbeddingSource holds the fields of a todo-like record that are turned into embedding text.
type EmbeddingSource struct {
	Title       string
	Description string
	Urgency     TodoUrgency
	OwnerID     *uuid.UUID
}

// BuildEmbeddingText canonicalizes src into the text sent to the embedding provider.
// The line order must stay stable across releases.
func BuildEmbeddingText(src EmbeddingSource) (string, error) {
	if strings.TrimSpace(src.Title) == "" {
		return "", NewValidationErr("todo must have a title to be embedded")
	}
	if strings.TrimSpace(string(src.Urgency)) == "" {
		return "", NewValidationErr("todo must have an urgency to be embedded")
	}

	lines := []string{"Título: " + src.Title}
	if src.Description != "" {
		lines = append(lines, "Descrição: "+src.Description)
	}
	lines = append(lines, "Urgência: "+string(src.Urgency))
	if src.OwnerID != nil {
		lines = append(lines, "ID do Usuário: "+src.OwnerID.String())
	}

	return strings.Join(lines, "\n"), nil
}
