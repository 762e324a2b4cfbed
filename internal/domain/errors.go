package domain

// errors.go defines domain-specific error types.
type domainErr struct {
	message string
}

// Error returns the error message.
func (e domainErr) Error() string {
	return e.message
}

// NotFoundErr represents an error when a requested entity is not found.
type NotFoundErr struct {
	domainErr
}

// NewNotFoundErr creates a new NotFoundErr with the given message.
func NewNotFoundErr(message string) *NotFoundErr {
	return &NotFoundErr{
		domainErr: domainErr{message: message},
	}
}

// ValidationErr represents an error when validation fails.
type ValidationErr struct {
	domainErr
}

// NewValidationErr creates a new ValidationErr with the given message.
func NewValidationErr(message string) *ValidationErr {
	return &ValidationErr{
		domainErr: domainErr{message: message},
	}
}

// ProviderErr represents a failure of the external AI provider (transport or API error).
type ProviderErr struct {
	domainErr
}

// NewProviderErr creates a new ProviderErr wrapping the provider failure message.
func NewProviderErr(message string) *ProviderErr {
	return &ProviderErr{
		domainErr: domainErr{message: "provider error: " + message},
	}
}

// InvalidProviderResponseErr represents a provider payload with an unexpected shape.
type InvalidProviderResponseErr struct {
	domainErr
}

// NewInvalidProviderResponseErr creates a new InvalidProviderResponseErr.
func NewInvalidProviderResponseErr(message string) *InvalidProviderResponseErr {
	return &InvalidProviderResponseErr{
		domainErr: domainErr{message: message},
	}
}

// AIResponseParseErr represents a completion that could not be turned into a todo draft.
type AIResponseParseErr struct {
	domainErr
}

// NewAIResponseParseErr creates a new AIResponseParseErr.
func NewAIResponseParseErr(message string) *AIResponseParseErr {
	return &AIResponseParseErr{
		domainErr: domainErr{message: "failed to parse AI response: " + message},
	}
}

// EmbeddingGenerationErr is the single error kind returned by embedding generation,
// whatever the underlying cause was.
type EmbeddingGenerationErr struct {
	domainErr
}

// NewEmbeddingGenerationErr collapses cause into an EmbeddingGenerationErr.
func NewEmbeddingGenerationErr(cause error) *EmbeddingGenerationErr {
	return &EmbeddingGenerationErr{
		domainErr: domainErr{message: "embedding generation failed: " + cause.Error()},
	}
}

// SearchErr is the single error kind returned by the semantic search pipeline.
type SearchErr struct {
	domainErr
}

// NewSearchErr collapses cause into a SearchErr.
func NewSearchErr(cause error) *SearchErr {
	return &SearchErr{
		domainErr: domainErr{message: "Semantic search failed: " + cause.Error()},
	}
}

// CreationFailedErr is the single error kind returned by AI-assisted todo creation.
// It is a client-class error.
type CreationFailedErr struct {
	domainErr
}

// NewCreationFailedErr collapses cause into a CreationFailedErr.
func NewCreationFailedErr(cause error) *CreationFailedErr {
	return &CreationFailedErr{
		domainErr: domainErr{message: "Failed to create todo with AI: " + cause.Error()},
	}
}
