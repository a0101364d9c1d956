package app

import "context"

// OptimizeUseCase is the single entry point the core exposes.
type OptimizeUseCase interface {
	Optimize(ctx context.Context, req OptimizeRequest) (*OptimizeResponse, error)
}

// OptimizeErrorCode discriminates wiring-level failures from the
// in-band "ERROR" unachievable record the core returns for request-level
// malformation (see OptimizeResponse).
type OptimizeErrorCode string

const (
	ErrKnowledgeBaseUnavailable OptimizeErrorCode = "KNOWLEDGE_BASE_UNAVAILABLE"
)

// OptimizeError is returned only for failures outside the request
// itself (e.g. the knowledge base could not be reached). Malformed
// requests are reported in-band per spec, not through this type.
type OptimizeError struct {
	Code    OptimizeErrorCode
	Message string
}

func (e *OptimizeError) Error() string { return e.Message }
