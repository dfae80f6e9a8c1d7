package utils

import "github.com/google/uuid"

// TraceIDGenerator issues request trace ids. Ids are UUIDv7, so they sort by
// creation time in logs; a random v4 id is used if v7 generation fails.
type TraceIDGenerator struct{}

func NewTraceIDGenerator() *TraceIDGenerator {
	return &TraceIDGenerator{}
}

func (g *TraceIDGenerator) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
