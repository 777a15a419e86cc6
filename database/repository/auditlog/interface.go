// Package auditlog records every tool-call outcome so operators can inspect
// what the voice assistant asked for and what it was told, without log
// spelunking.
package auditlog

import (
	"context"
	"time"
)

// Record is one tool-call invocation and its outcome.
type Record struct {
	ID         string            `bson:"id" json:"id"`
	ToolCallID string            `bson:"toolCallId,omitempty" json:"toolCallId,omitempty"`
	Tool       string            `bson:"tool" json:"tool"`
	Params     map[string]string `bson:"params,omitempty" json:"params,omitempty"`
	Outcome    string            `bson:"outcome" json:"outcome"`
	Response   string            `bson:"response,omitempty" json:"response,omitempty"`
	DurationMs int64             `bson:"durationMs" json:"durationMs"`
	CreatedAt  time.Time         `bson:"createdAt" json:"createdAt"`
}

// Repository defines persistence for tool-call records.
type Repository interface {
	Insert(ctx context.Context, rec Record) error
	ListRecent(ctx context.Context, limit int64) ([]Record, error)
}
