package models

import "time"

// AuditLog represents an audit trail event in the auditLogs collection.
type AuditLog struct {
	ID         string                 `json:"id" firestore:"-"`
	Timestamp  time.Time              `json:"timestamp" firestore:"timestamp,serverTimestamp"`
	UserID     string                 `json:"userId" firestore:"userId"`
	Action     string                 `json:"action" firestore:"action"` // e.g. "RECIPE_CREATE", "PLAN_UPDATE"
	TargetType string                 `json:"targetType,omitempty" firestore:"targetType,omitempty"`
	TargetID   string                 `json:"targetId,omitempty" firestore:"targetId,omitempty"`
	Details    map[string]interface{} `json:"details,omitempty" firestore:"details,omitempty"`
}
