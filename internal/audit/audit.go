// Package audit records row changes and logins and fans them out to
// websocket listeners.
package audit

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"erp/internal/models"
	"erp/internal/websocket"
)

// Action constants.
const (
	ActionCreate = "CREATE"
	ActionUpdate = "UPDATE"
	ActionDelete = "DELETE"
	ActionExport = "EXPORT"
	ActionLogin  = "LOGIN"
	ActionLogout = "LOGOUT"
	ActionReset  = "RESET"
)

// DefaultLimit caps List when no limit is given.
const DefaultLimit = 100

// Log inserts an audit row and broadcasts it. module is a screen id such as
// WMS0301 or a pseudo module like "auth".
func Log(ctx context.Context, db *sql.DB, hub *websocket.Hub, username, action, module, recordID, summary string) error {
	_, err := db.ExecContext(ctx,
		"INSERT INTO audit_log (username, action, module, record_id, summary) VALUES (?, ?, ?, ?, ?)",
		username, action, module, recordID, summary)
	if err != nil {
		return fmt.Errorf("audit %s %s: %w", action, module, err)
	}
	if hub != nil {
		hub.Broadcast(websocket.Event{
			Type:   strings.ToLower(module) + "_" + strings.ToLower(action) + "d",
			Screen: module,
			ID:     recordID,
			Action: action,
		})
	}
	return nil
}

// List returns the newest entries first, optionally restricted to module.
func List(ctx context.Context, db *sql.DB, module string, limit int) ([]models.AuditEntry, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	q := "SELECT id, username, action, module, record_id, COALESCE(summary,''), created_at FROM audit_log"
	args := []any{}
	if module != "" {
		q += " WHERE module = ?"
		args = append(args, module)
	}
	q += " ORDER BY id DESC LIMIT ?"
	args = append(args, limit)

	rows, err := db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list audit log: %w", err)
	}
	defer rows.Close()

	out := []models.AuditEntry{}
	for rows.Next() {
		var e models.AuditEntry
		if err := rows.Scan(&e.ID, &e.Username, &e.Action, &e.Module, &e.RecordID, &e.Summary, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan audit entry: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
