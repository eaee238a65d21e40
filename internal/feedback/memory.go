package feedback

import (
	"context"
	"sync"
	"time"

	"github.com/morezero/interactions/pkg/db"
)

// MemoryStore keeps feedback in process memory. serve uses it when no
// DATABASE_URL is configured; nothing survives a restart.
type MemoryStore struct {
	mu     sync.Mutex
	nextID int64
	rows   []db.Feedback
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) InsertFeedback(_ context.Context, params db.InsertFeedbackParams) (*db.Feedback, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	f := db.Feedback{
		ID:       m.nextID,
		GuildID:  params.GuildID,
		UserID:   params.UserID,
		Username: params.Username,
		Topic:    params.Topic,
		Body:     params.Body,
		Created:  time.Now().UTC(),
	}
	m.rows = append(m.rows, f)
	return &f, nil
}

// ListFeedback returns the newest rows for guildID first, like the
// database query.
func (m *MemoryStore) ListFeedback(_ context.Context, guildID string, limit int) ([]db.Feedback, error) {
	limit = db.ClampLimit(limit)

	m.mu.Lock()
	defer m.mu.Unlock()

	var out []db.Feedback
	for i := len(m.rows) - 1; i >= 0 && len(out) < limit; i-- {
		if m.rows[i].GuildID == guildID {
			out = append(out, m.rows[i])
		}
	}
	return out, nil
}

func (m *MemoryStore) DeleteFeedback(_ context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, f := range m.rows {
		if f.ID == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// Len returns the number of stored rows.
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows)
}
