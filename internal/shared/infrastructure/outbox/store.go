package outbox

import (
	"context"
	"fmt"
	"time"

	"github.com/sbhunu/landadmin/internal/shared/infrastructure/database"
)

// Store implements Repository on the shared database abstraction. The SQL is
// driver-portable, so the same store serves PostgreSQL and SQLite.
type Store struct {
	conn database.Connection
}

// NewStore creates an outbox store.
func NewStore(conn database.Connection) *Store {
	return &Store{conn: conn}
}

// SaveBatch inserts messages using the transaction carried in ctx, so the
// enqueue commits atomically with the state change that produced the events.
func (s *Store) SaveBatch(ctx context.Context, msgs []*Message) error {
	exec := database.ExecutorFromContext(ctx, s.conn)
	for _, msg := range msgs {
		err := exec.QueryRow(ctx, `
			INSERT INTO outbox_messages (event_id, aggregate_type, aggregate_id, routing_key, payload, metadata, created_at, retry_count)
			VALUES ($1, $2, $3, $4, $5, $6, $7, 0)
			RETURNING id`,
			msg.EventID, msg.AggregateType, msg.AggregateID, msg.RoutingKey,
			[]byte(msg.Payload), []byte(msg.Metadata), msg.CreatedAt,
		).Scan(&msg.ID)
		if err != nil {
			return fmt.Errorf("save outbox message: %w", err)
		}
	}
	return nil
}

// GetUnpublished returns unpublished, non-dead messages whose retry time has
// passed, oldest first.
func (s *Store) GetUnpublished(ctx context.Context, limit int) ([]*Message, error) {
	exec := database.ExecutorFromContext(ctx, s.conn)
	rows, err := exec.Query(ctx, `
		SELECT id, event_id, aggregate_type, aggregate_id, routing_key, payload, metadata,
		       created_at, published_at, next_retry_at, retry_count, last_error
		FROM outbox_messages
		WHERE published_at IS NULL
		  AND dead_lettered_at IS NULL
		  AND (next_retry_at IS NULL OR next_retry_at <= $1)
		ORDER BY created_at, id
		LIMIT $2`,
		time.Now().UTC(), limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Message
	for rows.Next() {
		var (
			msg               Message
			payload, metadata []byte
		)
		if err := rows.Scan(
			&msg.ID, &msg.EventID, &msg.AggregateType, &msg.AggregateID, &msg.RoutingKey,
			&payload, &metadata, &msg.CreatedAt, &msg.PublishedAt, &msg.NextRetryAt,
			&msg.RetryCount, &msg.LastError,
		); err != nil {
			return nil, err
		}
		msg.Payload = payload
		msg.Metadata = metadata
		out = append(out, &msg)
	}
	return out, rows.Err()
}

// MarkPublished stamps the publish time.
func (s *Store) MarkPublished(ctx context.Context, id int64) error {
	exec := database.ExecutorFromContext(ctx, s.conn)
	_, err := exec.Exec(ctx,
		`UPDATE outbox_messages SET published_at = $1 WHERE id = $2`,
		time.Now().UTC(), id,
	)
	return err
}

// MarkFailed bumps the retry counter and schedules the next attempt.
func (s *Store) MarkFailed(ctx context.Context, id int64, errMsg string, nextRetryAt time.Time) error {
	exec := database.ExecutorFromContext(ctx, s.conn)
	_, err := exec.Exec(ctx, `
		UPDATE outbox_messages
		SET retry_count = retry_count + 1, last_error = $1, next_retry_at = $2
		WHERE id = $3`,
		errMsg, nextRetryAt.UTC(), id,
	)
	return err
}

// MarkDead parks a message permanently.
func (s *Store) MarkDead(ctx context.Context, id int64, reason string) error {
	exec := database.ExecutorFromContext(ctx, s.conn)
	_, err := exec.Exec(ctx, `
		UPDATE outbox_messages
		SET dead_lettered_at = $1, dead_letter_reason = $2
		WHERE id = $3`,
		time.Now().UTC(), reason, id,
	)
	return err
}

// DeleteOld prunes published messages older than the retention window and
// returns how many rows went away.
func (s *Store) DeleteOld(ctx context.Context, olderThan time.Duration) (int64, error) {
	exec := database.ExecutorFromContext(ctx, s.conn)
	res, err := exec.Exec(ctx, `
		DELETE FROM outbox_messages
		WHERE published_at IS NOT NULL AND published_at < $1`,
		time.Now().UTC().Add(-olderThan),
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
