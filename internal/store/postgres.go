package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/attune-health/attune/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pgMaxRetries = 5

// ErrVersionConflict signals a lost optimistic-concurrency race.
var ErrVersionConflict = errors.New("context version conflict")

// PostgresStore keeps conversation contexts in a versioned table. Updates
// are guarded by the version column, so a concurrent writer forces a
// re-read instead of silently overwriting.
type PostgresStore struct {
	db  *pgxpool.Pool
	ttl time.Duration
}

func NewPostgresStore(db *pgxpool.Pool, ttl time.Duration) *PostgresStore {
	if ttl <= 0 {
		ttl = DefaultContextTTL
	}
	return &PostgresStore{db: db, ttl: ttl}
}

func (s *PostgresStore) Get(ctx context.Context, sessionID string) (*domain.ConversationContext, error) {
	cc, _, err := s.load(ctx, sessionID)
	return cc, err
}

func (s *PostgresStore) load(ctx context.Context, sessionID string) (*domain.ConversationContext, int64, error) {
	var data []byte
	var version int64
	err := s.db.QueryRow(ctx,
		`SELECT data, version FROM conversation_contexts WHERE session_id = $1`,
		sessionID,
	).Scan(&data, &version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, 0, domain.ErrContextNotFound
		}
		return nil, 0, err
	}

	cc := &domain.ConversationContext{}
	if err := json.Unmarshal(data, cc); err != nil {
		return nil, 0, fmt.Errorf("unmarshal context: %w", err)
	}
	normalizeContext(cc)
	return cc, version, nil
}

func (s *PostgresStore) Update(ctx context.Context, sessionID string, fn func(*domain.ConversationContext)) (*domain.ConversationContext, error) {
	for i := 0; i < pgMaxRetries; i++ {
		cc, version, err := s.load(ctx, sessionID)
		fresh := false
		if errors.Is(err, domain.ErrContextNotFound) {
			cc = domain.NewConversationContext(sessionID)
			fresh = true
		} else if err != nil {
			return nil, err
		}

		fn(cc)
		cc.UpdatedAt = time.Now().UTC()

		payload, err := json.Marshal(cc)
		if err != nil {
			return nil, fmt.Errorf("marshal context: %w", err)
		}

		if fresh {
			_, err := s.db.Exec(ctx,
				`INSERT INTO conversation_contexts (session_id, data, version, updated_at)
				 VALUES ($1, $2, 1, NOW())`,
				sessionID, payload,
			)
			if err != nil {
				var pgErr *pgconn.PgError
				if errors.As(err, &pgErr) && pgErr.Code == "23505" {
					continue // another writer created the row, retry against it
				}
				return nil, err
			}
			return cc, nil
		}

		tag, err := s.db.Exec(ctx,
			`UPDATE conversation_contexts
			 SET data = $2, version = version + 1, updated_at = NOW()
			 WHERE session_id = $1 AND version = $3`,
			sessionID, payload, version,
		)
		if err != nil {
			return nil, err
		}
		if tag.RowsAffected() == 1 {
			return cc, nil
		}
		// Lost the race; re-read and try again.
	}
	return nil, ErrVersionConflict
}

func (s *PostgresStore) Evict(ctx context.Context, sessionID string) error {
	_, err := s.db.Exec(ctx,
		`DELETE FROM conversation_contexts WHERE session_id = $1`, sessionID)
	return err
}

func (s *PostgresStore) PruneExpired(ctx context.Context) (int, error) {
	tag, err := s.db.Exec(ctx,
		`DELETE FROM conversation_contexts WHERE updated_at < NOW() - make_interval(secs => $1)`,
		s.ttl.Seconds(),
	)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}
