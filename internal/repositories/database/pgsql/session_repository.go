package pgsql

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/Theakashprasad/practice-tool-client/internal/apperrors"
	"github.com/Theakashprasad/practice-tool-client/internal/core/domain"
	portsrepo "github.com/Theakashprasad/practice-tool-client/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxSessionRepository persists browser sessions in Postgres.
type PgxSessionRepository struct {
	BaseRepository
	now func() time.Time
}

// NewSessionRepository creates a Postgres-backed session store.
func NewSessionRepository(db *pgxpool.Pool) *PgxSessionRepository {
	return &PgxSessionRepository{
		BaseRepository: BaseRepository{Pool: db},
		now:            time.Now,
	}
}

const (
	sessionsTable = "bff_sessions"

	loadSessionQuery = `
		SELECT session_id, backend_token, profile, created_at, expires_at
		FROM ` + sessionsTable + `
		WHERE session_id = $1 AND (expires_at IS NULL OR expires_at > $2)
	`

	upsertSessionQuery = `
		INSERT INTO ` + sessionsTable + ` (session_id, backend_token, profile, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (session_id) DO UPDATE
		SET backend_token = EXCLUDED.backend_token,
			profile = EXCLUDED.profile,
			expires_at = EXCLUDED.expires_at
	`

	clearSessionQuery = `DELETE FROM ` + sessionsTable + ` WHERE session_id = $1`

	purgeExpiredSessionsQuery = `DELETE FROM ` + sessionsTable + ` WHERE expires_at IS NOT NULL AND expires_at <= $1`
)

func (r *PgxSessionRepository) Load(ctx context.Context, sessionID string) (*domain.Session, error) {
	var (
		session   domain.Session
		profile   []byte
		expiresAt *time.Time
	)
	err := r.queryRow(ctx, loadSessionQuery, sessionID, r.now()).
		Scan(&session.ID, &session.Token, &profile, &session.CreatedAt, &expiresAt)
	if err != nil {
		return nil, wrapErr(err, "failed to load session")
	}
	if err := json.Unmarshal(profile, &session.Profile); err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to decode session profile", err)
	}
	if expiresAt != nil {
		session.ExpiresAt = *expiresAt
	}
	return &session, nil
}

func (r *PgxSessionRepository) Save(ctx context.Context, session domain.Session) error {
	if session.ID == "" {
		return apperrors.NewValidationFailedError("session id is required")
	}
	profile, err := json.Marshal(session.Profile)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to encode session profile", err)
	}
	var expiresAt *time.Time
	if !session.ExpiresAt.IsZero() {
		expiresAt = &session.ExpiresAt
	}
	createdAt := session.CreatedAt
	if createdAt.IsZero() {
		createdAt = r.now()
	}
	_, err = r.exec(ctx, upsertSessionQuery, session.ID, session.Token, profile, createdAt, expiresAt)
	return wrapErr(err, "failed to save session")
}

func (r *PgxSessionRepository) Clear(ctx context.Context, sessionID string) error {
	_, err := r.exec(ctx, clearSessionQuery, sessionID)
	return wrapErr(err, "failed to clear session")
}

// PurgeExpired deletes expired sessions and returns how many were removed.
func (r *PgxSessionRepository) PurgeExpired(ctx context.Context) (int64, error) {
	tag, err := r.exec(ctx, purgeExpiredSessionsQuery, r.now())
	if err != nil {
		return 0, wrapErr(err, "failed to purge expired sessions")
	}
	return tag.RowsAffected(), nil
}

var _ portsrepo.SessionStore = (*PgxSessionRepository)(nil)
