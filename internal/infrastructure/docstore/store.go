package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store is the document-store adapter: semi-structured records addressed by
// opaque id, per-document atomicity only. Everything lives in one JSONB
// table partitioned by collection name; there are no multi-document
// transactions, and the workflow layers are written not to need them.
type Store struct {
	pool *pgxpool.Pool
}

// Document is one stored record. Data is the raw JSONB payload; typed
// repositories unmarshal it into their entity structs.
type Document struct {
	ID        string
	Data      []byte
	CreatedAt time.Time
	UpdatedAt time.Time
}

func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

const schema = `
CREATE TABLE IF NOT EXISTS documents (
	collection text NOT NULL,
	id uuid NOT NULL,
	doc jsonb NOT NULL,
	created_at timestamptz NOT NULL DEFAULT now(),
	updated_at timestamptz NOT NULL DEFAULT now(),
	PRIMARY KEY (collection, id)
);
CREATE INDEX IF NOT EXISTS documents_doc_gin ON documents USING gin (doc);
CREATE UNIQUE INDEX IF NOT EXISTS documents_users_email
	ON documents ((doc->>'email')) WHERE collection = 'users';
CREATE UNIQUE INDEX IF NOT EXISTS documents_tickets_number
	ON documents ((doc->>'ticketNumber')) WHERE collection = 'tickets';
CREATE UNIQUE INDEX IF NOT EXISTS documents_newsletter_email
	ON documents ((doc->>'email')) WHERE collection = 'newsletter';
`

// EnsureSchema creates the backing table and indexes.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure docstore schema: %w", err)
	}
	return nil
}

// Insert stores a new document.
func (s *Store) Insert(ctx context.Context, collection, id string, doc interface{}) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal %s document: %w", collection, err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO documents (collection, id, doc) VALUES ($1, $2, $3)`,
		collection, id, data)
	if err != nil {
		return translateError(collection, err)
	}
	return nil
}

// FindByID loads one document into out.
func (s *Store) FindByID(ctx context.Context, collection, id string, out interface{}) error {
	var data []byte
	err := s.pool.QueryRow(ctx,
		`SELECT doc FROM documents WHERE collection = $1 AND id = $2`,
		collection, id).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("find %s/%s: %w", collection, id, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("unmarshal %s/%s: %w", collection, id, err)
	}
	return nil
}

// Find runs a declarative query and returns the matching page plus the
// unpaged total.
func (s *Store) Find(ctx context.Context, collection string, q Query) ([]Document, int, error) {
	args := []interface{}{collection}
	where, args, err := buildWhere(q.Filters, args)
	if err != nil {
		return nil, 0, err
	}

	var total int
	countSQL := `SELECT count(*) FROM documents WHERE collection = $1` + where
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count %s: %w", collection, err)
	}

	sql := `SELECT id, doc, created_at, updated_at FROM documents WHERE collection = $1` +
		where + buildOrderBy(q.Sort)

	if q.Limit > 0 {
		sql += fmt.Sprintf(" LIMIT %d", q.Limit)
		if q.Page > 1 {
			sql += fmt.Sprintf(" OFFSET %d", (q.Page-1)*q.Limit)
		}
	}

	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("find %s: %w", collection, err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var d Document
		if err := rows.Scan(&d.ID, &d.Data, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan %s: %w", collection, err)
		}
		docs = append(docs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate %s: %w", collection, err)
	}

	return docs, total, nil
}

// Replace overwrites the whole document.
func (s *Store) Replace(ctx context.Context, collection, id string, doc interface{}) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal %s document: %w", collection, err)
	}

	tag, err := s.pool.Exec(ctx,
		`UPDATE documents SET doc = $3, updated_at = now() WHERE collection = $1 AND id = $2`,
		collection, id, data)
	if err != nil {
		return translateError(collection, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteByID removes one document.
func (s *Store) DeleteByID(ctx context.Context, collection, id string) error {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM documents WHERE collection = $1 AND id = $2`,
		collection, id)
	if err != nil {
		return fmt.Errorf("delete %s/%s: %w", collection, id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// IncField atomically adds delta to an integer field and returns the new
// value. This is the only way counters (views, likes, restocks) change.
func (s *Store) IncField(ctx context.Context, collection, id, field string, delta int64) (int64, error) {
	if !validField(field) {
		return 0, fmt.Errorf("invalid field %q", field)
	}

	var value int64
	err := s.pool.QueryRow(ctx,
		`UPDATE documents
		 SET doc = jsonb_set(doc, ARRAY[$3], to_jsonb(COALESCE((doc->>$3)::bigint, 0) + $4), true),
		     updated_at = now()
		 WHERE collection = $1 AND id = $2
		 RETURNING (doc->>$3)::bigint`,
		collection, id, field, delta).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("increment %s/%s.%s: %w", collection, id, field, err)
	}
	return value, nil
}

// DecFieldIf atomically decrements an integer field only when it holds at
// least qty, in one statement. A lost race returns ErrConditionFailed with
// no change; the check and the decrement cannot be split by a concurrent
// writer.
func (s *Store) DecFieldIf(ctx context.Context, collection, id, field string, qty int64) (int64, error) {
	if !validField(field) {
		return 0, fmt.Errorf("invalid field %q", field)
	}

	var remaining int64
	err := s.pool.QueryRow(ctx,
		`UPDATE documents
		 SET doc = jsonb_set(doc, ARRAY[$3], to_jsonb((doc->>$3)::bigint - $4), true),
		     updated_at = now()
		 WHERE collection = $1 AND id = $2 AND COALESCE((doc->>$3)::bigint, 0) >= $4
		 RETURNING (doc->>$3)::bigint`,
		collection, id, field, qty).Scan(&remaining)
	if errors.Is(err, pgx.ErrNoRows) {
		// Distinguish a missing document from a failed guard.
		var exists bool
		checkErr := s.pool.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM documents WHERE collection = $1 AND id = $2)`,
			collection, id).Scan(&exists)
		if checkErr != nil {
			return 0, fmt.Errorf("check %s/%s: %w", collection, id, checkErr)
		}
		if !exists {
			return 0, ErrNotFound
		}
		return 0, ErrConditionFailed
	}
	if err != nil {
		return 0, fmt.Errorf("decrement %s/%s.%s: %w", collection, id, field, err)
	}
	return remaining, nil
}

// FieldInt reads one integer field.
func (s *Store) FieldInt(ctx context.Context, collection, id, field string) (int64, error) {
	if !validField(field) {
		return 0, fmt.Errorf("invalid field %q", field)
	}

	var value int64
	err := s.pool.QueryRow(ctx,
		`SELECT COALESCE((doc->>$3)::bigint, 0) FROM documents WHERE collection = $1 AND id = $2`,
		collection, id, field).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("read %s/%s.%s: %w", collection, id, field, err)
	}
	return value, nil
}

// PushRef appends ref to an id-array field on every listed document,
// skipping documents that already hold it. Re-running is a no-op.
func (s *Store) PushRef(ctx context.Context, collection string, ids []string, field, ref string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	if !validField(field) {
		return 0, fmt.Errorf("invalid field %q", field)
	}

	tag, err := s.pool.Exec(ctx,
		`UPDATE documents
		 SET doc = jsonb_set(doc, ARRAY[$3], COALESCE(doc->$3, '[]'::jsonb) || to_jsonb($4::text), true),
		     updated_at = now()
		 WHERE collection = $1 AND id = ANY($2::uuid[])
		   AND NOT COALESCE(doc->$3, '[]'::jsonb) ? $4`,
		collection, ids, field, ref)
	if err != nil {
		return 0, fmt.Errorf("push ref %s.%s: %w", collection, field, err)
	}
	return tag.RowsAffected(), nil
}

// PullRef removes ref from an id-array field on every listed document.
func (s *Store) PullRef(ctx context.Context, collection string, ids []string, field, ref string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	if !validField(field) {
		return 0, fmt.Errorf("invalid field %q", field)
	}

	tag, err := s.pool.Exec(ctx,
		`UPDATE documents
		 SET doc = jsonb_set(doc, ARRAY[$3], COALESCE(doc->$3, '[]'::jsonb) - $4, true),
		     updated_at = now()
		 WHERE collection = $1 AND id = ANY($2::uuid[])`,
		collection, ids, field, ref)
	if err != nil {
		return 0, fmt.Errorf("pull ref %s.%s: %w", collection, field, err)
	}
	return tag.RowsAffected(), nil
}

// UnsetField removes a field from every listed document (e.g. clearing a
// back-reference on deletion).
func (s *Store) UnsetField(ctx context.Context, collection string, ids []string, field string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	if !validField(field) {
		return 0, fmt.Errorf("invalid field %q", field)
	}

	tag, err := s.pool.Exec(ctx,
		`UPDATE documents SET doc = doc - $3, updated_at = now()
		 WHERE collection = $1 AND id = ANY($2::uuid[])`,
		collection, ids, field)
	if err != nil {
		return 0, fmt.Errorf("unset %s.%s: %w", collection, field, err)
	}
	return tag.RowsAffected(), nil
}

// FindOneByField loads the single document whose field equals value.
func (s *Store) FindOneByField(ctx context.Context, collection, field string, value interface{}, out interface{}) error {
	docs, _, err := s.Find(ctx, collection, Query{
		Filters: []Filter{{Field: field, Op: OpEq, Value: value}},
		Limit:   1,
	})
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		return ErrNotFound
	}
	return json.Unmarshal(docs[0].Data, out)
}

func translateError(collection string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicateKey
	}
	return fmt.Errorf("write %s: %w", collection, err)
}
