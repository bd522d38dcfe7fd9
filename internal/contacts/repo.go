package contacts

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

const messageCols = `
id::text, email, coalesce(phone, ''), message, status, created_at, updated_at`

// ListFilter narrows the list query. Zero values mean no filtering.
type ListFilter struct {
	Status string
	Search string
}

func (r *Repo) Create(ctx context.Context, in Input) (*Message, error) {
	const q = `
insert into contact_messages (email, phone, message)
values ($1, nullif($2, ''), $3)
returning ` + messageCols + `;`

	var m Message
	err := r.db.QueryRow(ctx, q, in.Email, in.Phone, in.Message).
		Scan(&m.ID, &m.Email, &m.Phone, &m.Message, &m.Status, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *Repo) List(ctx context.Context, f ListFilter) ([]Message, error) {
	const q = `
select ` + messageCols + `
from contact_messages
where ($1 = '' or status = $1)
  and ($2 = '' or email ilike '%' || $2 || '%'
              or coalesce(phone, '') ilike '%' || $2 || '%'
              or message ilike '%' || $2 || '%')
order by created_at desc;`

	rows, err := r.db.Query(ctx, q, f.Status, f.Search)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Message, 0, 16)
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.ID, &m.Email, &m.Phone, &m.Message, &m.Status, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *Repo) UpdateStatus(ctx context.Context, id, status string) (*Message, error) {
	const q = `
update contact_messages
set status = $2, updated_at = now()
where id = $1::uuid
returning ` + messageCols + `;`

	var m Message
	err := r.db.QueryRow(ctx, q, id, status).
		Scan(&m.ID, &m.Email, &m.Phone, &m.Message, &m.Status, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *Repo) Delete(ctx context.Context, id string) (bool, error) {
	const q = `delete from contact_messages where id = $1::uuid;`

	ct, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return false, err
	}
	return ct.RowsAffected() > 0, nil
}

// PurgeArchived drops archived messages older than the retention window.
func (r *Repo) PurgeArchived(ctx context.Context, olderThan time.Duration) (int64, error) {
	const q = `
delete from contact_messages
where status = $1 and updated_at < $2;`

	ct, err := r.db.Exec(ctx, q, StatusArchived, time.Now().Add(-olderThan))
	if err != nil {
		return 0, err
	}
	return ct.RowsAffected(), nil
}
