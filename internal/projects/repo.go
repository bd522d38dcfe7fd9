package projects

import (
	"context"
	"encoding/base64"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

const projectCols = `
id::text, title, description, tags, category, featured,
image, image_content_type, coalesce(github, ''), coalesce(live, ''),
created_at, updated_at`

func scanProject(row pgx.Row) (*Project, error) {
	var (
		p           Project
		image       []byte
		contentType *string
	)
	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.Tags, &p.Category, &p.Featured,
		&image, &contentType, &p.GitHub, &p.Live,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(image) > 0 && contentType != nil {
		p.Image = &Image{
			Data:        base64.StdEncoding.EncodeToString(image),
			ContentType: *contentType,
		}
	}
	return &p, nil
}

func (r *Repo) Create(ctx context.Context, in Input) (*Project, error) {
	const q = `
insert into projects (title, description, tags, category, featured, image, image_content_type, github, live)
values ($1, $2, $3, $4, $5, $6, nullif($7, ''), nullif($8, ''), nullif($9, ''))
returning ` + projectCols + `;`

	row := r.db.QueryRow(ctx, q,
		in.Title, in.Description, in.Tags, in.Category, in.Featured,
		in.Image, in.ImageContentType, in.GitHub, in.Live)
	return scanProject(row)
}

func (r *Repo) List(ctx context.Context) ([]Project, error) {
	const q = `
select ` + projectCols + `
from projects
where deleted_at is null
order by created_at desc;`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Project, 0, 16)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func (r *Repo) Get(ctx context.Context, id string) (*Project, error) {
	const q = `
select ` + projectCols + `
from projects
where id = $1::uuid and deleted_at is null;`

	return scanProject(r.db.QueryRow(ctx, q, id))
}

// Update replaces every field; the stored image survives unless the input
// carries a new one. Last write wins, there is no version check.
func (r *Repo) Update(ctx context.Context, id string, in Input) (*Project, error) {
	const q = `
update projects
set title = $2,
    description = $3,
    tags = $4,
    category = $5,
    featured = $6,
    image = coalesce($7, image),
    image_content_type = coalesce(nullif($8, ''), image_content_type),
    github = nullif($9, ''),
    live = nullif($10, ''),
    updated_at = now()
where id = $1::uuid and deleted_at is null
returning ` + projectCols + `;`

	row := r.db.QueryRow(ctx, q, id,
		in.Title, in.Description, in.Tags, in.Category, in.Featured,
		in.Image, in.ImageContentType, in.GitHub, in.Live)
	return scanProject(row)
}

func (r *Repo) SoftDelete(ctx context.Context, id string) (bool, error) {
	const q = `
update projects
set deleted_at = now(), updated_at = now()
where id = $1::uuid and deleted_at is null;`

	ct, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return false, err
	}
	return ct.RowsAffected() > 0, nil
}

// PurgeDeleted permanently drops soft-deleted rows older than the cutoff.
func (r *Repo) PurgeDeleted(ctx context.Context, olderThan time.Duration) (int64, error) {
	const q = `
delete from projects
where deleted_at is not null and deleted_at < $1;`

	ct, err := r.db.Exec(ctx, q, time.Now().Add(-olderThan))
	if err != nil {
		return 0, err
	}
	return ct.RowsAffected(), nil
}
