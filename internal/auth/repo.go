package auth

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for an unknown username or a wrong
// password. Callers must not distinguish the two cases.
var ErrInvalidCredentials = errors.New("invalid credentials")

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

func (r *Repo) FindByUsername(ctx context.Context, username string) (*User, error) {
	const q = `
select id::text, username, password_hash, is_admin, created_at
from users
where username = $1;
`
	var u User
	err := r.db.QueryRow(ctx, q, username).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.IsAdmin, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Authenticate verifies a username/password pair against the users table.
func (r *Repo) Authenticate(ctx context.Context, username, password string) (*User, error) {
	u, err := r.FindByUsername(ctx, username)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// Upsert creates the account or replaces its password/admin flag.
// Used by the admin CLI, never by request handlers.
func (r *Repo) Upsert(ctx context.Context, username, password string, isAdmin bool) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	const q = `
insert into users (username, password_hash, is_admin)
values ($1, $2, $3)
on conflict (username) do update
set password_hash = excluded.password_hash,
    is_admin = excluded.is_admin
returning id::text;
`
	var id string
	if err := r.db.QueryRow(ctx, q, username, string(hash), isAdmin).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}
