package postgres

import (
	"database/sql"
	"fmt"
)

// EnsureSchema creates the tables the service needs if they do not exist.
// Runs at startup; safe to call repeatedly.
func EnsureSchema(db *sql.DB) error {
	stmts := []string{
		`create extension if not exists "pgcrypto";`,
		`
create table if not exists users (
    id            uuid primary key default gen_random_uuid(),
    username      text not null unique,
    password_hash text not null,
    is_admin      boolean not null default false,
    created_at    timestamptz not null default now()
);`,
		`
create table if not exists projects (
    id                 uuid primary key default gen_random_uuid(),
    title              text not null,
    description        text not null,
    tags               text[] not null,
    category           text not null default 'web',
    featured           boolean not null default false,
    image              bytea,
    image_content_type text,
    github             text,
    live               text,
    created_at         timestamptz not null default now(),
    updated_at         timestamptz not null default now(),
    deleted_at         timestamptz
);`,
		`
create table if not exists contact_messages (
    id         uuid primary key default gen_random_uuid(),
    email      text not null,
    phone      text,
    message    text not null,
    status     text not null default 'new',
    created_at timestamptz not null default now(),
    updated_at timestamptz not null default now()
);`,
		`create index if not exists idx_projects_created_at on projects (created_at desc);`,
		`create index if not exists idx_contact_messages_status on contact_messages (status);`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
