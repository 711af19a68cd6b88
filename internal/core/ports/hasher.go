package ports

import "context"

// PasswordHasher abstracts the slow one-way hashing of secrets. Hashing is
// CPU-bound; implementations bound their concurrency so a signup burst does
// not stall unrelated request handling. Hash honors ctx while queued.
type PasswordHasher interface {
	Hash(ctx context.Context, secret string) (string, error)
	Compare(ctx context.Context, hash, secret string) error
}
