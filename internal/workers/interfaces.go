// Package workers bounds CPU-heavy work done on behalf of requests.
//
// bcrypt is deliberately slow. Without a limit a burst of logins or
// registrations would start one hashing goroutine per request and starve
// the rest of the server. [HashingPool] caps how many hashes run at once;
// callers beyond the cap wait for a slot or give up when their context ends.
package workers

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/workers_mock.go -package=mock

// PasswordHasher hashes and verifies passwords.
//
// Every method blocks until a worker slot is free. It returns ctx.Err() if
// the context is done first.
type PasswordHasher interface {
	// Hash returns the bcrypt hash of password.
	Hash(ctx context.Context, password string) (string, error)

	// Check reports whether password matches hash.
	Check(ctx context.Context, password, hash string) (bool, error)

	// CheckDummy does the same work as Check against a fixed hash and always
	// reports false. It hides whether an account exists.
	CheckDummy(ctx context.Context, password string) error
}
