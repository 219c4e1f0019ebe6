package workers

import (
	"context"

	"github.com/MKhiriev/go-circuit-records/internal/utils"
	"golang.org/x/sync/semaphore"
)

// HashingPool runs password hashing with bounded concurrency.
type HashingPool struct {
	sem *semaphore.Weighted

	hash       func(password string) (string, error)
	check      func(password, hash string) bool
	checkDummy func(password string) bool
}

// NewHashingPool returns a pool that runs at most size hashes at once.
// A size below one is treated as one.
func NewHashingPool(size int) *HashingPool {
	if size < 1 {
		size = 1
	}
	return &HashingPool{
		sem:        semaphore.NewWeighted(int64(size)),
		hash:       utils.HashPassword,
		check:      utils.CheckPassword,
		checkDummy: utils.CheckPasswordAgainstDummy,
	}
}

func (p *HashingPool) Hash(ctx context.Context, password string) (string, error) {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer p.sem.Release(1)

	return p.hash(password)
}

func (p *HashingPool) Check(ctx context.Context, password, hash string) (bool, error) {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return false, err
	}
	defer p.sem.Release(1)

	return p.check(password, hash), nil
}

func (p *HashingPool) CheckDummy(ctx context.Context, password string) error {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	defer p.sem.Release(1)

	p.checkDummy(password)
	return nil
}
