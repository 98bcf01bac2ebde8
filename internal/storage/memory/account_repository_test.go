package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/playgrid/leaderboard-system/internal/core/domain"
)

func TestAccountRepository_CreateAndFind(t *testing.T) {
	repo := NewAccountRepository()

	account := &domain.Account{
		Handle:     "player_one",
		SecretHash: "$2a$10$fakehash",
		CreatedAt:  time.Now().UTC(),
	}

	created, err := repo.Create(context.Background(), account)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.Handle != "player_one" {
		t.Fatalf("unexpected handle: %s", created.Handle)
	}

	found, err := repo.FindByHandle(context.Background(), "player_one")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if found.SecretHash != account.SecretHash {
		t.Fatalf("unexpected hash: %s", found.SecretHash)
	}
}

func TestAccountRepository_DuplicateHandle(t *testing.T) {
	repo := NewAccountRepository()

	if _, err := repo.Create(context.Background(), &domain.Account{Handle: "player_one"}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := repo.Create(context.Background(), &domain.Account{Handle: "player_one"}); err != domain.ErrHandleTaken {
		t.Fatalf("expected ErrHandleTaken, got %v", err)
	}
}

func TestAccountRepository_FindUnknown(t *testing.T) {
	repo := NewAccountRepository()

	if _, err := repo.FindByHandle(context.Background(), "nobody"); err != domain.ErrAccountNotFound {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestAccountRepository_CaseSensitiveLookup(t *testing.T) {
	repo := NewAccountRepository()

	if _, err := repo.Create(context.Background(), &domain.Account{Handle: "player_one"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := repo.FindByHandle(context.Background(), "Player_One"); err != domain.ErrAccountNotFound {
		t.Fatalf("expected ErrAccountNotFound for case variant, got %v", err)
	}
}

// Concurrent creates of the same handle must yield exactly one success.
func TestAccountRepository_ConcurrentDuplicateCreate(t *testing.T) {
	repo := NewAccountRepository()

	const attempts = 32
	var wg sync.WaitGroup
	results := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Create(context.Background(), &domain.Account{Handle: "player_one"})
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var successes int
	for err := range results {
		if err == nil {
			successes++
		} else if err != domain.ErrHandleTaken {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if successes != 1 {
		t.Fatalf("expected exactly 1 successful create, got %d", successes)
	}
}
