package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"workboard/internal/domain"
	"workboard/internal/domain/services"
)

// Creating tasks while the board is being deleted must never leave a task
// behind: each create either lands before the delete (and is removed with
// the board) or fails with NotFound.
func TestCreateTask_RacingDeleteBoard(t *testing.T) {
	env := newTestEnv(t)
	alice := env.user(t, "alice")
	ctx := context.Background()

	const (
		rounds  = 20
		writers = 8
	)

	for round := 0; round < rounds; round++ {
		board := env.board(t, alice, fmt.Sprintf("Sprint %d", round))

		var (
			wg      sync.WaitGroup
			mu      sync.Mutex
			created []string
			failed  []error
			delErr  error
		)
		start := make(chan struct{})

		for i := 0; i < writers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				<-start
				task, err := env.tasks.CreateTask(ctx, alice.ID, &services.CreateTaskRequest{
					BoardID: board.ID,
					Title:   fmt.Sprintf("task %d", i),
				})
				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					failed = append(failed, err)
					return
				}
				created = append(created, task.ID)
			}(i)
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			delErr = env.boards.DeleteBoard(ctx, alice.ID, board.ID)
		}()

		close(start)
		wg.Wait()

		if delErr != nil {
			t.Fatalf("round %d: DeleteBoard: %v", round, delErr)
		}
		for _, err := range failed {
			if !errors.Is(err, domain.ErrNotFound) {
				t.Fatalf("round %d: create failed with %v, want ErrNotFound", round, err)
			}
		}
		for _, id := range created {
			if _, err := env.store.Tasks.GetByID(ctx, id); !errors.Is(err, domain.ErrNotFound) {
				t.Fatalf("round %d: task %s survived its board (err = %v)", round, id, err)
			}
		}
		if len(created)+len(failed) != writers {
			t.Fatalf("round %d: %d created + %d failed, want %d", round, len(created), len(failed), writers)
		}
	}
}
