package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"adtrack/contexts/campaign-ops/campaign-service/domain/entities"
)

func TestCreateTaskIfAbsentUnderConcurrentTriggers(t *testing.T) {
	store := NewStore([]entities.Campaign{{
		CampaignID: "cmp-1",
		Name:       "Cargo Lima",
		State:      entities.StatePending,
	}})

	const writers = 16
	created := make(chan bool, writers)
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id, _ := store.NewID(context.Background())
			_, fresh, err := store.CreateTaskIfAbsent(context.Background(), entities.Task{
				TaskID:     id,
				CampaignID: "cmp-1",
				Type:       entities.TaskSendCreative,
				Role:       entities.RoleMarketing,
				Assignee:   "Marketing Team",
				CreatedAt:  time.Now().UTC(),
			})
			if err != nil {
				t.Errorf("writer %d: %v", n, err)
				return
			}
			created <- fresh
		}(i)
	}
	wg.Wait()
	close(created)

	var fresh int
	for wasCreated := range created {
		if wasCreated {
			fresh++
		}
	}
	if fresh != 1 {
		t.Fatalf("expected exactly one writer to create the task, got %d", fresh)
	}

	tasks, err := store.ListTasksByCampaign(context.Background(), "cmp-1")
	if err != nil {
		t.Fatalf("list tasks failed: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("expected a single surviving task, got %d", len(tasks))
	}
}
