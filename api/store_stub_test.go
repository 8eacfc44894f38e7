package main

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// stubStore is an in-memory store implementation for handler tests. The
// production path is Postgres only; this exists so the handlers can be
// exercised through the real router without a database.
type stubStore struct {
	mu    sync.Mutex
	users []*user
	tasks []*task
}

func newStubStore() *stubStore {
	return &stubStore{}
}

func (s *stubStore) insertUser(u *user) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == u.Email {
			return errDuplicateEmail
		}
	}
	u.ID = uuid.New()
	u.CreatedAt = time.Now()
	cp := *u
	s.users = append(s.users, &cp)
	return nil
}

func (s *stubStore) getUserByEmail(email string) (*user, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *stubStore) getUserByID(id uuid.UUID) (*user, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *stubStore) insertTask(t *task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = uuid.New()
	t.CreatedAt = time.Now()
	cp := *t
	s.tasks = append(s.tasks, &cp)
	return nil
}

func (s *stubStore) getTask(id, userID uuid.UUID) (*task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tasks {
		if t.ID == id && t.UserID == userID {
			cp := *t
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *stubStore) getTasksForUser(userID uuid.UUID) ([]task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tasks := []task{}
	for _, t := range s.tasks {
		if t.UserID == userID {
			tasks = append(tasks, *t)
		}
	}
	return tasks, nil
}

func (s *stubStore) updateTask(t *task) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.tasks {
		if existing.ID == t.ID && existing.UserID == t.UserID {
			existing.Title = t.Title
			existing.Description = t.Description
			existing.IsCompleted = t.IsCompleted
			return true, nil
		}
	}
	return false, nil
}

func (s *stubStore) deleteTask(id, userID uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.tasks {
		if t.ID == id && t.UserID == userID {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

var _ store = (*stubStore)(nil)
