package persistence

import (
	"context"
	"sync"
)

// TransactionStub runs fn in place and remembers the locks it was asked to take.
type TransactionStub struct {
	mutex sync.Mutex
	locks []string
}

func NewTransactionStub() *TransactionStub {
	return &TransactionStub{}
}

func (s *TransactionStub) Execute(ctx context.Context, fn func(ctx context.Context) error, lockNames ...string) error {
	s.mutex.Lock()
	s.locks = append(s.locks, lockNames...)
	s.mutex.Unlock()

	return fn(ctx)
}

func (s *TransactionStub) Locks() []string {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return append([]string(nil), s.locks...)
}
