package tourguide

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/multierr"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrUserNotFound = fmt.Errorf("user %w", ErrNotFound)
	ErrInvalidPoint = errors.New("invalid geo point")
)

// Ошибки пакетной обработки: ID пользователя -> ошибка
type BatchError struct {
	Failed map[uuid.UUID]error
}

func NewBatchError() *BatchError {
	return &BatchError{Failed: make(map[uuid.UUID]error)}
}

// Повторные ошибки одного пользователя объединяются
func (b *BatchError) Add(user uuid.UUID, err error) {
	if err == nil {
		return
	}
	b.Failed[user] = multierr.Append(b.Failed[user], err)
}

// nil, если ошибок нет
func (b *BatchError) ErrorOrNil() error {
	if b == nil || len(b.Failed) == 0 {
		return nil
	}
	return b
}

func (b *BatchError) Error() string {
	lines := make([]string, 0, len(b.Failed))
	for id, err := range b.Failed {
		lines = append(lines, fmt.Sprintf("user %s: %v", id, err))
	}
	sort.Strings(lines)
	return fmt.Sprintf("rewards failed for %d user(s): %s", len(b.Failed), strings.Join(lines, "; "))
}

func (b *BatchError) Unwrap() []error {
	errs := make([]error, 0, len(b.Failed))
	for _, err := range b.Failed {
		errs = append(errs, err)
	}
	return errs
}
