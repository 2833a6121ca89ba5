package repo

import (
	"context"

	"github.com/BuzzLyutic/eisenhower-api/internal/model"
)

// TaskRepository определяет интерфейс для работы с задачами
type TaskRepository interface {
	Create(ctx context.Context, t model.Task) (model.Task, error)
	List(ctx context.Context) ([]model.Task, error)
	Delete(ctx context.Context, id string) error
}
