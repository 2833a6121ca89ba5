package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/BuzzLyutic/eisenhower-api/internal/model"
	"github.com/BuzzLyutic/eisenhower-api/internal/repo"
)

var (
	ErrValidation = errors.New("validation error")
)

type TaskService struct {
	repo     repo.TaskRepository
	validate *validator.Validate
	newID    func() string
}

func NewTaskService(repo repo.TaskRepository) *TaskService {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string { // В ошибках используем имена полей из JSON
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &TaskService{
		repo:     repo,
		validate: v,
		newID:    uuid.NewString,
	}
}

func (s *TaskService) List(ctx context.Context) ([]model.Task, error) {
	return s.repo.List(ctx)
}

func (s *TaskService) Create(ctx context.Context, req model.CreateTaskRequest) (model.Task, error) {
	if err := s.validateRequest(req); err != nil { // До хранилища невалидный запрос не доходит
		return model.Task{}, err
	}

	t := model.Task{
		ID:        s.newID(),
		Title:     *req.Title,
		Urgent:    *req.Urgent,
		Important: *req.Important,
	}
	return s.repo.Create(ctx, t)
}

func (s *TaskService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *TaskService) validateRequest(req model.CreateTaskRequest) error {
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("field %s is %s", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(fields, "; "))
}
