package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/eisenhower-api/internal/model"
	"github.com/BuzzLyutic/eisenhower-api/internal/repo"
	"github.com/BuzzLyutic/eisenhower-api/internal/service"
	"github.com/BuzzLyutic/eisenhower-api/pkg/respond"
)

type TaskHandler struct {
	service *service.TaskService
	logger  *zap.Logger
}

type createResponse struct {
	Status string     `json:"status"`
	Task   model.Task `json:"task"`
}

type statusResponse struct {
	Status string `json:"status"`
}

func NewTaskHandler(srv *service.TaskService, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		service: srv,
		logger:  logger,
	}
}

func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.service.List(r.Context())
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, tasks)
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, err := decodeCreateRequest(r)
	if err != nil {
		h.logger.Debug("failed to decode create request", zap.Error(err))
		h.handleErrors(w, r, err)
		return
	}

	task, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}

	h.logger.Info("task created", zap.String("task_id", task.ID))
	respond.JSON(w, r, http.StatusOK, createResponse{Status: "success", Task: task})
}

func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.handleErrors(w, r, err)
		return
	}

	h.logger.Info("task deleted", zap.String("task_id", id))
	respond.JSON(w, r, http.StatusOK, statusResponse{Status: "deleted"})
}

func (h *TaskHandler) Health(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, r, http.StatusOK, statusResponse{Status: "ok"})
}

func (h *TaskHandler) handleErrors(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, repo.ErrorNotFound):
		respond.Error(w, r, http.StatusNotFound, "Task not found")
	case errors.Is(err, repo.ErrorConflict):
		respond.Error(w, r, http.StatusConflict, "conflict")
	case errors.Is(err, service.ErrValidation):
		respond.Error(w, r, http.StatusUnprocessableEntity, err.Error())
	default:
		h.logger.Error("internal error", zap.Error(err))
		respond.Error(w, r, http.StatusInternalServerError, "internal error")
	}
}

// decodeCreateRequest читает поля из query (так шлет фронтенд) или из JSON тела
func decodeCreateRequest(r *http.Request) (model.CreateTaskRequest, error) {
	var req model.CreateTaskRequest

	q := r.URL.Query()
	if q.Has("title") || q.Has("urgent") || q.Has("important") {
		return decodeQuery(q)
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		return req, fmt.Errorf("%w: invalid json: %v", service.ErrValidation, err)
	}
	return req, nil
}

func decodeQuery(q url.Values) (model.CreateTaskRequest, error) {
	var req model.CreateTaskRequest

	if q.Has("title") {
		title := q.Get("title")
		req.Title = &title
	}

	for name, dst := range map[string]**bool{"urgent": &req.Urgent, "important": &req.Important} {
		if !q.Has(name) {
			continue
		}
		v, err := parseBool(q.Get(name))
		if err != nil {
			return req, fmt.Errorf("%w: field %s is not a valid boolean", service.ErrValidation, name)
		}
		*dst = &v
	}
	return req, nil
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "on", "t", "y":
		return true, nil
	case "false", "0", "no", "off", "f", "n":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean %q", s)
}
