package model

type Task struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Urgent    bool   `json:"urgent"`
	Important bool   `json:"important"`
}

// CreateTaskRequest — входные данные для создания задачи.
// Указатели нужны, чтобы отличать отсутствующее поле от false или "".
type CreateTaskRequest struct {
	Title     *string `json:"title" validate:"required"`
	Urgent    *bool   `json:"urgent" validate:"required"`
	Important *bool   `json:"important" validate:"required"`
}
