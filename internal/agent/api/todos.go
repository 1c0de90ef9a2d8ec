// Методы клиента для работы с задачами и health-check
package api

import "time"

// CreateTodoRequest описывает тело запроса создания задачи.
type CreateTodoRequest struct {
	Title string `json:"title"`
}

// Todo описывает задачу в ответах сервера.
type Todo struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// HealthResponse описывает ответ health-check эндпоинта.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// CreateTodo создаёт новую задачу текущего пользователя.
//
// Требует access токен.
func (c *Client) CreateTodo(title, authToken string) (Todo, error) {
	var resp Todo
	err := c.PostJSON("/todos", CreateTodoRequest{Title: title}, &resp, authToken)
	return resp, err
}

// ListTodos возвращает задачи текущего пользователя, новые первыми.
//
// Требует access токен.
func (c *Client) ListTodos(authToken string) ([]Todo, error) {
	var resp []Todo
	err := c.GetJSON("/todos", &resp, authToken)
	return resp, err
}

// Health проверяет доступность сервера.
func (c *Client) Health() (HealthResponse, error) {
	var resp HealthResponse
	err := c.GetJSON("/health", &resp, "")
	return resp, err
}
