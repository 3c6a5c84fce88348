// Package service defines the backend-agnostic interface for task operations.
package service

import (
	"context"

	"github.com/Makepad-fr/tada/internal/model"
)

// Service is the remote task store the client synchronizes with.
// The HTTP implementation lives in internal/api; the controller never
// imports it directly.
type Service interface {
	// ListTodos returns tasks in server order, constrained by filter.
	ListTodos(ctx context.Context, filter model.Filter) ([]model.Task, error)

	// CreateTodo submits a new task. The created record is not returned;
	// callers re-list instead.
	CreateTodo(ctx context.Context, d model.Draft) error

	// UpdateTodo replaces the title and completed flag of a task.
	UpdateTodo(ctx context.Context, id int, d model.Draft) error

	// DeleteTodo removes a task.
	DeleteTodo(ctx context.Context, id int) error
}
