package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/bellanote/backend/internal/types"
)

// TaskStatus is the progress of a task.
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "inProgress"
	TaskStatusDone       TaskStatus = "done"
)

// TaskStatuses returns all valid task statuses.
func TaskStatuses() []TaskStatus {
	return []TaskStatus{TaskStatusTodo, TaskStatusInProgress, TaskStatusDone}
}

// TaskPriority is the urgency of a task.
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

// TaskPriorities returns all valid task priorities.
func TaskPriorities() []TaskPriority {
	return []TaskPriority{TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh}
}

// Task is one item on the planning checklist.
type Task struct {
	ID          uuid.UUID    `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	DueDate     types.Date   `json:"dueDate"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	Category    string       `json:"category"`
}

// ThisWeekTasks returns the unfinished tasks due in the week of the
// reference time. Weeks start on Monday.
func (a AppData) ThisWeekTasks(now time.Time) []Task {
	start, end := weekOf(now)

	tasks := make([]Task, 0)
	for _, task := range a.Tasks {
		if task.Status == TaskStatusDone {
			continue
		}

		due := task.DueDate.Time()
		if !due.Before(start) && due.Before(end) {
			tasks = append(tasks, task)
		}
	}

	return tasks
}

// OpenTaskCount returns the number of tasks not done yet.
func (a AppData) OpenTaskCount() int {
	count := 0
	for _, task := range a.Tasks {
		if task.Status != TaskStatusDone {
			count++
		}
	}

	return count
}
