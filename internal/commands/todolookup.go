package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"tdo/internal/app"
	"tdo/internal/service"
)

// ErrTodoRefRequired indicates no todo number was provided.
var ErrTodoRefRequired = errors.New("todo number required")

// parseTodoRef parses the 1-based todo number from args.
func parseTodoRef(args []string) (int, error) {
	if len(args) == 0 {
		return 0, ErrTodoRefRequired
	}
	num, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid todo number: %s", args[0])
	}
	return num, nil
}

// findTodoByNumber resolves a 1-based position in the newest-first list
// to the stored record.
func findTodoByNumber(ctx context.Context, a *app.App, num int) (service.Todo, error) {
	if num < 1 {
		return service.Todo{}, fmt.Errorf("todo number out of range: %d", num)
	}
	list, err := a.Todos.List(ctx)
	if err != nil {
		return service.Todo{}, err
	}
	if num > len(list) {
		return service.Todo{}, fmt.Errorf("todo number out of range: %d", num)
	}
	return list[num-1], nil
}
