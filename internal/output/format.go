// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"tdo/internal/service"
	"tdo/internal/todos"
)

const (
	boxOpen = "[ ]"
	boxDone = "[x]"
)

// FormatTodo formats one todo line.
// Format: "{N:>4}  {BOX}  {TITLE}\n", with the description on its own
// indented line when present.
func FormatTodo(w io.Writer, num int, todo service.Todo) {
	box := boxOpen
	if todo.Completed {
		box = boxDone
	}
	fmt.Fprintf(w, "%4d  %s  %s\n", num, box, normalizeTitle(todo.Title))
	if todo.Description != nil && strings.TrimSpace(*todo.Description) != "" {
		fmt.Fprintf(w, "           %s\n", normalizeTitle(*todo.Description))
	}
}

// FormatList renders the whole list view: the empty state, or the rows
// followed by the completed count.
func FormatList(w io.Writer, list []service.Todo) {
	if len(list) == 0 {
		fmt.Fprintln(w, "no todos yet")
		return
	}
	for i, todo := range list {
		FormatTodo(w, i+1, todo)
	}
	fmt.Fprintf(w, "\n%d of %d completed\n", todos.CompletedCount(list), len(list))
}

// normalizeTitle normalizes text for single-line display.
// - Empty or whitespace-only text becomes "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")

	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
