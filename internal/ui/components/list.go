package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yildizm/sortflow/internal/algorithm"
	"github.com/yildizm/sortflow/internal/ui"
)

// ListItem represents an item in a list
type ListItem struct {
	ID          string
	Title       string
	Description string
	Icon        string
	Data        any
}

// List represents a navigable list component
type List struct {
	Title       string
	Items       []ListItem
	Selected    int
	Width       int
	ShowNumbers bool
	ShowIcons   bool
}

// NewList creates a new list component
func NewList(title string, width int) *List {
	return &List{
		Title:       title,
		Width:       width,
		ShowNumbers: true,
		ShowIcons:   true,
	}
}

// AddItem adds an item to the list
func (l *List) AddItem(item *ListItem) {
	l.Items = append(l.Items, *item)
}

// GetSelectedItem returns the currently selected item
func (l *List) GetSelectedItem() *ListItem {
	if l.Selected < 0 || l.Selected >= len(l.Items) {
		return nil
	}
	return &l.Items[l.Selected]
}

// MoveUp moves selection up
func (l *List) MoveUp() {
	if l.Selected > 0 {
		l.Selected--
	}
}

// MoveDown moves selection down
func (l *List) MoveDown() {
	if l.Selected < len(l.Items)-1 {
		l.Selected++
	}
}

// Render renders the list
func (l *List) Render() string {
	styles := ui.GetStyles()

	content := []string{styles.Header.Render(l.Title), ""}
	for i := range l.Items {
		content = append(content, l.renderItem(&l.Items[i], i+1, i == l.Selected))
	}

	joined := lipgloss.JoinVertical(lipgloss.Left, content...)
	return styles.Box.Width(l.Width).Render(joined)
}

// renderItem renders a single list item
func (l *List) renderItem(item *ListItem, number int, selected bool) string {
	styles := ui.GetStyles()

	var parts []string

	prefix := "  "
	if selected {
		prefix = "▶ "
	}
	parts = append(parts, prefix)

	if l.ShowNumbers {
		parts = append(parts, fmt.Sprintf("%d.", number))
	}

	if l.ShowIcons && item.Icon != "" {
		parts = append(parts, item.Icon)
	}

	title := item.Title
	if item.Description != "" {
		title += " - " + item.Description
	}
	parts = append(parts, title)

	line := strings.Join(parts, " ")
	if selected {
		return styles.ListSelected.Render(line)
	}
	return styles.ListItem.Render(line)
}

// NewAlgorithmList creates the list offered on the algorithm choice screen
func NewAlgorithmList(width int) *List {
	list := NewList("Choose a sorting algorithm", width)
	list.ShowIcons = false

	for _, a := range algorithm.All() {
		item := ListItem{
			ID:          a.Key(),
			Title:       a.String(),
			Description: a.SceneFile(),
			Data:        a,
		}
		list.AddItem(&item)
	}

	return list
}

// SelectedAlgorithm returns the algorithm under the cursor
func SelectedAlgorithm(l *List) (algorithm.Algorithm, bool) {
	item := l.GetSelectedItem()
	if item == nil {
		return 0, false
	}
	a, ok := item.Data.(algorithm.Algorithm)
	return a, ok
}
