package ui

import "tcgen/internal/domain"

// Viewer displays a catalog in an interactive TUI
type Viewer interface {
	View(cat *domain.Catalog) error
}
