package ports

import "poi-viewer/internal/domain"

// Rendering surface. Render is called from the view loop on every change
// and must return promptly.
type Renderer interface {
	Render(snapshot domain.ViewSnapshot)
}
