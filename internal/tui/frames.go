package tui

import (
	"context"
	"poi-viewer/internal/domain"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameQueue is the Renderer handed to the view state. It keeps only the
// newest undelivered snapshot so Render never blocks the view loop.
type FrameQueue struct {
	ch chan domain.ViewSnapshot
}

func NewFrameQueue() *FrameQueue {
	return &FrameQueue{ch: make(chan domain.ViewSnapshot, 1)}
}

// Render must only be called from a single goroutine.
func (q *FrameQueue) Render(s domain.ViewSnapshot) {
	for {
		select {
		case q.ch <- s:
			return
		default:
		}
		// Drop the stale frame the UI has not picked up yet.
		select {
		case <-q.ch:
		default:
		}
	}
}

// SnapshotMsg carries a new frame into the bubbletea program.
type SnapshotMsg domain.ViewSnapshot

func (q *FrameQueue) wait(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		select {
		case s := <-q.ch:
			return SnapshotMsg(s)
		case <-ctx.Done():
			return nil
		}
	}
}
