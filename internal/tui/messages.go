package tui

import "github.com/elntools/rspace-summary/models"

type recordsLoadedMsg struct {
	records []models.FormRecord
	err     error
}

// refreshDoneMsg is delivered from outside the program by the background
// refresh job.
type refreshDoneMsg struct {
	records []models.FormRecord
	err     error
}

type publishDoneMsg struct {
	result models.PublishResult
	err    error
}
