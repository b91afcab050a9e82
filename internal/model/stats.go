package model

import "time"

// CleanStats summarizes one cleaning run
type CleanStats struct {
	InitialRows int // Rows read from the input sheet (header excluded)
	FinalRows   int // Rows written to the output sheet
	RemovedRows int // InitialRows - FinalRows

	// Report details
	InputPath         string
	OutputPath        string
	Sheet             string
	Column            string
	RemovedRowNumbers []int // 1-based sheet row numbers of dropped rows (header is row 1)
	FinishedAt        time.Time
}

// NewCleanStats builds stats from the row counts before and after filtering
func NewCleanStats(initial, final int) *CleanStats {
	return &CleanStats{
		InitialRows:       initial,
		FinalRows:         final,
		RemovedRows:       initial - final,
		RemovedRowNumbers: make([]int, 0),
	}
}
