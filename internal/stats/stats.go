// Package stats provides performance tracking for document rewriting runs.
// It captures timing information for each phase of execution, memory usage,
// and throughput metrics to help identify bottlenecks.
package stats

import (
	"fmt"
	"runtime"
	"strings"
	"time"
)

// Stats holds performance metrics for a document rewriting session.
type Stats struct {
	// Timing for each phase
	ScanStart    time.Time
	ScanEnd      time.Time
	ExtractStart time.Time
	ExtractEnd   time.Time
	RenderStart  time.Time
	RenderEnd    time.Time

	// Counts
	FilesScanned int
	LinksFound   int
	Labeled      int
	FilesChanged int

	// Memory stats (captured at end)
	HeapAlloc    uint64
	TotalAlloc   uint64
	NumGC        uint32
	NumGoroutine int
}

// New creates a new Stats instance.
func New() *Stats {
	return &Stats{}
}

// StartScan marks the beginning of the file scanning phase.
func (s *Stats) StartScan() {
	s.ScanStart = time.Now()
}

// EndScan marks the end of the file scanning phase.
func (s *Stats) EndScan(filesFound int) {
	s.ScanEnd = time.Now()
	s.FilesScanned = filesFound
}

// StartExtract marks the beginning of the link extraction phase.
func (s *Stats) StartExtract() {
	s.ExtractStart = time.Now()
}

// EndExtract marks the end of the link extraction phase.
func (s *Stats) EndExtract(linksFound int) {
	s.ExtractEnd = time.Now()
	s.LinksFound = linksFound
}

// StartRender marks the beginning of the label rendering phase.
func (s *Stats) StartRender() {
	s.RenderStart = time.Now()
}

// EndRender marks the end of the label rendering phase and captures
// memory stats.
func (s *Stats) EndRender(labeled, filesChanged int) {
	s.RenderEnd = time.Now()
	s.Labeled = labeled
	s.FilesChanged = filesChanged
	s.captureMemoryStats()
}

// captureMemoryStats reads current memory statistics from runtime.
func (s *Stats) captureMemoryStats() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	s.HeapAlloc = m.HeapAlloc
	s.TotalAlloc = m.TotalAlloc
	s.NumGC = m.NumGC
	s.NumGoroutine = runtime.NumGoroutine()
}

// ScanDuration returns the time spent scanning for files.
func (s *Stats) ScanDuration() time.Duration {
	if s.ScanEnd.IsZero() {
		return 0
	}
	return s.ScanEnd.Sub(s.ScanStart)
}

// ExtractDuration returns the time spent extracting links from files.
func (s *Stats) ExtractDuration() time.Duration {
	if s.ExtractEnd.IsZero() {
		return 0
	}
	return s.ExtractEnd.Sub(s.ExtractStart)
}

// RenderDuration returns the time spent rendering labels.
func (s *Stats) RenderDuration() time.Duration {
	if s.RenderEnd.IsZero() {
		return 0
	}
	return s.RenderEnd.Sub(s.RenderStart)
}

// TotalDuration returns the total time from scan start to render end.
func (s *Stats) TotalDuration() time.Duration {
	if s.RenderEnd.IsZero() {
		return 0
	}
	return s.RenderEnd.Sub(s.ScanStart)
}

// LinksPerSecond returns the throughput of label rendering.
func (s *Stats) LinksPerSecond() float64 {
	renderDur := s.RenderDuration()
	if renderDur == 0 || s.LinksFound == 0 {
		return 0
	}
	return float64(s.LinksFound) / renderDur.Seconds()
}

// AvgRenderTime returns the average time per rendered link.
func (s *Stats) AvgRenderTime() time.Duration {
	renderDur := s.RenderDuration()
	if s.LinksFound == 0 {
		return 0
	}
	return renderDur / time.Duration(s.LinksFound)
}

// FormatDuration formats a duration for display.
func FormatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	return fmt.Sprintf("%dm%.1fs", int(d.Minutes()), d.Seconds()-float64(int(d.Minutes())*60))
}

// FormatBytes formats bytes for human-readable display.
func FormatBytes(bytes uint64) string {
	const (
		kb = 1024
		mb = kb * 1024
		gb = mb * 1024
	)

	switch {
	case bytes >= gb:
		return fmt.Sprintf("%.1f GB", float64(bytes)/gb)
	case bytes >= mb:
		return fmt.Sprintf("%.1f MB", float64(bytes)/mb)
	case bytes >= kb:
		return fmt.Sprintf("%.1f KB", float64(bytes)/kb)
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// String returns a formatted string representation of the stats.
func (s *Stats) String() string {
	var b strings.Builder

	total := s.TotalDuration()

	b.WriteString("\n=== Performance Statistics ===\n\n")

	// Timing breakdown
	b.WriteString("Timing:\n")
	b.WriteString(fmt.Sprintf("  Scan files:    %8s", FormatDuration(s.ScanDuration())))
	if total > 0 {
		b.WriteString(fmt.Sprintf("  (%4.1f%%)", float64(s.ScanDuration())/float64(total)*100))
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("  Extract links: %8s", FormatDuration(s.ExtractDuration())))
	if total > 0 {
		b.WriteString(fmt.Sprintf("  (%4.1f%%)", float64(s.ExtractDuration())/float64(total)*100))
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("  Render labels: %8s", FormatDuration(s.RenderDuration())))
	if total > 0 {
		b.WriteString(fmt.Sprintf("  (%4.1f%%)", float64(s.RenderDuration())/float64(total)*100))
	}
	b.WriteString("\n")

	b.WriteString("  ─────────────────────────\n")
	b.WriteString(fmt.Sprintf("  Total:         %8s\n", FormatDuration(total)))

	// Throughput
	b.WriteString("\nThroughput:\n")
	b.WriteString(fmt.Sprintf("  Files scanned:     %5d\n", s.FilesScanned))
	b.WriteString(fmt.Sprintf("  Links found:       %5d\n", s.LinksFound))
	b.WriteString(fmt.Sprintf("  Labeled:           %5d\n", s.Labeled))
	if s.FilesChanged > 0 {
		b.WriteString(fmt.Sprintf("  Files changed:     %5d\n", s.FilesChanged))
	}
	b.WriteString(fmt.Sprintf("  Links/second:      %5.1f\n", s.LinksPerSecond()))
	b.WriteString(fmt.Sprintf("  Avg render:      %7s\n", FormatDuration(s.AvgRenderTime())))

	// Memory
	b.WriteString("\nMemory:\n")
	b.WriteString(fmt.Sprintf("  Heap in use:   %8s\n", FormatBytes(s.HeapAlloc)))
	b.WriteString(fmt.Sprintf("  Total alloc:   %8s\n", FormatBytes(s.TotalAlloc)))
	b.WriteString(fmt.Sprintf("  GC cycles:     %8d\n", s.NumGC))
	b.WriteString(fmt.Sprintf("  Goroutines:    %8d\n", s.NumGoroutine))

	return b.String()
}
