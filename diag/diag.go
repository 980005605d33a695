// Package diag reports permanent capacity exhaustion.
package diag

import (
	"fmt"
	"sync"

	"github.com/tliron/commonlog"
)

// Sink receives overflow reports. A report means the named resource hit
// its configured limit and the current run cannot continue.
type Sink interface {
	ReportOverflow(resource string, limit int)
}

// LogSink writes overflow reports to a commonlog logger.
type LogSink struct {
	log commonlog.Logger
}

// NewLogSink returns a sink logging under the "bibsym.overflow" name.
func NewLogSink() *LogSink {
	return &LogSink{log: commonlog.GetLogger("bibsym.overflow")}
}

// ReportOverflow logs the classic capacity-exceeded message.
func (s *LogSink) ReportOverflow(resource string, limit int) {
	s.log.Errorf("%s", Message(resource, limit))
}

// Message formats an overflow report.
func Message(resource string, limit int) string {
	return fmt.Sprintf("Sorry---you've exceeded BibTeX's %s %d", resource, limit)
}

// Overflow is one recorded report.
type Overflow struct {
	Resource string
	Limit    int
}

// Recorder keeps reports in memory.
type Recorder struct {
	mu      sync.Mutex
	reports []Overflow
}

// ReportOverflow appends a report.
func (r *Recorder) ReportOverflow(resource string, limit int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports = append(r.reports, Overflow{Resource: resource, Limit: limit})
}

// Reports returns a copy of everything recorded so far.
func (r *Recorder) Reports() []Overflow {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Overflow, len(r.reports))
	copy(out, r.reports)
	return out
}

// Discard drops every report.
type Discard struct{}

// ReportOverflow does nothing.
func (Discard) ReportOverflow(string, int) {}
