package diag

import "testing"

func TestMessage(t *testing.T) {
	got := Message("hash size", 35307)
	want := "Sorry---you've exceeded BibTeX's hash size 35307"
	if got != want {
		t.Errorf("Message: got %q, want %q", got, want)
	}
}

func TestRecorder(t *testing.T) {
	var r Recorder
	r.ReportOverflow("number of strings", 10)
	r.ReportOverflow("hash size", 5)

	got := r.Reports()
	if len(got) != 2 {
		t.Fatalf("Reports: got %d, want 2", len(got))
	}
	if got[0] != (Overflow{Resource: "number of strings", Limit: 10}) {
		t.Errorf("first report = %+v", got[0])
	}

	got[1].Limit = 99
	if r.Reports()[1].Limit != 5 {
		t.Error("Reports should return a copy")
	}
}

func TestLogSinkDoesNotPanic(t *testing.T) {
	var s Sink = NewLogSink()
	s.ReportOverflow("hash size", 1)
}
