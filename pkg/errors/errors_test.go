package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

type recordingHandler struct {
	errs   []*FacetError
	panics []*PanicError
}

func (h *recordingHandler) HandleError(err *FacetError) { h.errs = append(h.errs, err) }
func (h *recordingHandler) HandlePanic(err *PanicError) { h.panics = append(h.panics, err) }

func withHandler(t *testing.T) *recordingHandler {
	t.Helper()
	h := &recordingHandler{}
	SetHandler(h)
	t.Cleanup(func() { SetHandler(nil) })
	return h
}

func TestFacetError_Error(t *testing.T) {
	err := &FacetError{
		Op:   "details.Show",
		Kind: KindTransition,
		Err:  stderrors.New("unknown transition"),
	}
	msg := err.Error()
	if !strings.Contains(msg, "details.Show") || !strings.Contains(msg, "transition") {
		t.Errorf("Unexpected message %q", msg)
	}

	err.Widget = "details-3"
	if !strings.Contains(err.Error(), "widget=details-3") {
		t.Errorf("Widget id missing from %q", err.Error())
	}
}

func TestFacetError_Unwrap(t *testing.T) {
	inner := stderrors.New("boom")
	err := &FacetError{Op: "op", Err: inner}
	if !stderrors.Is(err, inner) {
		t.Fatal("Unwrap chain broken")
	}
}

func TestReport_SetsTimestamp(t *testing.T) {
	h := withHandler(t)
	Report(&FacetError{Op: "op", Kind: KindConfig, Err: stderrors.New("bad")})

	if len(h.errs) != 1 {
		t.Fatalf("Expected 1 reported error, got %d", len(h.errs))
	}
	if h.errs[0].Timestamp.IsZero() {
		t.Error("Report did not set a timestamp")
	}
}

func TestReport_NilIsIgnored(t *testing.T) {
	h := withHandler(t)
	Report(nil)
	ReportPanic(nil)
	if len(h.errs) != 0 || len(h.panics) != 0 {
		t.Fatal("Nil reports reached the handler")
	}
}

func TestRecover(t *testing.T) {
	h := withHandler(t)

	func() {
		defer Recover("widget.op")
		panic("kaboom")
	}()

	if len(h.panics) != 1 {
		t.Fatalf("Expected 1 recovered panic, got %d", len(h.panics))
	}
	p := h.panics[0]
	if p.Op != "widget.op" || p.Value != "kaboom" {
		t.Errorf("Unexpected panic record %+v", p)
	}
	if p.StackTrace == "" {
		t.Error("Recovered panic missing stack trace")
	}
	if !strings.Contains(p.Error(), "widget.op") {
		t.Errorf("Unexpected panic message %q", p.Error())
	}
}

func TestErrorKind_String(t *testing.T) {
	cases := map[ErrorKind]string{
		KindUnknown:    "unknown",
		KindTransition: "transition",
		KindConfig:     "config",
		KindPanic:      "panic",
	}
	for kind, want := range cases {
		if kind.String() != want {
			t.Errorf("Kind %d: expected %q, got %q", kind, want, kind.String())
		}
	}
}

func TestSetHandler_NilRestoresDefault(t *testing.T) {
	SetHandler(&recordingHandler{})
	SetHandler(nil)
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Fatalf("Expected LogHandler default, got %T", DefaultHandler)
	}
}
