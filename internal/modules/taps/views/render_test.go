package views

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"testing/fstest"

	"kegerator-server/internal/modules/taps/types"
)

func testPage() TapsPage {
	return TapsPage{Taps: types.DisplaySet{
		TapOne:   types.DisplayReading{Name: "Pale Ale", Percent: 50, Volume: 9.5},
		TapTwo:   types.DisplayReading{Name: "Stout", Percent: 100, Volume: 19},
		TapThree: types.DisplayReading{Name: "Cider <dry>", Percent: 0, Volume: 0},
	}}
}

func TestLoadTemplates_success(t *testing.T) {
	err := LoadTemplates()
	if err != nil {
		t.Fatalf("LoadTemplates() = %v; want nil", err)
	}
	if tapsTmpl == nil {
		t.Fatal("LoadTemplates() left tapsTmpl nil")
	}
}

func TestLoadTemplates_failure_empty(t *testing.T) {
	// Empty FS has no "templates" directory; ParseFS matches no files.
	emptyFS := fstest.MapFS{}
	err := loadTemplatesFromFS(emptyFS, "templates")
	if err == nil {
		t.Fatal("loadTemplatesFromFS(emptyFS, \"templates\") = nil; want error")
	}
}

func TestLoadTemplates_failure_parse(t *testing.T) {
	badFS := fstest.MapFS{
		"templates/base.html":         {Data: []byte("{{ .")},
		"templates/partials/tap.html": {Data: []byte("ok")},
	}
	err := loadTemplatesFromFS(badFS, "templates")
	if err == nil {
		t.Fatal("loadTemplatesFromFS(badFS, \"templates\") = nil; want error")
	}
}

func TestRender_notLoaded(t *testing.T) {
	prev := tapsTmpl
	tapsTmpl = nil
	t.Cleanup(func() { tapsTmpl = prev })

	var buf bytes.Buffer
	err := testPage().Render(&buf)
	if err == nil {
		t.Fatal("Render() = nil; want error when templates not loaded")
	}
	if !strings.Contains(err.Error(), "not loaded") {
		t.Errorf("err = %q; want message containing \"not loaded\"", err.Error())
	}
}

func TestRender_withData(t *testing.T) {
	if err := LoadTemplates(); err != nil {
		t.Fatalf("LoadTemplates(): %v", err)
	}

	var buf bytes.Buffer
	if err := testPage().Render(&buf); err != nil {
		t.Fatalf("Render() = %v; want nil", err)
	}
	out := buf.String()

	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>Kegerator | Taps</title>",
		"Pale Ale",
		"Stout",
		`<span class="percent">50%</span>`,
		`<span class="percent">100%</span>`,
		`<span class="volume">9.5</span>`,
		`<span class="volume">19</span>`,
		"width: 50%",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q; got %q", want, out)
		}
	}
	if got := strings.Count(out, `class="tap"`); got != 3 {
		t.Errorf("rendered %d taps; want 3", got)
	}
	if strings.Contains(out, "Cider <dry>") {
		t.Errorf("tap name was not escaped; got %q", out)
	}
	if !strings.Contains(out, "Cider &lt;dry&gt;") {
		t.Errorf("output missing escaped tap name; got %q", out)
	}
}

func TestRender_tapOrder(t *testing.T) {
	if err := LoadTemplates(); err != nil {
		t.Fatalf("LoadTemplates(): %v", err)
	}

	var buf bytes.Buffer
	if err := testPage().Render(&buf); err != nil {
		t.Fatalf("Render() = %v", err)
	}
	out := buf.String()
	one, two, three := strings.Index(out, "Pale Ale"), strings.Index(out, "Stout"), strings.Index(out, "Cider")
	if !(one < two && two < three) {
		t.Errorf("taps out of order: tap_one@%d tap_two@%d tap_three@%d", one, two, three)
	}
}

func TestRender_deterministic(t *testing.T) {
	if err := LoadTemplates(); err != nil {
		t.Fatalf("LoadTemplates(): %v", err)
	}

	var a, b bytes.Buffer
	if err := testPage().Render(&a); err != nil {
		t.Fatal(err)
	}
	if err := testPage().Render(&b); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("two renders of the same page differ")
	}
}

// Ensure Render propagates write errors (e.g. closed writer).
func TestRender_writeError(t *testing.T) {
	if err := LoadTemplates(); err != nil {
		t.Fatalf("LoadTemplates(): %v", err)
	}

	w := &failingWriter{err: io.ErrClosedPipe}
	err := testPage().Render(w)
	if err == nil {
		t.Fatal("Render(failingWriter) = nil; want error")
	}
	if err != io.ErrClosedPipe {
		t.Errorf("Render() = %v; want %v", err, io.ErrClosedPipe)
	}
}

type failingWriter struct{ err error }

func (f *failingWriter) Write([]byte) (int, error) { return 0, f.err }
