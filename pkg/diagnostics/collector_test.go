package diagnostics

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"

	"github.com/stackb/fir-symbols/pkg/source"
)

func TestCollector(t *testing.T) {
	c := NewCollector(zerolog.New(zerolog.NewTestWriter(t)).Level(zerolog.DebugLevel))
	elem := &source.PsiElement{Psi: source.NewPsiLeaf("INTEGER_CONSTANT", "42")}
	broken := &Factory{Name: "BROKEN", Severity: Error, Message: "broken"}

	c.Report(elem, EmptyRange)
	c.Report(nil, broken)

	var got []string
	for _, d := range c.Diagnostics() {
		got = append(got, d.String())
	}
	want := []string{
		"0:2: warning EMPTY_RANGE: this range is empty",
		"error BROKEN: broken",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if !c.HasErrors() || c.ErrorCount() != 1 || c.WarningCount() != 1 {
		t.Errorf("counts: errors=%d warnings=%d", c.ErrorCount(), c.WarningCount())
	}
}
