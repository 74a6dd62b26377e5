package report

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/soletrace/footscan/measure"
)

func testResult(length, width, height float64) *measure.Result {
	return &measure.Result{
		Measurement: measure.Measurement{
			Length:      length,
			Width:       width,
			Height:      height,
			Unit:        "mm",
			Confidence:  measure.ConfidenceMillimeter,
			VertexCount: 1200,
		},
		Ratios:         measure.Ratios(length, width, height),
		Classification: measure.Classify(length, width, height),
	}
}

func TestNew_DualFoot(t *testing.T) {
	left := testResult(255, 98, 58)
	right := testResult(250, 100, 60)
	cmp := measure.Compare(left.Measurement, right.Measurement)

	rep := New(left, right, &cmp)
	if rep.Left == nil || rep.Right == nil {
		t.Fatal("expected both foot summaries")
	}
	if rep.Left.Side != "left" || rep.Right.Side != "right" {
		t.Errorf("sides (%q, %q), want (left, right)", rep.Left.Side, rep.Right.Side)
	}
	if rep.Left.LengthMm != 255 {
		t.Errorf("left length %v, want 255", rep.Left.LengthMm)
	}
	if rep.Comparison == nil {
		t.Fatal("expected comparison")
	}
	if rep.ID.String() == "" {
		t.Error("report has no ID")
	}
}

func TestNew_SingleFoot(t *testing.T) {
	rep := New(testResult(250, 100, 60), nil, nil)
	if rep.Left == nil || rep.Right != nil || rep.Comparison != nil {
		t.Errorf("single-foot report: left=%v right=%v comparison=%v", rep.Left != nil, rep.Right != nil, rep.Comparison != nil)
	}
}

func TestPayload_Compact(t *testing.T) {
	left := testResult(255.04, 98, 58)
	right := testResult(250, 100, 60)
	cmp := measure.Compare(left.Measurement, right.Measurement)
	rep := New(left, right, &cmp)

	data, err := rep.Payload()
	if err != nil {
		t.Fatalf("Payload failed: %v", err)
	}

	var decoded struct {
		ID string `json:"id"`
		TS int64  `json:"ts"`
		L  *struct {
			Len  float64 `json:"len"`
			Foot string  `json:"foot"`
		} `json:"l"`
		Sym *float64 `json:"sym"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("payload is not valid JSON: %v", err)
	}
	if decoded.ID != rep.ID.String() {
		t.Errorf("payload id %q, want %q", decoded.ID, rep.ID)
	}
	if decoded.L == nil || decoded.L.Len != 255.0 {
		t.Errorf("payload left length %+v, want 255.0 (rounded to one decimal)", decoded.L)
	}
	if decoded.Sym == nil {
		t.Error("payload missing symmetry")
	}
}

func TestRender_Text(t *testing.T) {
	left := testResult(255, 98, 58)
	right := testResult(250, 100, 60)
	cmp := measure.Compare(left.Measurement, right.Measurement)
	rep := New(left, right, &cmp)

	text := rep.Render()
	for _, want := range []string{"left", "right", "255.0", "symmetry", rep.Left.FootType} {
		if !strings.Contains(text, want) {
			t.Errorf("rendered report missing %q:\n%s", want, text)
		}
	}
}
