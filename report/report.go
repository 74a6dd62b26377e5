// Package report assembles measurement results into a shareable report
// record and its compact embeddable payload. Rendering (PDF layout, QR image
// generation) happens outside this module; only the data lives here.
package report

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/soletrace/footscan/measure"
)

// FootSummary is the per-foot slice of a report.
type FootSummary struct {
	Side        string  `json:"side"`
	LengthMm    float64 `json:"length_mm"`
	WidthMm     float64 `json:"width_mm"`
	HeightMm    float64 `json:"height_mm"`
	Confidence  string  `json:"confidence"`
	FootType    string  `json:"foot_type"`
	ArchType    string  `json:"arch_type"`
	VertexCount int     `json:"vertex_count"`
	Fallback    bool    `json:"fallback"`
}

// Report is one session's complete output. Either foot may be missing for a
// single-foot session; Comparison is present only when both were measured.
type Report struct {
	ID         uuid.UUID           `json:"id"`
	CreatedAt  time.Time           `json:"created_at"`
	Left       *FootSummary        `json:"left,omitempty"`
	Right      *FootSummary        `json:"right,omitempty"`
	Comparison *measure.Comparison `json:"comparison,omitempty"`
}

// New builds a report from whatever the session measured.
func New(left, right *measure.Result, comparison *measure.Comparison) *Report {
	r := &Report{
		ID:         uuid.New(),
		CreatedAt:  time.Now().UTC(),
		Comparison: comparison,
	}
	if left != nil {
		r.Left = summarize(measure.SideLeft, left)
	}
	if right != nil {
		r.Right = summarize(measure.SideRight, right)
	}
	return r
}

func summarize(side measure.FootSide, res *measure.Result) *FootSummary {
	m := res.Measurement
	return &FootSummary{
		Side:        side.String(),
		LengthMm:    m.Length,
		WidthMm:     m.Width,
		HeightMm:    m.Height,
		Confidence:  m.Confidence,
		FootType:    res.Classification.FootType,
		ArchType:    res.Classification.ArchType,
		VertexCount: m.VertexCount,
		Fallback:    m.Fallback,
	}
}

// payload is the compact wire form meant for embedding (QR and similar
// size-constrained carriers). Keys are shortened and per-foot data reduced to
// the scalar triplet plus labels.
type payload struct {
	ID  string       `json:"id"`
	TS  int64        `json:"ts"`
	L   *payloadFoot `json:"l,omitempty"`
	R   *payloadFoot `json:"r,omitempty"`
	Sym *float64     `json:"sym,omitempty"`
}

type payloadFoot struct {
	Len  float64 `json:"len"`
	Wid  float64 `json:"wid"`
	Hgt  float64 `json:"hgt"`
	Foot string  `json:"foot"`
	Arch string  `json:"arch"`
}

// Payload encodes the report's compact JSON form.
func (r *Report) Payload() ([]byte, error) {
	p := payload{
		ID: r.ID.String(),
		TS: r.CreatedAt.Unix(),
	}
	if r.Left != nil {
		p.L = payloadFootFrom(r.Left)
	}
	if r.Right != nil {
		p.R = payloadFootFrom(r.Right)
	}
	if r.Comparison != nil {
		sym := r.Comparison.SymmetryScorePct
		p.Sym = &sym
	}
	return json.Marshal(p)
}

func payloadFootFrom(f *FootSummary) *payloadFoot {
	return &payloadFoot{
		Len:  round1(f.LengthMm),
		Wid:  round1(f.WidthMm),
		Hgt:  round1(f.HeightMm),
		Foot: f.FootType,
		Arch: f.ArchType,
	}
}

func round1(v float64) float64 {
	return float64(int64(v*10+0.5)) / 10
}

// Render formats the report as a plain-text block for terminal display.
func (r *Report) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Report %s (%s)\n", r.ID, r.CreatedAt.Format(time.RFC3339))
	for _, f := range []*FootSummary{r.Left, r.Right} {
		if f == nil {
			continue
		}
		fmt.Fprintf(&b, "  %s: length %.1fmm  width %.1fmm  height %.1fmm\n", f.Side, f.LengthMm, f.WidthMm, f.HeightMm)
		fmt.Fprintf(&b, "    %s, %s [%s]\n", f.FootType, f.ArchType, f.Confidence)
	}
	if r.Comparison != nil {
		c := r.Comparison
		fmt.Fprintf(&b, "  symmetry: %.0f%% (%s)\n", c.SymmetryScorePct, c.Severity)
		fmt.Fprintf(&b, "    diffs: length %.1fmm  width %.1fmm  height %.1fmm\n", c.LengthDiff, c.WidthDiff, c.HeightDiff)
	}
	return b.String()
}
