package pfc

import (
	"strconv"
	"time"

	"github.com/discochess/pfc/internal/analysis"
)

// Report describes a completed (or halted) run.
type Report struct {
	Mode Mode

	// Lines is the number of records written.
	Lines int64

	// BytesIn and BytesOut count the decoded text read and written,
	// including newlines, before any container compression.
	BytesIn  int64
	BytesOut int64

	Duration time.Duration

	// Prefix summarizes the shared prefix length of every record.
	Prefix analysis.Summary
}

// Ratio returns BytesOut/BytesIn, or 0 for empty input.
func (r *Report) Ratio() float64 {
	return analysis.Ratio(r.BytesIn, r.BytesOut)
}

// Change returns the size change from input to output as a signed
// percentage with two decimals.
// Examples: "-42.50%", "+0.00%", "+73.10%"
func (r *Report) Change() string {
	if r.BytesIn == 0 {
		return "?"
	}
	bp := (r.BytesOut - r.BytesIn) * 10000 / r.BytesIn
	sign := "+"
	if bp < 0 {
		sign = "-"
		bp = -bp
	}
	whole := bp / 100
	frac := bp % 100
	if frac < 10 {
		return sign + strconv.FormatInt(whole, 10) + ".0" + strconv.FormatInt(frac, 10) + "%"
	}
	return sign + strconv.FormatInt(whole, 10) + "." + strconv.FormatInt(frac, 10) + "%"
}
