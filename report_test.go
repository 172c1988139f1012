package pfc

import "testing"

func TestReport_Change(t *testing.T) {
	tests := []struct {
		name    string
		in, out int64
		want    string
	}{
		{name: "smaller", in: 1000, out: 575, want: "-42.50%"},
		{name: "same", in: 10, out: 10, want: "+0.00%"},
		{name: "larger", in: 1000, out: 1731, want: "+73.10%"},
		{name: "small change", in: 10000, out: 10005, want: "+0.05%"},
		{name: "empty", in: 0, out: 0, want: "?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Report{BytesIn: tt.in, BytesOut: tt.out}
			if got := r.Change(); got != tt.want {
				t.Errorf("Change() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReport_Ratio(t *testing.T) {
	r := &Report{BytesIn: 200, BytesOut: 50}
	if got := r.Ratio(); got != 0.25 {
		t.Errorf("Ratio() = %v, want 0.25", got)
	}
	if got := (&Report{}).Ratio(); got != 0 {
		t.Errorf("Ratio() on empty = %v, want 0", got)
	}
}

func TestParseMode(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want Mode
	}{
		{"compress", ModeCompress},
		{"expand", ModeExpand},
		{"EXPAND", ModeExpand},
	} {
		got, err := ParseMode(tt.in)
		if err != nil {
			t.Fatalf("ParseMode(%q) error = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
		if got.String() != tt.want.String() {
			t.Errorf("String() = %q", got.String())
		}
	}

	if _, err := ParseMode("squash"); err == nil {
		t.Error("ParseMode(squash) should fail")
	}
}
