package domain

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		netIncome float64
		want      ProfitBucket
	}{
		{1500, ProfitBucketProfit},
		{0.01, ProfitBucketProfit},
		{0, ProfitBucketBreakEven},
		{-0.01, ProfitBucketLoss},
		{-150, ProfitBucketLoss},
	}

	for _, tt := range tests {
		if got := Classify(tt.netIncome); got != tt.want {
			t.Errorf("Classify(%v) = %s, want %s", tt.netIncome, got, tt.want)
		}
	}
}

func TestPerformanceNetIncome(t *testing.T) {
	var nilPerf *Performance
	if nilPerf.NetIncome() != 0 {
		t.Error("nil performance must read as 0")
	}

	if (&Performance{}).NetIncome() != 0 {
		t.Error("absent net income must read as 0")
	}

	v := -150.0
	if (&Performance{NetEventIncome: &v}).NetIncome() != -150 {
		t.Error("present net income must be returned as-is")
	}
}

func TestValidProfitBucket(t *testing.T) {
	for _, s := range []string{"", "all", "profitable", "break-even", "loss"} {
		if !ValidProfitBucket(s) {
			t.Errorf("%q should be valid", s)
		}
	}
	for _, s := range []string{"profit", "breakeven", "ALL", "negative"} {
		if ValidProfitBucket(s) {
			t.Errorf("%q should be invalid", s)
		}
	}
}

func TestMatchesProfit(t *testing.T) {
	income := 100.0
	profitable := &Performance{NetEventIncome: &income}

	// Empty and "all" match everything, including a missing record.
	for _, bucket := range []ProfitBucket{"", ProfitBucketAll} {
		f := PerformanceFilter{Profit: bucket}
		if !f.MatchesProfit(profitable) || !f.MatchesProfit(nil) {
			t.Errorf("bucket %q must match everything", bucket)
		}
	}

	f := PerformanceFilter{Profit: ProfitBucketProfit}
	if !f.MatchesProfit(profitable) {
		t.Error("profitable performance must match the profitable bucket")
	}
	if f.MatchesProfit(nil) {
		t.Error("missing record reads as 0, which is break-even, not profitable")
	}

	f = PerformanceFilter{Profit: ProfitBucketBreakEven}
	if !f.MatchesProfit(nil) {
		t.Error("missing record must match break-even")
	}
}
