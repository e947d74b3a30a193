package ring

import (
	"math"
	"testing"
)

func TestRangeSpannedSameTokenAlwaysOne(t *testing.T) {
	o := NewOwnedRangeSet(nil)
	d := DataFileDescriptor{First: 42, Last: 42, HasCoverage: true, ReportedCoverage: 0.1}
	got, err := RangeSpanned(o, d)
	if err != nil {
		t.Fatalf("RangeSpanned(same token) error: %v", err)
	}
	if got != 1.0 {
		t.Errorf("RangeSpanned(same token) = %v, want 1.0", got)
	}
}

func TestRangeSpannedHonorsReportedCoverage(t *testing.T) {
	o := NewOwnedRangeSet([]WeightedRange{{Range: Range{Left: 0, Right: 1000}, Weight: 1.0}})
	d := DataFileDescriptor{First: 0, Last: 500, HasCoverage: true, ReportedCoverage: 0.3}
	got, err := RangeSpanned(o, d)
	if err != nil {
		t.Fatalf("RangeSpanned(reported coverage) error: %v", err)
	}
	if got != 0.3 {
		t.Errorf("RangeSpanned(reported coverage) = %v, want 0.3", got)
	}
}

func TestRangeSpannedIgnoresZeroOrNaNCoverage(t *testing.T) {
	o := NewOwnedRangeSet([]WeightedRange{{Range: Range{Left: 0, Right: 1000}, Weight: 1.0}})
	d := DataFileDescriptor{First: 0, Last: 500, HasCoverage: true, ReportedCoverage: 0}
	got, err := RangeSpanned(o, d)
	if err != nil {
		t.Fatalf("RangeSpanned(zero coverage) error: %v", err)
	}
	want := o.IntersectionSize(Range{Left: 0, Right: 500})
	if math.Abs(got-want) > 1e-15 {
		t.Errorf("RangeSpanned(zero coverage) = %v, want fallback %v", got, want)
	}

	dNaN := DataFileDescriptor{First: 0, Last: 500, HasCoverage: true, ReportedCoverage: math.NaN()}
	got2, err := RangeSpanned(o, dNaN)
	if err != nil {
		t.Fatalf("RangeSpanned(NaN coverage) error: %v", err)
	}
	if math.Abs(got2-want) > 1e-15 {
		t.Errorf("RangeSpanned(NaN coverage) = %v, want fallback %v", got2, want)
	}
}

func TestRangeSpannedFallsBackToIntersection(t *testing.T) {
	o := NewOwnedRangeSet([]WeightedRange{{Range: Range{Left: 0, Right: 1000}, Weight: 1.0}})
	d := DataFileDescriptor{First: 0, Last: 500}
	got, err := RangeSpanned(o, d)
	if err != nil {
		t.Fatalf("RangeSpanned(no coverage) error: %v", err)
	}
	want := o.IntersectionSize(Range{Left: 0, Right: 500})
	if math.Abs(got-want) > 1e-15 {
		t.Errorf("RangeSpanned(no coverage) = %v, want %v", got, want)
	}
}

func TestRangeSpannedOutOfRangeFileReturnsOne(t *testing.T) {
	o := NewOwnedRangeSet([]WeightedRange{{Range: Range{Left: 0, Right: 1000}, Weight: 1.0}})
	d := DataFileDescriptor{First: 5000, Last: 6000}
	got, err := RangeSpanned(o, d)
	if err != nil {
		t.Fatalf("RangeSpanned(out of owned range) error: %v", err)
	}
	if got != 1.0 {
		t.Errorf("RangeSpanned(out of owned range) = %v, want 1.0", got)
	}
}

func TestRangeSpannedRejectsFirstAfterLast(t *testing.T) {
	o := NewOwnedRangeSet([]WeightedRange{{Range: Range{Left: 0, Right: 1000}, Weight: 1.0}})
	d := DataFileDescriptor{First: 500, Last: 100}
	_, err := RangeSpanned(o, d)
	if err != ErrInvalidDescriptor {
		t.Errorf("RangeSpanned(first > last) error = %v, want ErrInvalidDescriptor", err)
	}
}
