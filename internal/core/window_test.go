package core

import "testing"

func TestLookbackContains(t *testing.T) {
	w := Lookback(NewDate(2024, 12, 1), 90)

	cases := []struct {
		d    Date
		want bool
	}{
		{NewDate(2024, 12, 1), true},  // anchor itself
		{NewDate(2024, 9, 2), true},   // window start
		{NewDate(2024, 10, 15), true}, // inside
		{NewDate(2024, 12, 2), false}, // after the anchor
		{NewDate(2024, 9, 1), false},  // before the start
		{Date{}, false},               // zero date never matches
	}
	for _, tc := range cases {
		if got := w.Contains(tc.d); got != tc.want {
			t.Fatalf("Contains(%v) = %v, want %v", tc.d, got, tc.want)
		}
	}
}

func TestMonthToDate(t *testing.T) {
	anchor, err := ParseAnchor("2021-12-31 16:00:00", DateTimeLayout)
	if err != nil {
		t.Fatalf("parse anchor: %v", err)
	}
	w := MonthToDate(anchor)

	if !w.Contains(NewDate(2021, 12, 1)) {
		t.Fatalf("first of month must be inside")
	}
	if !w.Contains(NewDate(2021, 12, 31)) {
		t.Fatalf("anchor day must be inside")
	}
	if w.Contains(NewDate(2021, 11, 30)) {
		t.Fatalf("previous month must be outside")
	}
	if w.Contains(DateOf(anchor.AddDate(0, 0, 1))) {
		t.Fatalf("day after anchor must be outside")
	}
}

func TestWindowFilterPreservesOrder(t *testing.T) {
	l := Ledger{
		{Date: NewDate(2024, 11, 3), Description: "a"},
		{Date: NewDate(2024, 12, 2), Description: "out"},
		{Date: NewDate(2024, 11, 1), Description: "b"},
		{Date: Date{}, Description: "dirty"},
	}
	got := Lookback(NewDate(2024, 12, 1), 90).Filter(l)
	if len(got) != 2 || got[0].Description != "a" || got[1].Description != "b" {
		t.Fatalf("unexpected filter result: %+v", got)
	}
	// input untouched
	if len(l) != 4 {
		t.Fatalf("input mutated")
	}
}
