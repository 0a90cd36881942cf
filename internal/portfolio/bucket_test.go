package portfolio

import (
	"testing"
)

func TestSixBuckets(t *testing.T) {
	set := SixBuckets()

	if set.Len() != 6 {
		t.Fatalf("expected 6 buckets, got %d", set.Len())
	}
	if set.Names()[0] != BucketCurrent {
		t.Errorf("expected first bucket to be current, got %s", set.Names()[0])
	}
	if set.Oldest() != Bucket120Plus {
		t.Errorf("expected oldest bucket to be 120_plus, got %s", set.Oldest())
	}

	overdue := set.Overdue()
	want := []string{Bucket1To30, Bucket31To60, Bucket61To90, Bucket91To120, Bucket120Plus}
	if len(overdue) != len(want) {
		t.Fatalf("expected %d overdue buckets, got %d", len(want), len(overdue))
	}
	for i, b := range want {
		if overdue[i] != b {
			t.Errorf("overdue[%d] = %s, want %s", i, overdue[i], b)
		}
	}
}

func TestFiveBuckets(t *testing.T) {
	set := FiveBuckets()

	if set.Len() != 5 {
		t.Fatalf("expected 5 buckets, got %d", set.Len())
	}
	if set.Contains(Bucket1To30) {
		t.Error("five-bucket set must not contain 1_30")
	}
	if set.Overdue()[0] != Bucket31To60 {
		t.Errorf("expected youngest overdue bucket to be 31_60, got %s", set.Overdue()[0])
	}
	if set.Oldest() != Bucket120Plus {
		t.Errorf("expected oldest bucket to be 120_plus, got %s", set.Oldest())
	}
}

func TestBucketSetNamesIsACopy(t *testing.T) {
	set := SixBuckets()
	names := set.Names()
	names[0] = "tampered"

	if set.Names()[0] != BucketCurrent {
		t.Error("mutating the returned slice must not affect the bucket set")
	}
}
