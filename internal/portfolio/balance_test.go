package portfolio

import (
	"math"
	"testing"
)

func validBalances() BalanceVector {
	return BalanceVector{
		BucketCurrent: 1000,
		Bucket1To30:   100,
		Bucket31To60:  80,
		Bucket61To90:  60,
		Bucket91To120: 40,
		Bucket120Plus: 20,
	}
}

func TestBalanceVectorTotal(t *testing.T) {
	bal := validBalances()
	if got := bal.Total(); got != 1300 {
		t.Errorf("Total() = %v, want 1300", got)
	}
}

func TestBalanceVectorClone(t *testing.T) {
	bal := validBalances()
	clone := bal.Clone()
	clone[BucketCurrent] = 0

	if bal[BucketCurrent] != 1000 {
		t.Error("mutating the clone must not affect the original")
	}
}

func TestBalanceVectorValidate(t *testing.T) {
	set := SixBuckets()

	tests := []struct {
		name    string
		mutate  func(BalanceVector) BalanceVector
		wantErr bool
	}{
		{"Valid", func(b BalanceVector) BalanceVector { return b }, false},
		{"MissingCurrent", func(b BalanceVector) BalanceVector { delete(b, BucketCurrent); return b }, true},
		{"MissingOverdueBucket", func(b BalanceVector) BalanceVector { delete(b, Bucket91To120); return b }, true},
		{"NegativeBalance", func(b BalanceVector) BalanceVector { b[Bucket31To60] = -1; return b }, true},
		{"NaNBalance", func(b BalanceVector) BalanceVector { b[Bucket31To60] = math.NaN(); return b }, true},
		{"UnknownBucket", func(b BalanceVector) BalanceVector { b["180_plus"] = 5; return b }, true},
		{"ZeroTotal", func(b BalanceVector) BalanceVector {
			for k := range b {
				b[k] = 0
			}
			return b
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bal := tt.mutate(validBalances())
			err := bal.Validate(set)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestBalanceVectorValidateFiveBuckets(t *testing.T) {
	set := FiveBuckets()
	bal := validBalances()

	// 1_30 is unknown to the five-bucket set
	if err := bal.Validate(set); err == nil {
		t.Error("expected error for 1_30 bucket under five-bucket set")
	}

	delete(bal, Bucket1To30)
	if err := bal.Validate(set); err != nil {
		t.Errorf("expected valid five-bucket vector, got %v", err)
	}
}
