package portfolio

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Sample returns the built-in demo portfolio used when no CSV is supplied.
func Sample() BalanceVector {
	return BalanceVector{
		BucketCurrent: 8985917.53,
		Bucket1To30:   600000.00,
		Bucket31To60:  443229.09,
		Bucket61To90:  158527.74,
		Bucket91To120: 43891.93,
		Bucket120Plus: 368433.71,
	}
}

// LoadCSV reads an ageing file with "bucket,balance" columns into a
// BalanceVector and validates it against the bucket set. A header row is
// recognised by a non-numeric balance column and skipped.
func LoadCSV(path string, set BucketSet) (BalanceVector, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ageing file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse ageing file %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("ageing file %s is empty", path)
	}

	bal := make(BalanceVector)
	for i, rec := range records {
		if len(rec) < 2 {
			return nil, fmt.Errorf("line %d: expected bucket,balance columns", i+1)
		}
		bucket := strings.TrimSpace(rec[0])
		amount, err := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if err != nil {
			if i == 0 {
				// Header row
				continue
			}
			return nil, fmt.Errorf("line %d: invalid balance %q", i+1, rec[1])
		}
		if _, dup := bal[bucket]; dup {
			return nil, fmt.Errorf("line %d: duplicate bucket %q", i+1, bucket)
		}
		bal[bucket] = amount
	}

	if err := bal.Validate(set); err != nil {
		return nil, fmt.Errorf("invalid ageing data in %s: %w", path, err)
	}
	return bal, nil
}
