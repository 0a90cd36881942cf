package portfolio

// Bucket names are fixed identifiers shared by the optimiser, the roll-forward
// transition and every caller. They are not extensible at call time.
const (
	BucketCurrent = "current"
	Bucket1To30   = "1_30"
	Bucket31To60  = "31_60"
	Bucket61To90  = "61_90"
	Bucket91To120 = "91_120"
	Bucket120Plus = "120_plus"
)

// BucketSet is the ordered, authoritative list of ageing buckets, youngest
// first. The first entry is always "current"; everything after it is overdue.
type BucketSet struct {
	names []string
}

// SixBuckets returns the full ageing ladder including the "1_30" bucket.
func SixBuckets() BucketSet {
	return BucketSet{names: []string{
		BucketCurrent, Bucket1To30, Bucket31To60, Bucket61To90, Bucket91To120, Bucket120Plus,
	}}
}

// FiveBuckets returns the legacy ladder without the "1_30" bucket.
func FiveBuckets() BucketSet {
	return BucketSet{names: []string{
		BucketCurrent, Bucket31To60, Bucket61To90, Bucket91To120, Bucket120Plus,
	}}
}

// Names returns the full bucket order, including "current".
func (s BucketSet) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Overdue returns the overdue buckets in ageing order, youngest first.
func (s BucketSet) Overdue() []string {
	out := make([]string, len(s.names)-1)
	copy(out, s.names[1:])
	return out
}

// Oldest returns the terminal past-due bucket.
func (s BucketSet) Oldest() string {
	return s.names[len(s.names)-1]
}

// Contains reports whether name is a bucket of this set.
func (s BucketSet) Contains(name string) bool {
	for _, n := range s.names {
		if n == name {
			return true
		}
	}
	return false
}

// Len returns the number of buckets including "current".
func (s BucketSet) Len() int {
	return len(s.names)
}
