package domain

// ScanResult holds the outcome of one filesystem walk, keyed by
// repository-relative path.
type ScanResult struct {
	// Tracked contains every regular file that passed the ignore filter.
	Tracked map[string]bool
	// Ignored lists entries that matched an ignore pattern. Populated only
	// when the caller asked for them (verbose mode); subtrees under an
	// ignored directory are represented by the directory alone.
	Ignored []string
}

// NewScanResult returns an empty ScanResult.
func NewScanResult() *ScanResult {
	return &ScanResult{Tracked: make(map[string]bool)}
}
