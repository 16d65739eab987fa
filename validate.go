package shamir

import (
	"fmt"

	shamirerr "github.com/mrz1836/shamir-merkle/pkg/errors"
)

// validateShareSet checks that a set of parsed shares is fit for
// reconstruction: every share declares the same threshold, every index
// is in [1,255], indices are either distinct or (when allowDuplicates)
// deduplicated down to their lowest-indexed occurrence, and the
// resulting count meets the declared threshold.
func validateShareSet(shares []Share, allowDuplicates bool) ([]Share, error) {
	if len(shares) == 0 {
		return nil, shamirerr.New(shamirerr.KindInsufficientShares, "no shares provided")
	}

	threshold := shares[0].Threshold
	seen := make(map[int]int) // index -> position of first occurrence
	var deduped []Share

	for pos, s := range shares {
		if s.Threshold != threshold {
			return nil, shamirerr.WithDetails(
				shamirerr.New(shamirerr.KindInconsistentShares,
					"share declares threshold %d, expected %d", s.Threshold, threshold),
				map[string]string{"index": fmt.Sprintf("%d", s.Index)},
			)
		}
		if s.Index < 1 || s.Index > 255 {
			return nil, shamirerr.ShareIndexError(s.Index, "index out of range [1,255]")
		}

		if _, ok := seen[s.Index]; ok {
			if !allowDuplicates {
				return nil, shamirerr.WithDetails(
					shamirerr.New(shamirerr.KindInconsistentShares, "duplicate share index"),
					map[string]string{"index": fmt.Sprintf("%d", s.Index)},
				)
			}
			continue // keep the first (lowest-positioned) occurrence already in deduped
		}
		seen[s.Index] = pos
		deduped = append(deduped, s)
	}

	if len(deduped) < threshold {
		return nil, shamirerr.New(shamirerr.KindInsufficientShares,
			"need %d shares, have %d distinct indices", threshold, len(deduped))
	}

	return deduped, nil
}
