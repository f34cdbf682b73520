// Package codes assigns the sequential visitor code ("código único") for
// pedestrian visits.
package codes

import (
	"context"
	"fmt"
	"strconv"

	"github.com/vigilia/caseta/internal/store"
)

// Next returns the next visitor code: one past the highest numeric code
// currently stored, zero-padded to at least two digits ("01", "08", "123").
// Malformed codes are skipped, not errors. With no valid codes it returns
// "01".
//
// The allocator is advisory, not a uniqueness guarantee: on a single
// checkpoint terminal there is one caller at a time, and the design accepts
// duplicate codes if that assumption is ever violated.
func Next(ctx context.Context, st store.Store) (string, error) {
	visits, err := st.PedestrianVisits(ctx)
	if err != nil {
		return "", err
	}

	max := 0
	for _, p := range visits {
		n, err := strconv.Atoi(p.Codigo)
		if err != nil || n < 0 {
			continue
		}
		if n > max {
			max = n
		}
	}
	return fmt.Sprintf("%02d", max+1), nil
}
