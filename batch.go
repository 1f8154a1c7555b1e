package naca

import (
	"context"
	"fmt"
	"runtime"
	"strconv"

	"golang.org/x/sync/errgroup"
)

// Profiles computes the profile of every airfoil concurrently. Each airfoil
// is copied before work starts so callers may mutate the originals once
// Profiles returns. Results are in input order. The first failure cancels
// outstanding work and is returned.
func Profiles(ctx context.Context, foils []*Airfoil) ([]Profile, error) {
	snapshots := make([]*Airfoil, len(foils))
	for i, f := range foils {
		if f == nil {
			return nil, &InvalidParameterError{Param: "airfoil", Input: strconv.Itoa(i), Reason: "nil airfoil"}
		}
		snapshots[i] = f.clone()
	}
	out := make([]Profile, len(snapshots))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range snapshots {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p, err := snapshots[i].Profile()
			if err != nil {
				return fmt.Errorf("airfoil %d (NACA %s): %w", i, snapshots[i].NACACode(), err)
			}
			out[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
