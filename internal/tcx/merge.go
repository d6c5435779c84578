package tcx

import (
	"fmt"
	"sort"
	"time"
)

// MergeKind selects how two workouts are combined.
//
//   - AppendLaps moves the donor's laps, unmodified, after the receiver's
//     laps. Nothing is recomputed; workout aggregates are always derived
//     from laps on demand. This is the default and cheapest policy.
//   - MergeIntoSingleLap requires one lap on each side and appends the
//     donor lap's tracks after the receiver's, keeping track boundaries.
//   - MergeIntoSingleTrack requires one lap on each side and pools every
//     trackpoint into a single time-sorted track, destroying track
//     identity.
type MergeKind int

const (
	AppendLaps MergeKind = iota + 1
	MergeIntoSingleLap
	MergeIntoSingleTrack
)

var mergeKindNames = map[MergeKind]string{
	AppendLaps:           "append_laps",
	MergeIntoSingleLap:   "merge_into_single_lap",
	MergeIntoSingleTrack: "merge_into_single_track",
}

func (k MergeKind) String() string {
	if name, ok := mergeKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("merge_kind(%d)", int(k))
}

// ParseMergeKind resolves a merge kind from its wire name.
func ParseMergeKind(s string) (MergeKind, error) {
	for kind, name := range mergeKindNames {
		if name == s {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("unknown merge kind %q", s)
}

// Merge combines the donor workout into the receiver according to kind.
// The receiver's tree is mutated in place; donor nodes are moved, not
// copied, so the donor is left inconsistent afterwards. All validation
// happens before any mutation: on error the receiver is untouched.
func (w *Workout) Merge(donor *Workout, kind MergeKind) error {
	a, err := workoutInterval(w)
	if err != nil {
		return err
	}
	b, err := workoutInterval(donor)
	if err != nil {
		return err
	}
	if Overlaps(a.start, a.finish, b.start, b.finish) {
		return &OverlapError{AStart: a.start, AFinish: a.finish, BStart: b.start, BFinish: b.finish}
	}

	if kind == AppendLaps {
		activity := w.element(tagActivity)
		if activity == nil {
			return &MalformedDocumentError{Tag: tagActivity}
		}
		activity.Append(collect(donor.elements(tagLap))...)
		return nil
	}

	receiverLaps := w.Laps()
	donorLaps := donor.Laps()
	if len(receiverLaps) != 1 || len(donorLaps) != 1 {
		receiverID, _ := w.ID()
		donorID, _ := donor.ID()
		return &LapCountError{
			ReceiverID:   receiverID,
			DonorID:      donorID,
			ReceiverLaps: len(receiverLaps),
			DonorLaps:    len(donorLaps),
		}
	}

	return receiverLaps[0].Merge(donorLaps[0], kind)
}

// Merge combines another lap into the receiver. Only the two single-lap
// policies apply at this level. The receiver's track subtree is rebuilt
// wholesale from the spliced result, then the stored aggregates accumulate
// the donor's stored values.
func (l Lap) Merge(other Lap, kind MergeKind) error {
	if kind != MergeIntoSingleLap && kind != MergeIntoSingleTrack {
		return fmt.Errorf("merge kind %s does not apply to laps", kind)
	}

	li, err := lapInterval(l)
	if err != nil {
		return err
	}
	oi, err := lapInterval(other)
	if err != nil {
		return err
	}
	if Overlaps(li.start, li.finish, oi.start, oi.finish) {
		return &OverlapError{AStart: li.start, AFinish: li.finish, BStart: oi.start, BFinish: oi.finish}
	}

	// Equal starts are masked by the overlap check above, so the
	// earlier/later split below is total.
	earlier, later := l, other
	if oi.start.Before(li.start) {
		earlier, later = other, l
	}

	// Stored aggregates are independent sensor-reported totals; read them
	// all up front so failures surface before any mutation.
	selfTotal, err := l.TotalSeconds()
	if err != nil {
		return err
	}
	otherTotal, err := other.TotalSeconds()
	if err != nil {
		return err
	}
	selfDistance, err := l.Distance()
	if err != nil {
		return err
	}
	otherDistance, err := other.Distance()
	if err != nil {
		return err
	}
	selfCalories, err := l.Calories()
	if err != nil {
		return err
	}
	otherCalories, err := other.Calories()
	if err != nil {
		return err
	}

	if kind == MergeIntoSingleLap {
		earlierTracks := collect(FindAll(earlier.node, tagTrack, true))
		laterTracks := collect(FindAll(later.node, tagTrack, true))

		l.node.RemoveChildren(func(n *Node) bool { return n.Name == tagTrack })
		l.node.Append(earlierTracks...)
		l.node.Append(laterTracks...)
	} else {
		if err := l.flattenInto(earlier, later); err != nil {
			return err
		}
	}

	l.SetStartTime(minTime(li.start, oi.start))
	if err := l.SetTotalSeconds(selfTotal + otherTotal); err != nil {
		return err
	}
	if err := l.SetDistance(selfDistance + otherDistance); err != nil {
		return err
	}
	if err := l.SetCalories(selfCalories + otherCalories); err != nil {
		return err
	}
	// Average and maximum heart rate stay as recorded on the receiver.
	// TODO: reconcile MaximumHeartRateBpm once a combination rule is agreed.

	return nil
}

// flattenInto pools every trackpoint of both laps into a single track on
// the receiver, ordered by time. The later lap's cumulative distances are
// shifted by the earlier lap's stored distance first, so the odometer keeps
// climbing across the splice.
func (l Lap) flattenInto(earlier, later Lap) error {
	type sample struct {
		node *Node
		at   time.Time
	}

	base, err := earlier.Distance()
	if err != nil {
		return err
	}

	var pooled []sample
	for _, tp := range earlier.Trackpoints() {
		at, err := tp.Time()
		if err != nil {
			return err
		}
		pooled = append(pooled, sample{node: tp.Node(), at: at})
	}

	laterPoints := later.Trackpoints()
	laterDistances := make([]float64, len(laterPoints))
	for i, tp := range laterPoints {
		at, err := tp.Time()
		if err != nil {
			return err
		}
		d, err := tp.Distance()
		if err != nil {
			return err
		}
		laterDistances[i] = d
		pooled = append(pooled, sample{node: tp.Node(), at: at})
	}

	// Validation done; mutation starts here.
	for i, tp := range laterPoints {
		tp.SetDistance(laterDistances[i] + base)
	}

	sort.SliceStable(pooled, func(i, j int) bool {
		return pooled[i].at.Before(pooled[j].at)
	})

	merged := &Node{Name: tagTrack}
	for _, s := range pooled {
		merged.Append(s.node)
	}

	l.node.RemoveChildren(func(n *Node) bool { return n.Name == tagTrack })
	l.node.Append(merged)
	return nil
}
