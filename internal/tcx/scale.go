package tcx

// ScaleOptions selects which trackpoint fields a scale pass touches.
type ScaleOptions struct {
	Distance bool
	Cadence  bool
	Watts    bool
}

// ScaleAll scales every supported field.
func ScaleAll() ScaleOptions {
	return ScaleOptions{Distance: true, Cadence: true, Watts: true}
}

// Scale multiplies the selected fields of every trackpoint by factor.
// Typical use is correcting a miscalibrated trainer or foot pod: times and
// GPS positions stay as recorded, only the derived sensor values move.
// Stored lap totals are not touched.
func (w *Workout) Scale(factor float64, opts ScaleOptions) error {
	for _, lap := range w.Laps() {
		for _, tp := range lap.Trackpoints() {
			if opts.Distance {
				d, err := tp.Distance()
				if err != nil {
					return err
				}
				if err := tp.SetDistance(d * factor); err != nil {
					return err
				}
			}
			if opts.Cadence {
				if c, ok := tp.Cadence(); ok {
					tp.SetCadence(int(float64(c) * factor))
				}
			}
			if opts.Watts {
				if p, ok := tp.Watts(); ok {
					tp.SetWatts(int(float64(p) * factor))
				}
			}
		}
	}
	return nil
}
