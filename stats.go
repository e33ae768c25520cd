package linkage

import "gonum.org/v1/gonum/stat"

// Stats summarizes a component size table.
type Stats struct {
	Components int     `json:"components"`
	Largest    int     `json:"largest"`
	Smallest   int     `json:"smallest"`
	Singletons int     `json:"singletons"`
	Mean       float64 `json:"mean"`
	StdDev     float64 `json:"std_dev"`
}

// SizeStats computes summary statistics over component sizes. StdDev is the
// unbiased sample standard deviation and is 0 for fewer than two components.
func SizeStats(sizes []int) Stats {
	s := Stats{Components: len(sizes)}
	if len(sizes) == 0 {
		return s
	}

	xs := make([]float64, len(sizes))
	s.Largest, s.Smallest = sizes[0], sizes[0]
	for i, v := range sizes {
		xs[i] = float64(v)
		s.Largest = max(s.Largest, v)
		s.Smallest = min(s.Smallest, v)
		if v == 1 {
			s.Singletons++
		}
	}

	if len(xs) == 1 {
		s.Mean = xs[0]
		return s
	}
	s.Mean, s.StdDev = stat.MeanStdDev(xs, nil)
	return s
}
