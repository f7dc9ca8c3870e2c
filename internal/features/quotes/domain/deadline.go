package domain

// EstimateDeadline maps an origin/destination zip pair and carrier modality
// to an estimated number of transit days.
//
// The zip space is partitioned into 10 regional tables keyed by the leading
// digit of the origin zip; each table maps destination zip ranges to base
// days for the express and standard tiers. Long routes outside the São Paulo
// hubs (origin above 19999999 with more than 4,000,000 of zip distance) take
// one extra day on express services and two on standard ones.
func EstimateDeadline(cepOri, cepDes string, modality int) (int, error) {
	ori, err := ZipToInt(cepOri)
	if err != nil {
		return 0, err
	}
	des, err := ZipToInt(cepDes)
	if err != nil {
		return 0, err
	}

	isExpress := IsExpressModality(modality)
	days := deadlineTables[ori/10000000].lookup(des, isExpress)

	delta := ori - des
	if delta < 0 {
		delta = -delta
	}
	if ori > 19999999 && delta > 4000000 {
		if isExpress {
			days++
		} else {
			days += 2
		}
	}
	return days, nil
}

// deadlineBand maps destination zips up to an inclusive bound to base days.
type deadlineBand struct {
	upTo     int
	express  int
	standard int
}

// deadlineTable is one origin region table, ordered by destination bound.
type deadlineTable []deadlineBand

func (t deadlineTable) lookup(destZip int, isExpress bool) int {
	for _, band := range t {
		if destZip <= band.upTo {
			if isExpress {
				return band.express
			}
			return band.standard
		}
	}
	// zips never exceed 99999999, the last band always matches
	last := t[len(t)-1]
	if isExpress {
		return last.express
	}
	return last.standard
}
