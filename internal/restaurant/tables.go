package restaurant

// SelectTable picks the smallest free table that seats the party. Among
// tables of equal capacity the one listed first in the catalog wins. The
// second return value is false when nothing fits; that is a normal outcome,
// not an error.
func SelectTable(guests int, booked []string, catalog []Table) (string, bool) {
	taken := make(map[string]struct{}, len(booked))
	for _, id := range booked {
		taken[id] = struct{}{}
	}

	best := -1
	for i, t := range catalog {
		if t.Capacity < guests {
			continue
		}
		if _, ok := taken[t.ID]; ok {
			continue
		}
		if best == -1 || t.Capacity < catalog[best].Capacity {
			best = i
		}
	}
	if best == -1 {
		return "", false
	}
	return catalog[best].ID, true
}
