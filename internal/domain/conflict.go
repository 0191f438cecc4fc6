package domain

import "time"

// overlaps is the half-open interval test: [s1, e1) and [s2, e2) overlap
// when s1 < e2 && s2 < e1.
func overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && s2.Before(e1)
}

// HasConflict reports whether the candidate interval [start, end) overlaps an
// existing set for the artist on any stage. excludeID skips one assignment,
// used when re-checking a move. Comparison happens on absolute timestamps so
// "23:30-00:30" and "00:00-01:00" land on the same axis and collide.
func HasConflict(b *Board, artistID string, start, end time.Time, excludeID string) bool {
	for _, a := range b.AssignmentsForArtist(artistID) {
		if a.ID == excludeID {
			continue
		}
		if overlaps(a.StartTime, a.EndTime, start, end) {
			return true
		}
	}
	return false
}

// ConflictingArtistIDs lists artists with at least one pair of overlapping
// sets, in first-seen order. Feeds the conflict highlight in the grid.
func ConflictingArtistIDs(b *Board) []string {
	all := b.Assignments()
	seen := make(map[string]struct{})
	var out []string
	for i, a := range all {
		if _, ok := seen[a.ArtistID]; ok {
			continue
		}
		for _, other := range all[i+1:] {
			if other.ArtistID != a.ArtistID {
				continue
			}
			if overlaps(a.StartTime, a.EndTime, other.StartTime, other.EndTime) {
				seen[a.ArtistID] = struct{}{}
				out = append(out, a.ArtistID)
				break
			}
		}
	}
	return out
}
