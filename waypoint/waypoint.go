package waypoint

// Marker is the leading character of waypoint node identifiers.
const Marker = 'W'

// minWaypointLen is the shortest identifier treated as a waypoint variant.
const minWaypointLen = 3

// IsWaypoint reports whether id is a waypoint variant that Simplify collapses.
// Characters are counted as runes.
func IsWaypoint(id string) bool {
	r := []rune(id)

	return len(r) >= minWaypointLen && r[0] == Marker
}

// Simplify returns the canonical identifier for id: the first and last
// character of a waypoint variant, or id unchanged otherwise.
// Pure function, O(len(id)).
func Simplify(id string) string {
	if !IsWaypoint(id) {
		return id
	}
	r := []rune(id)

	return string([]rune{r[0], r[len(r)-1]})
}
