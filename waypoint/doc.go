// Package waypoint maps raw graph node identifiers to canonical destination
// identifiers.
//
// The travel graph distinguishes many transit variants of one logical
// destination so that legs between variants can carry their own travel times.
// Those variants are marked with a leading 'W' (Marker) and encode the
// destination they belong to in their last character:
//
//	W13 → W3
//	W43 → W3
//	W3  → W3   (length ≤ 2, unchanged)
//	A   → A    (no marker, unchanged)
//
// Pricing and display operate on the canonical identifier only.
package waypoint
