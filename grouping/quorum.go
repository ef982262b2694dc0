package grouping

// QuorumLimit returns the minimum number of eligible voters needed for a
// valid decision by an assembly with totalSeats seats: half, rounded up.
func QuorumLimit(totalSeats int) int {
	if totalSeats <= 0 {
		return 0
	}
	return (totalSeats + 1) / 2
}
