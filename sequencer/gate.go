package sequencer

// DefaultGateThreshold is the ceiling applied to a gated window's local
// progress while its readiness condition is unmet.
const DefaultGateThreshold = 0.999

// Gate holds local progress just short of completion until ready is true.
// Progress below the threshold passes through unchanged.
func Gate(local float64, ready bool, threshold float64) float64 {
	if ready {
		return local
	}
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultGateThreshold
	}
	if local > threshold {
		return threshold
	}
	return local
}
