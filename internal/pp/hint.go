package pp

// Hint is the identifier of a hint.
type Hint int

// All the registered hints.
const (
	HintIP4DetectionFails Hint = iota
	HintIP6DetectionFails
	HintFirewallPermissions
	HintRecordPermissions
	HintStaleRecordID
)
