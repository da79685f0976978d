package setter

// ResponseCode encodes the minimum information to generate messages for monitors and notifiers.
type ResponseCode int

const (
	// ResponseNoop means no changes were needed.
	ResponseNoop ResponseCode = iota

	// ResponseUpdated means the firewall should be updated
	// and we updated it.
	ResponseUpdated

	// ResponseFailed means the firewall should be updated
	// but we failed to update it.
	ResponseFailed
)
