package constant

const (
	// BcryptCost matches the work factor the original deployment used.
	BcryptCost = 10

	DefaultJobStatus = "Applied"

	// DateLayout is the wire format for date_applied.
	DateLayout = "2006-01-02"
)
