package Trees

import "github.com/sirupsen/logrus"

// Log is the logger trees use unless Config.Logger says otherwise. Fixup
// cases are traced at logrus.TraceLevel.
var Log = logrus.New()

// Config of a RBTree. The zero value is usable: a nil Logger means Log.
type Config struct {
	// Logger receives fixup traces and invariant violations.
	Logger *logrus.Logger
	// CheckInvariants runs Verify after every Insert and Delete and panics
	// with the returned *InvariantError. It makes mutations O(n).
	CheckInvariants bool
}

// DefaultConfig returns the configuration used by MakeRBTree. Invariant checks
// are on only in builds tagged rbdebug.
func DefaultConfig() Config {
	return Config{Logger: Log, CheckInvariants: debugChecks}
}
