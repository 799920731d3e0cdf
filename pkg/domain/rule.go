package domain

type TargetType string

const (
	TargetFile      TargetType = "file"
	TargetDirectory TargetType = "directory"
)

type DateDetection string

const (
	// DetectionFile orders entries by the timestamp the filesystem reports
	// for the entry itself (inode change time on unix).
	DetectionFile DateDetection = "file"
)

// Rule is a single rotation policy parsed from one config file. The loader
// guarantees that every Rule handed to the core is valid: recognized enum
// values, non-negative thresholds, paths key present.
type Rule struct {
	// Source is the config file this rule was loaded from, used to tag
	// every outcome the rule produces.
	Source string

	DryRun        bool
	TargetType    TargetType
	DateDetection DateDetection

	MaximumItems int
	MinimumItems int

	// MaximumAge is a threshold in whole days; zero disables the age pass.
	MaximumAge int

	// Paths are independent scan roots. An empty list makes the rule a no-op.
	Paths []string
}
