package domain

import (
	"time"

	"github.com/yurykabanov/rotator/pkg/util"
)

// AgeResolver turns an entry into a comparable timestamp. The value has no
// meaning beyond ordering.
type AgeResolver interface {
	Resolve(entry Entry, method DateDetection) (time.Time, error)
}

type fileAgeResolver struct{}

func NewFileAgeResolver() AgeResolver {
	return fileAgeResolver{}
}

func (fileAgeResolver) Resolve(entry Entry, method DateDetection) (time.Time, error) {
	switch method {
	case DetectionFile:
		return util.ChangeTime(entry.Info), nil
	default:
		return time.Time{}, ErrUnsupportedDetection
	}
}
