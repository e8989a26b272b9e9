package nvs

import (
	"github.com/muurk/softap/internal/logging"
	"go.uber.org/zap"
)

// Partition is the non-volatile storage region managed by the store.
type Partition interface {
	// Init brings the partition up for use.
	Init() error
	// Erase wipes the whole partition.
	Erase() error
}

// Initialize initializes p, erasing and retrying once when the partition
// is full or has an incompatible version. Any other error, a failed
// erase, or a second failure is returned.
func Initialize(p Partition) error {
	log := logging.Named("nvs")

	err := p.Init()
	if err == nil {
		log.Debug("Partition initialized")
		return nil
	}
	if !NeedsErase(err) {
		return err
	}

	log.Warn("Partition needs erase, reinitializing", zap.Error(err))

	if err := p.Erase(); err != nil {
		return &StoreError{Op: "erase", Err: err}
	}
	if err := p.Init(); err != nil {
		return &StoreError{Op: "reinit", Err: err}
	}

	log.Info("Partition erased and reinitialized")
	return nil
}
