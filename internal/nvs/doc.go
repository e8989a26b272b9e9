// Package nvs implements the device's persistent state store.
//
// The store wraps a single non-volatile key-value partition. The only
// operation the boot sequence needs is Initialize, which brings the
// partition up and repairs it when it is full or was written by a newer
// format version:
//
//	part := nvs.NewFilePartition(path)
//	if err := nvs.Initialize(part); err != nil {
//	    // fatal: the partition could not be recovered
//	}
//
// Repair is destructive. The partition is erased exactly once and
// initialization is retried exactly once; a second failure is returned to
// the caller rather than looping on a faulty partition.
//
// # Partition Image
//
// FilePartition keeps the partition image as YAML:
//
//	format_version: 2
//	pages: 3
//	entries:
//	  namespace:
//	    key: value
//
// Pages hold EntriesPerPage entries each and one page must stay free for
// compaction, so an image whose entries reach the last page reports
// ErrNoFreePages.
package nvs
