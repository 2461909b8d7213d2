package bodyfile

import (
	"fmt"
	"strconv"
	"strings"
)

// Inode is the identifier field of a record. Most file systems supply
// an opaque textual identifier; NTFS entries use the composite
// "{mft_entry}-{sequence_number}" form.
type Inode struct {
	// Value holds the identifier verbatim for non NTFS sources.
	Value string

	IsNTFS         bool
	MFTEntry       uint64
	SequenceNumber uint64
}

// NewNTFSInode splits a 64 bit NTFS file reference into the MFT entry
// number and its reuse sequence number.
func NewNTFSInode(file_reference uint64) Inode {
	return Inode{
		IsNTFS:         true,
		MFTEntry:       file_reference & 0xFFFFFFFFFFFF,
		SequenceNumber: file_reference >> 48,
	}
}

func (self Inode) String() string {
	if self.IsNTFS {
		return fmt.Sprintf("%d-%d", self.MFTEntry, self.SequenceNumber)
	}
	return self.Value
}

// ParseInode attempts the NTFS composite form first and falls back to
// a simple identifier holding the raw string. A simple identifier
// that happens to look like digits-digits is therefore misclassified
// as NTFS - a known ambiguity of the format itself. It re-encodes to
// the same text either way.
func ParseInode(text string) Inode {
	idx := strings.IndexByte(text, '-')
	if idx > 0 && idx < len(text)-1 {
		entry_str := text[:idx]
		sequence_str := text[idx+1:]

		if isCanonicalUint(entry_str) && isCanonicalUint(sequence_str) {
			entry, err1 := strconv.ParseUint(entry_str, 10, 64)
			sequence, err2 := strconv.ParseUint(sequence_str, 10, 64)
			if err1 == nil && err2 == nil {
				return Inode{
					IsNTFS:         true,
					MFTEntry:       entry,
					SequenceNumber: sequence,
				}
			}
		}
	}
	return Inode{Value: text}
}
