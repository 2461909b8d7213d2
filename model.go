package bodyfile

// This file defines the model for one file system entry as carried by
// a bodyfile record. A descriptor is populated by the lister (or by
// decoding a line), passed through the codec once and discarded - the
// codec itself holds no state.

// MD5State selects the rendering of the md5 field.
type MD5State int

const (
	// Hashing was disabled; renders as "0".
	MD5Disabled MD5State = iota

	// Hashing was enabled but no digest is available; renders as 32
	// zero characters.
	MD5NotComputed

	// Digest holds the hex digest.
	MD5Present
)

type MD5Value struct {
	State MD5State

	// Digest must be exactly 32 lowercase hex characters when State
	// is MD5Present.
	Digest string
}

func (self MD5Value) String() string {
	switch self.State {
	case MD5Disabled:
		return md5Disabled
	case MD5NotComputed:
		return md5NotComputed
	default:
		return self.Digest
	}
}

// PathSuffix tags the optional trailer of the name field. The two
// suffixes are mutually exclusive so they are one tagged value rather
// than two independent options.
type PathSuffix int

const (
	SuffixNone PathSuffix = iota

	// " -> target" - the entry is a symbolic link.
	SuffixSymlinkTarget

	// " ($FILE_NAME)" - the timestamps were sourced from the NTFS
	// $FILE_NAME attribute rather than $STANDARD_INFORMATION.
	SuffixFileName
)

// EntryPath is the structured form of the name field.
type EntryPath struct {
	// Segments of the full path, joined with '/'. Partition or volume
	// labels supplied by the lister are ordinary leading segments.
	// Reserved characters inside a segment are escaped on encoding.
	Segments []string

	// Stream names an alternate data stream, joined with ':'.
	Stream string

	Suffix PathSuffix

	// Target is the symbolic link destination. Only meaningful when
	// Suffix is SuffixSymlinkTarget.
	Target string
}

// String renders the unescaped, human readable form of the path.
func (self EntryPath) String() string {
	result := joinSegments(self.Segments)
	if self.Stream != "" {
		result += ":" + self.Stream
	}
	switch self.Suffix {
	case SuffixSymlinkTarget:
		result += symlinkSeparator + self.Target
	case SuffixFileName:
		result += filenameSuffix
	}
	return result
}

// FileEntryDescriptor describes a single file system entry - the unit
// of work of the codec.
type FileEntryDescriptor struct {
	MD5   MD5Value
	Path  EntryPath
	Inode Inode
	Mode  Mode

	// Owner and group are nil on file systems without the concept and
	// render as empty fields.
	UID *uint64
	GID *uint64

	Size uint64

	// Each timestamp may be nil - absent is distinct from zero.
	Atime  *TimeValue
	Mtime  *TimeValue
	Ctime  *TimeValue
	Crtime *TimeValue
}
