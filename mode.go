package bodyfile

import "fmt"

// EntryType is the leading character of a mode string.
type EntryType byte

const (
	TypeRegular      EntryType = '-'
	TypeNamedPipe    EntryType = 'p'
	TypeCharDevice   EntryType = 'c'
	TypeDirectory    EntryType = 'd'
	TypeBlockDevice  EntryType = 'b'
	TypeSymbolicLink EntryType = 'l'
	TypeSocket       EntryType = 's'
)

// Unix st_mode type nibble values.
const (
	S_IFIFO  = 0x1000
	S_IFCHR  = 0x2000
	S_IFDIR  = 0x4000
	S_IFBLK  = 0x6000
	S_IFLNK  = 0xa000
	S_IFSOCK = 0xc000
)

const (
	FILE_ATTRIBUTE_READONLY = 0x0001
	FILE_ATTRIBUTE_SYSTEM   = 0x0004

	// Reparse tag marking an NTFS symbolic link.
	IO_REPARSE_TAG_SYMLINK = 0xA000000C
)

// Mode renders as exactly 10 characters: the type character followed
// by rwx triples for owner, group and other.
type Mode struct {
	Type EntryType

	// Perm holds the 9 permission bits in Unix 0o777 layout.
	Perm uint16
}

var permChars = [9]byte{'r', 'w', 'x', 'r', 'w', 'x', 'r', 'w', 'x'}

func (self Mode) String() string {
	buf := [10]byte{}
	buf[0] = byte(self.Type)

	for i := 0; i < 9; i++ {
		if self.Perm&(1<<uint(8-i)) != 0 {
			buf[i+1] = permChars[i]
		} else {
			buf[i+1] = '-'
		}
	}
	return string(buf[:])
}

// NewUnixMode derives a Mode from a raw Unix st_mode value.
func NewUnixMode(mode uint32) Mode {
	result := Mode{Type: TypeRegular, Perm: uint16(mode & 0o777)}

	switch mode & 0xf000 {
	case S_IFIFO:
		result.Type = TypeNamedPipe
	case S_IFCHR:
		result.Type = TypeCharDevice
	case S_IFDIR:
		result.Type = TypeDirectory
	case S_IFBLK:
		result.Type = TypeBlockDevice
	case S_IFLNK:
		result.Type = TypeSymbolicLink
	case S_IFSOCK:
		result.Type = TypeSocket
	}
	return result
}

// NewNTFSMode approximates a Mode from NTFS metadata. NTFS has no
// rwx permission bits so the 9 permission characters collapse to
// r-xr-xr-x when the read only or system attribute flag is set and
// rwxrwxrwx otherwise. This mapping is deliberately lossy.
func NewNTFSMode(is_dir bool, attribute_flags uint32, reparse_tag uint32) Mode {
	result := Mode{Type: TypeRegular, Perm: 0o777}

	if reparse_tag == IO_REPARSE_TAG_SYMLINK {
		result.Type = TypeSymbolicLink
	} else if is_dir {
		result.Type = TypeDirectory
	}

	if attribute_flags&(FILE_ATTRIBUTE_READONLY|FILE_ATTRIBUTE_SYSTEM) != 0 {
		result.Perm = 0o555
	}
	return result
}

// ParseMode parses a 10 character mode string back into the type and
// permission bits. Whether the source was Unix or an NTFS
// approximation is not recoverable from the string.
func ParseMode(text string) (Mode, error) {
	result := Mode{}

	if len(text) != 10 {
		return result, fmt.Errorf(
			"mode string must be 10 characters, got %q", text)
	}

	switch EntryType(text[0]) {
	case TypeRegular, TypeBlockDevice, TypeCharDevice, TypeDirectory,
		TypeSymbolicLink, TypeNamedPipe, TypeSocket:
		result.Type = EntryType(text[0])
	default:
		return result, fmt.Errorf(
			"invalid type character %q in mode string", text[0])
	}

	for i := 0; i < 9; i++ {
		switch text[i+1] {
		case permChars[i]:
			result.Perm |= 1 << uint(8-i)
		case '-':
		default:
			return result, fmt.Errorf(
				"invalid permission character %q at position %d",
				text[i+1], i+1)
		}
	}
	return result, nil
}
