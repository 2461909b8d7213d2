// Package bodyfile implements the bodyfile timeline record format: a
// line oriented, pipe delimited representation of file system entry
// metadata exchanged between enumeration tools and timeline analysis
// tools. Encoding is deterministic and decoding reproduces the input
// line byte for byte, so downstream consumers can rely on exact text.
package bodyfile

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// NumFields is the fixed field count of one record line.
const NumFields = 11

const (
	md5Disabled    = "0"
	md5NotComputed = "00000000000000000000000000000000"

	symlinkSeparator = " -> "
	filenameSuffix   = " ($FILE_NAME)"
)

var fieldNames = [NumFields]string{
	"md5", "name", "inode", "mode_as_string", "uid", "gid", "size",
	"atime", "mtime", "ctime", "crtime",
}

// EncodeRecord renders a descriptor as one bodyfile line (without the
// trailing newline). Fields appear in the fixed order
// md5|name|inode|mode_as_string|uid|gid|size|atime|mtime|ctime|crtime.
func EncodeRecord(entry *FileEntryDescriptor) (string, error) {
	md5_field, err := encodeMD5(entry.MD5)
	if err != nil {
		return "", err
	}

	name_field, err := encodePath(entry.Path)
	if err != nil {
		return "", err
	}

	fields := []string{
		md5_field,
		name_field,
		EscapeField(entry.Inode.String()),
		entry.Mode.String(),
		formatOptionalUint(entry.UID),
		formatOptionalUint(entry.GID),
		strconv.FormatUint(entry.Size, 10),
	}

	for _, ts := range []*TimeValue{
		entry.Atime, entry.Mtime, entry.Ctime, entry.Crtime} {
		text, err := encodeTimestamp(ts)
		if err != nil {
			return "", err
		}
		fields = append(fields, text)
	}

	return strings.Join(fields, "|"), nil
}

// DecodeRecord parses one line back into a descriptor. Decoding is
// all or nothing: the first failing field aborts the line and is
// reported with its name and 1-based position. Empty uid, gid and
// timestamp fields are valid values, not errors.
func DecodeRecord(line string) (*FileEntryDescriptor, error) {
	fields := SplitFields(line)
	if len(fields) != NumFields {
		return nil, &FieldCountError{Count: len(fields)}
	}

	fail := func(idx int, err error) error {
		return &FieldDecodeError{
			FieldIndex: idx + 1,
			FieldName:  fieldNames[idx],
			Err:        err,
		}
	}

	result := &FileEntryDescriptor{}
	var err error

	result.MD5, err = parseMD5(fields[0])
	if err != nil {
		return nil, fail(0, err)
	}

	result.Path, err = parsePath(fields[1])
	if err != nil {
		return nil, fail(1, err)
	}

	inode_text, err := UnescapeField(fields[2])
	if err != nil {
		return nil, fail(2, err)
	}
	result.Inode = ParseInode(inode_text)

	result.Mode, err = ParseMode(fields[3])
	if err != nil {
		return nil, fail(3, err)
	}

	result.UID, err = parseOptionalUint(fields[4])
	if err != nil {
		return nil, fail(4, err)
	}

	result.GID, err = parseOptionalUint(fields[5])
	if err != nil {
		return nil, fail(5, err)
	}

	if !isCanonicalUint(fields[6]) {
		return nil, fail(6, fmt.Errorf(
			"not a decimal integer: %q", fields[6]))
	}
	result.Size, err = strconv.ParseUint(fields[6], 10, 64)
	if err != nil {
		return nil, fail(6, err)
	}

	timestamps := []**TimeValue{
		&result.Atime, &result.Mtime, &result.Ctime, &result.Crtime}
	for i, ts := range timestamps {
		if fields[7+i] == "" {
			continue
		}
		*ts, err = ParseTimeValue(fields[7+i])
		if err != nil {
			return nil, fail(7+i, err)
		}
	}

	return result, nil
}

func encodeMD5(value MD5Value) (string, error) {
	if value.State == MD5Present {
		if !isMD5Digest(value.Digest) {
			return "", &MalformedDescriptorError{
				Reason: fmt.Sprintf(
					"md5 digest must be 32 lowercase hex characters, got %q",
					value.Digest),
			}
		}
		if value.Digest == md5NotComputed {
			return "", &MalformedDescriptorError{
				Reason: "all zero md5 digest is reserved for the no-value marker",
			}
		}
	}
	return value.String(), nil
}

func parseMD5(text string) (MD5Value, error) {
	switch text {
	case md5Disabled:
		return MD5Value{State: MD5Disabled}, nil
	case md5NotComputed:
		return MD5Value{State: MD5NotComputed}, nil
	}
	if !isMD5Digest(text) {
		return MD5Value{}, fmt.Errorf("not a valid md5 field: %q", text)
	}
	return MD5Value{State: MD5Present, Digest: text}, nil
}

func isMD5Digest(text string) bool {
	if len(text) != 32 {
		return false
	}
	for i := 0; i < len(text); i++ {
		c := text[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}

func joinSegments(segments []string) string {
	result := strings.Join(segments, "/")
	if result == "" {
		return "/"
	}
	return result
}

func encodePath(path EntryPath) (string, error) {
	if path.Suffix != SuffixSymlinkTarget && path.Target != "" {
		return "", &MalformedDescriptorError{
			Reason: "symlink target set without the symlink suffix",
		}
	}

	escaped := make([]string, 0, len(path.Segments))
	for _, segment := range path.Segments {
		escaped = append(escaped, EscapeField(segment))
	}

	result := strings.Join(escaped, "/")

	// The root directory is the canonical ["", ""], which joins to
	// "/". A segment list that joins to nothing has no rendering that
	// decodes back to the same descriptor.
	if result == "" {
		return "", &MalformedDescriptorError{
			Reason: "path has no segments",
		}
	}
	if path.Stream != "" {
		result += ":" + EscapeField(path.Stream)
	}

	switch path.Suffix {
	case SuffixSymlinkTarget:
		result += symlinkSeparator + EscapeField(path.Target)
	case SuffixFileName:
		result += filenameSuffix
	}
	return result, nil
}

// parsePath decomposes the raw (still escaped) name field. The
// structural characters - the '/' between segments, the ':' before a
// stream name and the two suffix markers - are exactly the unescaped
// occurrences; everything else must be escaped data, otherwise
// re-encoding could not reproduce the input bytes.
func parsePath(raw string) (EntryPath, error) {
	result := EntryPath{}
	if raw == "" {
		return result, errors.New("empty name field")
	}

	// The suffix markers contain no reserved characters so a literal
	// suffix-looking name is inherently ambiguous; the marker reading
	// wins, matching the writer's composition order.
	if strings.HasSuffix(raw, filenameSuffix) {
		result.Suffix = SuffixFileName
		raw = raw[:len(raw)-len(filenameSuffix)]

	} else if idx := strings.Index(raw, symlinkSeparator); idx >= 0 {
		target_raw := raw[idx+len(symlinkSeparator):]
		if containsUnescaped(target_raw, '/') ||
			containsUnescaped(target_raw, ':') {
			return result, errors.New(
				"unescaped separator in symlink target")
		}

		target, err := UnescapeField(target_raw)
		if err != nil {
			return result, err
		}
		result.Suffix = SuffixSymlinkTarget
		result.Target = target
		raw = raw[:idx]
	}

	parts := splitUnescaped(raw, ':')
	switch len(parts) {
	case 1:
	case 2:
		if containsUnescaped(parts[1], '/') {
			return result, errors.New(
				"unescaped path separator in data stream name")
		}
		stream, err := UnescapeField(parts[1])
		if err != nil {
			return result, err
		}
		result.Stream = stream
	default:
		return result, errors.New(
			"name field contains more than one unescaped ':'")
	}

	if parts[0] == "" {
		return result, errors.New("empty path in name field")
	}

	for _, segment := range splitUnescaped(parts[0], '/') {
		value, err := UnescapeField(segment)
		if err != nil {
			return result, err
		}
		result.Segments = append(result.Segments, value)
	}
	return result, nil
}

func formatOptionalUint(value *uint64) string {
	if value == nil {
		return ""
	}
	return strconv.FormatUint(*value, 10)
}

func parseOptionalUint(text string) (*uint64, error) {
	if text == "" {
		return nil, nil
	}
	if !isCanonicalUint(text) {
		return nil, fmt.Errorf("not a decimal integer: %q", text)
	}
	value, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return nil, err
	}
	return &value, nil
}

func encodeTimestamp(value *TimeValue) (string, error) {
	if value == nil {
		return "", nil
	}
	if value.Fraction != "" && !isDigits(value.Fraction) {
		return "", &MalformedDescriptorError{
			Reason: fmt.Sprintf(
				"timestamp fraction must be decimal digits, got %q",
				value.Fraction),
		}
	}
	return value.String(), nil
}
