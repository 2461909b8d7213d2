package bodyfile

import "github.com/Velocidex/ordereddict"

// Describe returns the decoded record in bodyfile column order, ready
// for JSON serialization. Absent uid, gid and timestamps come out as
// nulls to keep them distinct from zero values.
func (self *FileEntryDescriptor) Describe() *ordereddict.Dict {
	result := ordereddict.NewDict().
		Set("md5", self.MD5.String()).
		Set("name", self.Path.String()).
		Set("inode", self.Inode.String()).
		Set("mode_as_string", self.Mode.String())

	setOptionalUint(result, "uid", self.UID)
	setOptionalUint(result, "gid", self.GID)

	result.Set("size", self.Size)

	setOptionalTime(result, "atime", self.Atime)
	setOptionalTime(result, "mtime", self.Mtime)
	setOptionalTime(result, "ctime", self.Ctime)
	setOptionalTime(result, "crtime", self.Crtime)

	return result
}

func setOptionalUint(dict *ordereddict.Dict, key string, value *uint64) {
	if value == nil {
		dict.Set(key, nil)
		return
	}
	dict.Set(key, *value)
}

func setOptionalTime(dict *ordereddict.Dict, key string, value *TimeValue) {
	if value == nil {
		dict.Set(key, nil)
		return
	}
	dict.Set(key, value.String())
}
