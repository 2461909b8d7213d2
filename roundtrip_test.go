package bodyfile_test

import (
	"os"
	"strings"
	"testing"

	"github.com/alecthomas/assert"
	"github.com/davecgh/go-spew/spew"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/suite"
	bodyfile "www.velocidex.com/golang/bodyfile"
)

// The corpus in testdata/records.body collects the interesting record
// shapes observed in real timelines: NTFS composite inodes,
// $FILE_NAME attribute lines, symlink targets, alternate data
// streams, escaped delimiters and pre-epoch timestamps. Decoding and
// re-encoding each line must reproduce it byte for byte, which is why
// the golden file is the corpus itself.
type RoundTripTestSuite struct {
	suite.Suite
}

func (self *RoundTripTestSuite) TestReencodeIsByteIdentical() {
	data, err := os.ReadFile("testdata/records.body")
	assert.NoError(self.T(), err)

	result := strings.Builder{}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	for idx, line := range lines {
		entry, err := bodyfile.DecodeRecord(line)
		assert.NoError(self.T(), err, "line %d: %s", idx+1, line)

		encoded, err := bodyfile.EncodeRecord(entry)
		assert.NoError(self.T(), err, spew.Sdump(entry))
		assert.Equal(self.T(), line, encoded)

		result.WriteString(encoded + "\n")
	}

	g := goldie.New(self.T(), goldie.WithFixtureDir("fixtures"))
	g.Assert(self.T(), "TestRoundTrip", []byte(result.String()))
}

func (self *RoundTripTestSuite) TestDecodedFields() {
	data, err := os.ReadFile("testdata/records.body")
	assert.NoError(self.T(), err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")

	// Line 2 is the $FILE_NAME attribute record.
	entry, err := bodyfile.DecodeRecord(lines[1])
	assert.NoError(self.T(), err)
	assert.Equal(self.T(), bodyfile.SuffixFileName, entry.Path.Suffix)
	assert.True(self.T(), entry.Inode.IsNTFS)
	assert.Equal(self.T(), uint64(1234), entry.Inode.MFTEntry)
	assert.Equal(self.T(), uint64(5), entry.Inode.SequenceNumber)
	assert.Equal(self.T(), "2416987", entry.Atime.Fraction)

	// Line 6 carries pre-epoch timestamps.
	entry, err = bodyfile.DecodeRecord(lines[5])
	assert.NoError(self.T(), err)
	assert.True(self.T(), entry.Atime.Negative)
	assert.Equal(self.T(), uint64(1), entry.Atime.Seconds)
	assert.Equal(self.T(), "5", entry.Atime.Fraction)
	assert.Nil(self.T(), entry.Mtime)
	assert.Equal(self.T(), "-86400", entry.Ctime.String())
}

func TestRoundTrip(t *testing.T) {
	suite.Run(t, &RoundTripTestSuite{})
}

func init() {
	spew.Config.DisablePointerAddresses = true
	spew.Config.SortKeys = true
}
