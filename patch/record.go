// This file is part of Cartimport.
//
// Cartimport is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Cartimport is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Cartimport.  If not, see <https://www.gnu.org/licenses/>.

package patch

import (
	"encoding/hex"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cloverkit/cartimport/curated"
	"github.com/cloverkit/cartimport/database"
)

// BadPatternError is returned by NewFilenameRecord() for a malformed glob.
const BadPatternError = "patch: bad filename pattern (%s): %v"

// MalformedEntryError is returned when an entry in a registry file can not be
// decoded. The values are the Match and a description of the problem.
const MalformedEntryError = "patch: malformed %s entry: %v"

// Match is the method used to identify the cartridge a patch is for.
type Match int

// List of valid Match values.
const (
	MatchChecksum Match = iota
	MatchFilename
)

func (m Match) String() string {
	switch m {
	case MatchChecksum:
		return "checksum"
	case MatchFilename:
		return "filename"
	}
	return "unknown"
}

// Record is a single patch. Records are not changed once they have been
// created.
type Record struct {
	Match Match

	// checksum in upper case hexadecimal or a filename glob. filename globs
	// are matched case insensitively
	Key string

	// offset into the payload of the iNES file
	Offset int
	Data   []byte

	Notes string
}

// NewChecksumRecord creates a record for the cartridge with the content
// checksum.
func NewChecksumRecord(crc uint32, offset int, data []byte, notes string) Record {
	return Record{
		Match:  MatchChecksum,
		Key:    fmt.Sprintf("%08X", crc),
		Offset: offset,
		Data:   append([]byte(nil), data...),
		Notes:  notes,
	}
}

// NewFilenameRecord creates a record for files with a name matching the glob.
// Returns an error if the glob is malformed.
func NewFilenameRecord(glob string, offset int, data []byte, notes string) (Record, error) {
	if _, err := filepath.Match(glob, ""); err != nil {
		return Record{}, curated.Errorf(BadPatternError, glob, err)
	}
	return Record{
		Match:  MatchFilename,
		Key:    glob,
		Offset: offset,
		Data:   append([]byte(nil), data...),
		Notes:  notes,
	}, nil
}

func (rec Record) String() string {
	s := fmt.Sprintf("%s %s: %d bytes at %#x", rec.Match, rec.Key, len(rec.Data), rec.Offset)
	if rec.Notes != "" {
		s = fmt.Sprintf("%s (%s)", s, rec.Notes)
	}
	return s
}

// matchFilename compares the base name of the file with the record's glob.
func (rec Record) matchFilename(filename string) bool {
	if rec.Match != MatchFilename {
		return false
	}
	name := strings.ToLower(filepath.Base(filename))
	ok, _ := filepath.Match(strings.ToLower(rec.Key), name)
	return ok
}

func (rec Record) matchChecksum(crc uint32) bool {
	if rec.Match != MatchChecksum {
		return false
	}
	return rec.Key == fmt.Sprintf("%08X", crc)
}

// the database entry for a record. the entry type is the Match value.
type entry struct {
	rec Record
}

const (
	fieldKey int = iota
	fieldOffset
	fieldData
	fieldNotes
	numFields
)

func deserialiser(m Match) database.Deserialiser {
	return func(fields database.SerialisedEntry) (database.Entry, error) {
		if len(fields) < numFields-1 {
			return nil, curated.Errorf(MalformedEntryError, m, "too few fields")
		}

		offset, err := strconv.ParseUint(strings.TrimSpace(fields[fieldOffset]), 16, 32)
		if err != nil {
			return nil, curated.Errorf(MalformedEntryError, m, fmt.Sprintf("bad offset (%s)", fields[fieldOffset]))
		}

		data, err := hex.DecodeString(strings.TrimSpace(fields[fieldData]))
		if err != nil || len(data) == 0 {
			return nil, curated.Errorf(MalformedEntryError, m, fmt.Sprintf("bad data (%s)", fields[fieldData]))
		}

		// the notes field is the last field and is allowed to contain the
		// field separator
		var notes string
		if len(fields) > fieldNotes {
			notes = strings.TrimSpace(strings.Join(fields[fieldNotes:], ","))
		}

		key := strings.TrimSpace(fields[fieldKey])

		switch m {
		case MatchChecksum:
			crc, err := strconv.ParseUint(key, 16, 32)
			if err != nil {
				return nil, curated.Errorf(MalformedEntryError, m, fmt.Sprintf("bad checksum (%s)", key))
			}
			return entry{rec: NewChecksumRecord(uint32(crc), int(offset), data, notes)}, nil
		case MatchFilename:
			rec, err := NewFilenameRecord(key, int(offset), data, notes)
			if err != nil {
				return nil, curated.Errorf(MalformedEntryError, m, err)
			}
			return entry{rec: rec}, nil
		}

		return nil, curated.Errorf(MalformedEntryError, m, "unknown entry type")
	}
}

// EntryType implements the database.Entry interface.
func (e entry) EntryType() string {
	return e.rec.Match.String()
}

// String implements the database.Entry interface.
func (e entry) String() string {
	return e.rec.String()
}

// Serialise implements the database.Entry interface.
func (e entry) Serialise() (database.SerialisedEntry, error) {
	if strings.ContainsAny(e.rec.Key, ",\n") {
		return nil, curated.Errorf("patch: key cannot contain commas or newlines (%s)", e.rec.Key)
	}
	return database.SerialisedEntry{
		e.rec.Key,
		fmt.Sprintf("%04x", e.rec.Offset),
		hex.EncodeToString(e.rec.Data),
		strings.ReplaceAll(e.rec.Notes, "\n", " "),
	}, nil
}

// CleanUp implements the database.Entry interface.
func (e entry) CleanUp() error {
	// no cleanup necessary
	return nil
}

func initDBSession(db *database.Session) error {
	for _, m := range []Match{MatchChecksum, MatchFilename} {
		if err := db.RegisterEntryType(m.String(), deserialiser(m)); err != nil {
			return err
		}
	}
	return nil
}
