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
	"errors"
	"io"
	"io/fs"

	"github.com/cloverkit/cartimport/curated"
	"github.com/cloverkit/cartimport/database"
	"github.com/cloverkit/cartimport/ines"
	"github.com/cloverkit/cartimport/logger"
)

// Registry is an ordered list of patch records. A Registry is not changed
// after it has been created and can be shared between goroutines.
type Registry struct {
	records []Record
}

// NewRegistry creates a Registry from the list of records. The order of the
// records is preserved.
func NewRegistry(records ...Record) *Registry {
	return &Registry{
		records: append([]Record(nil), records...),
	}
}

// LoadRegistry reads the registry file at path. A missing file is not an
// error and results in an empty registry.
func LoadRegistry(path string) (*Registry, error) {
	db, err := database.StartSession(path, database.ActivityReading, initDBSession)
	if err != nil {
		if curated.Is(err, database.NotAvailable) && errors.Is(err, fs.ErrNotExist) {
			logger.Logf(logger.Allow, "patch", "no registry at %s", path)
			return NewRegistry(), nil
		}
		return nil, curated.Errorf("patch: %v", err)
	}
	defer db.EndSession(false)

	reg := &Registry{}
	if db.NumEntries() > 0 {
		_, err = db.SelectAll(func(e database.Entry) error {
			reg.records = append(reg.records, e.(entry).rec)
			return nil
		})
		if err != nil {
			return nil, curated.Errorf("patch: %v", err)
		}
	}

	logger.Logf(logger.Allow, "patch", "%d patches loaded from %s", reg.Len(), path)

	return reg, nil
}

// AddRecord adds the record to the registry file at path. The file is created
// if it does not exist.
func AddRecord(path string, rec Record) error {
	db, err := database.StartSession(path, database.ActivityCreating, initDBSession)
	if err != nil {
		return curated.Errorf("patch: %v", err)
	}

	if _, err := db.Add(entry{rec: rec}); err != nil {
		return curated.Errorf("patch: %v", err)
	}

	if err := db.EndSession(true); err != nil {
		return curated.Errorf("patch: %v", err)
	}

	return nil
}

// DeleteRecord removes the record with the database key from the registry
// file at path. The keys are those shown by ListRegistry().
func DeleteRecord(path string, key int) error {
	db, err := database.StartSession(path, database.ActivityModifying, initDBSession)
	if err != nil {
		return curated.Errorf("patch: %v", err)
	}

	if err := db.Delete(key); err != nil {
		return curated.Errorf("patch: %v", err)
	}

	if err := db.EndSession(true); err != nil {
		return curated.Errorf("patch: %v", err)
	}

	logger.Logf(logger.Allow, "patch", "deleted entry %03d from %s", key, path)

	return nil
}

// ListRegistry writes the contents of the registry file at path to output,
// one record per line with the database key of each record.
func ListRegistry(path string, output io.Writer) error {
	db, err := database.StartSession(path, database.ActivityReading, initDBSession)
	if err != nil {
		if curated.Is(err, database.NotAvailable) && errors.Is(err, fs.ErrNotExist) {
			_, err = io.WriteString(output, "no patches\n")
			return err
		}
		return curated.Errorf("patch: %v", err)
	}
	defer db.EndSession(false)

	return db.List(output)
}

// Len returns the number of records in the registry.
func (reg *Registry) Len() int {
	return len(reg.records)
}

// ByFilename returns the first record with a glob that matches the filename.
// Only the base name of the file is considered.
func (reg *Registry) ByFilename(filename string) (Record, bool) {
	if filename == "" {
		return Record{}, false
	}
	for _, rec := range reg.records {
		if rec.matchFilename(filename) {
			return rec, true
		}
	}
	return Record{}, false
}

// ByChecksum returns the first record for the content checksum.
func (reg *Registry) ByChecksum(crc uint32) (Record, bool) {
	for _, rec := range reg.records {
		if rec.matchChecksum(crc) {
			return rec, true
		}
	}
	return Record{}, false
}

// Resolve finds the patch for an image. The filename is the name of the file
// before it was parsed and is checked first. The checksum of the image is
// checked second and so the image should have been corrected before calling
// Resolve().
//
// Failure to find a patch is not an error.
func (reg *Registry) Resolve(img *ines.Image, filename string) (Record, bool) {
	if rec, ok := reg.ByFilename(filename); ok {
		return rec, true
	}
	return reg.ByChecksum(img.Checksum())
}
