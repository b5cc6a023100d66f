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

package database

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/cloverkit/cartimport/curated"
)

// Activity is used to specify the general activity of what will be occurring
// during the database session.
type Activity int

// Valid activities: the "higher level" activities inherit the abilities of
// the activities further down the list.
const (
	// Modifying implies Reading.
	ActivityReading Activity = iota

	// Creating implies Modifying (which in turn implies Reading).
	ActivityModifying

	ActivityCreating
)

// NotAvailable is returned by StartSession() when the database file cannot
// be opened.
const NotAvailable = "database: file not available (%v)"

// Session keeps track of a database session.
type Session struct {
	dbPath   string
	activity Activity

	entries    map[int]Entry
	entryTypes map[string]Deserialiser
}

// StartSession starts/initialises a new DB session. The init function is
// called before the file is read so that entry types can be registered.
func StartSession(path string, activity Activity, init func(*Session) error) (*Session, error) {
	db := &Session{
		dbPath:     path,
		activity:   activity,
		entries:    make(map[int]Entry),
		entryTypes: make(map[string]Deserialiser),
	}

	if init != nil {
		if err := init(db); err != nil {
			return nil, curated.Errorf("database: %v", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && activity == ActivityCreating {
			return db, nil
		}
		return nil, curated.Errorf(NotAvailable, err)
	}

	if err := db.parse(string(data)); err != nil {
		return nil, err
	}

	return db, nil
}

// EndSession closes the database. Changes are written to the file if
// commitChanges is true.
func (db *Session) EndSession(commitChanges bool) error {
	if !commitChanges {
		return nil
	}

	if db.activity == ActivityReading {
		return curated.Errorf("database: cannot commit to a read-only database")
	}

	f, err := os.Create(db.dbPath)
	if err != nil {
		return curated.Errorf("database: %v", err)
	}

	err = db.write(f)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = cerr
	}
	if err != nil {
		return curated.Errorf("database: %v", err)
	}

	return nil
}

func (db *Session) write(w io.Writer) error {
	for _, key := range db.SortedKeyList() {
		ent := db.entries[key]

		ser, err := ent.Serialise()
		if err != nil {
			return err
		}

		s := strings.Builder{}
		s.WriteString(recordHeader(key, ent.EntryType()))
		for _, f := range ser {
			s.WriteString(fieldSep)
			s.WriteString(f)
		}
		s.WriteString(entrySep)

		if _, err := io.WriteString(w, s.String()); err != nil {
			return err
		}
	}
	return nil
}

func (db *Session) parse(data string) error {
	lines := strings.Split(data, entrySep)

	for i, l := range lines {
		l = strings.TrimSpace(l)
		if len(l) == 0 || strings.HasPrefix(l, commentLeader) {
			continue
		}

		fields := strings.Split(l, fieldSep)
		if len(fields) < numLeaderFields {
			return curated.Errorf("database: missing entry type at line %d", i+1)
		}

		key, err := strconv.Atoi(strings.TrimSpace(fields[leaderFieldKey]))
		if err != nil {
			return curated.Errorf("database: invalid key (%s) at line %d", fields[leaderFieldKey], i+1)
		}

		if _, ok := db.entries[key]; ok {
			return curated.Errorf("database: duplicate key (%d) at line %d", key, i+1)
		}

		id := strings.TrimSpace(fields[leaderFieldID])
		des, ok := db.entryTypes[id]
		if !ok {
			return curated.Errorf("database: unrecognised entry type (%s) at line %d", id, i+1)
		}

		ent, err := des(fields[numLeaderFields:])
		if err != nil {
			return curated.Errorf("database: line %d: %v", i+1, err)
		}

		db.entries[key] = ent
	}

	return nil
}
