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

// Package database is a very simple way of storing structured and arbitrary
// entry types in a flat text file. One entry per line, fields separated by
// commas. Blank lines and lines starting with '#' are ignored.
//
// Use of a database requires starting a "session". We do this with the
// StartSession() function, coupled with an EndSession() once we're done. For
// example (error handling removed for clarity):
//
//	db, _ := database.StartSession(dbPath, database.ActivityCreating, initDBSession)
//	defer db.EndSession(true)
//
// The first argument is the path to the database file on the local disk. The
// second argument is a description of the type of activity that will be
// happening during the session. ActivityCreating will create the file if it
// does not already exist. If the database already exists ActivityCreating is
// treated the same as ActivityModifying. ActivityReading never writes to the
// file and a missing file results in a NotAvailable error.
//
// The third argument is the initialisation function. It is used to tell the
// session what entry types it may find in the file:
//
//	func initDBSession(db *database.Session) error {
//		return db.RegisterEntryType("checksum", deserialiseChecksum)
//	}
//
// A deserialiser takes the fields of an entry, not including the key and
// entry type, and returns a new Entry. An error from a deserialiser causes
// StartSession() to fail.
//
// Entries are stored in the file as:
//
//	<key>,<entry type>,<field>,<field>,...
//
// The key is a decimal number that is unique within the file.
package database
