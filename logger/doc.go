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

// Package logger is the central logging facility. Entries are tagged strings
// and are held in memory, in a capped list, rather than being written
// directly to a file or terminal. The list can be written to an io.Writer
// at any time with Write(). WriteRecent() writes only the entries made since
// its previous call. The SetEcho() function causes new entries to be written
// to an io.Writer as they are made.
//
// Every call to Log() and Logf() takes a Permission argument. The Allow value
// should be used in most cases. Other implementations of the Permission
// interface can suppress logging when the environment requires it.
//
// Consecutive identical entries are not repeated in the log. Instead the
// entry is marked as having been repeated.
//
// The package level functions use a single central log. Separate instances of
// the log can be created with NewLogger(), which is mostly useful for testing.
package logger
