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

// Package autofill turns a metadata entry into the values that are shown to
// the user when a new game is imported. The text from the metadata database
// is tidied up in the process.
package autofill

import (
	"strings"

	"github.com/cloverkit/cartimport/metadata"
)

// Fields are the suggested values for a newly imported game.
type Fields struct {
	Name         string
	Players      int
	Simultaneous bool
	ReleaseDate  string
	Publisher    string
	Region       string
}

// Fill returns the suggested fields for the metadata entry.
func Fill(e metadata.Entry) Fields {
	return Fields{
		Name:         Name(e.Title),
		Players:      e.Players,
		Simultaneous: e.Players > 1,
		ReleaseDate:  ReleaseDate(e.ReleaseDate),
		Publisher:    strings.ToUpper(strings.TrimSpace(e.Publisher)),
		Region:       strings.TrimSpace(e.Region),
	}
}

// Lookup is a convenience function that looks up the checksum in the cache
// and fills the fields. Returns false if there is no entry for the checksum.
func Lookup(cache *metadata.Cache, crc uint32) (Fields, bool) {
	e, ok := cache.Lookup(crc)
	if !ok {
		return Fields{}, false
	}
	return Fill(e), true
}

// Name replaces underscores with spaces and collapses runs of spaces.
func Name(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	for strings.Contains(s, "  ") {
		s = strings.ReplaceAll(s, "  ", " ")
	}
	return strings.TrimSpace(s)
}

// ReleaseDate pads a partial date to the YYYY-MM-DD form. A year on its own
// becomes the first of January and a year and month becomes the first of
// the month. Other values are returned unchanged.
func ReleaseDate(s string) string {
	s = strings.TrimSpace(s)
	if len(s) == 4 {
		s += "-01"
	}
	if len(s) == 7 {
		s += "-01"
	}
	return s
}
