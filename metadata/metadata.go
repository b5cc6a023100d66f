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

package metadata

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cloverkit/cartimport/curated"
	"github.com/cloverkit/cartimport/logger"
)

// Entry is the information about a single cartridge.
type Entry struct {
	Checksum uint32
	Title    string

	// zero if the number of players is not known
	Players int

	ReleaseDate string
	Publisher   string
	Region      string
}

func (e Entry) String() string {
	s := fmt.Sprintf("%08X %s", e.Checksum, e.Title)
	if e.Publisher != "" {
		s = fmt.Sprintf("%s [%s]", s, e.Publisher)
	}
	if e.ReleaseDate != "" {
		s = fmt.Sprintf("%s (%s)", s, e.ReleaseDate)
	}
	return s
}

// Cache is a lookup table of Entry keyed by checksum.
type Cache struct {
	entries map[uint32]Entry
}

// NewCache creates a cache from a list of entries. If more than one entry has
// the same checksum then the last one is used.
func NewCache(entries ...Entry) *Cache {
	c := &Cache{
		entries: make(map[uint32]Entry, len(entries)),
	}
	for _, e := range entries {
		c.entries[e.Checksum] = e
	}
	return c
}

// Lookup the entry for the checksum.
func (c *Cache) Lookup(crc uint32) (Entry, bool) {
	if c == nil {
		return Entry{}, false
	}
	e, ok := c.entries[crc]
	return e, ok
}

// Len returns the number of entries in the cache.
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// Load the database at path. The returned cache is never nil.
func Load(path string) *Cache {
	f, err := os.Open(path)
	if err != nil {
		logger.Log(logger.Allow, "metadata", err)
		return NewCache()
	}
	defer f.Close()

	c, err := Read(f)
	if err != nil {
		logger.Logf(logger.Allow, "metadata", "database not loaded: %s: %v", path, err)
		return NewCache()
	}

	logger.Logf(logger.Allow, "metadata", "%d entries loaded from %s", c.Len(), path)

	return c
}

// FormatError is returned by Read() when the document is not a recognised
// metadata database.
const FormatError = "metadata: format error: %v"

type xmlROM struct {
	CRC string `xml:"crc,attr"`
}

type xmlGame struct {
	Name      string `xml:"name,attr"`
	Players   string `xml:"players,attr"`
	Date      string `xml:"date,attr"`
	Publisher string `xml:"publisher,attr"`
	Region    string `xml:"region,attr"`

	// NesCartDB
	Cartridges []xmlROM `xml:"cartridge"`

	// No-Intro
	ROMs []xmlROM `xml:"rom"`
}

// Read a database from an io.Reader. An error is returned if the XML is
// malformed or if the root element is not recognised. Games with a malformed
// checksum are skipped.
func Read(r io.Reader) (*Cache, error) {
	c := NewCache()
	dec := xml.NewDecoder(r)

	root := ""

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		if root == "" {
			root = se.Name.Local
			if root != "database" && root != "datafile" {
				return nil, curated.Errorf(FormatError, fmt.Sprintf("unrecognised root element (%s)", root))
			}
			continue
		}

		if se.Name.Local != "game" {
			if err := dec.Skip(); err != nil {
				return nil, err
			}
			continue
		}

		var g xmlGame
		if err := dec.DecodeElement(&g, &se); err != nil {
			return nil, err
		}

		c.add(root, g)
	}

	if root == "" {
		return nil, curated.Errorf(FormatError, "no root element")
	}

	return c, nil
}

func (c *Cache) add(layout string, g xmlGame) {
	roms := g.ROMs
	players := 0

	if layout == "database" {
		roms = g.Cartridges
		if g.Players == "1" {
			players = 1
		} else {
			players = 2
		}
	}

	for _, rom := range roms {
		crc, err := strconv.ParseUint(strings.TrimSpace(rom.CRC), 16, 32)
		if err != nil {
			logger.Logf(logger.Allow, "metadata", "skipping %q: bad crc (%s)", g.Name, rom.CRC)
			continue
		}

		c.entries[uint32(crc)] = Entry{
			Checksum:    uint32(crc),
			Title:       g.Name,
			Players:     players,
			ReleaseDate: g.Date,
			Publisher:   g.Publisher,
			Region:      g.Region,
		}
	}
}
