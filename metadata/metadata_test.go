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

package metadata_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cloverkit/cartimport/curated"
	"github.com/cloverkit/cartimport/logger"
	"github.com/cloverkit/cartimport/metadata"
	"github.com/cloverkit/cartimport/test"
)

const nesCartDB = `<?xml version="1.0" encoding="UTF-8"?>
<database version="1.0">
	<game name="Broken_Game" players="1" date="1990" publisher="Nobody" region="USA">
		<cartridge crc="NOTHEX"/>
	</game>
	<game name="Super Mario Bros." players="2" date="1985-10-18" publisher="Nintendo" region="USA">
		<cartridge crc="3337EC46"/>
		<cartridge crc="d445f698"/>
	</game>
	<game name="Solo" players="1" date="1987-05" publisher="Konami" region="Japan">
		<cartridge crc="0000ABCD"/>
	</game>
</database>
`

const noIntro = `<?xml version="1.0"?>
<datafile>
	<header>
		<name>Nintendo - Nintendo Entertainment System</name>
	</header>
	<game name="Tetris (USA)">
		<description>Tetris (USA)</description>
		<rom name="Tetris (USA).nes" size="49168" crc="6d72c53a"/>
	</game>
</datafile>
`

func writeFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "db.xml")
	test.DemandSuccess(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func loggedWarning(tag string) bool {
	w := &strings.Builder{}
	logger.Write(w)
	return strings.Contains(w.String(), tag+": skipping")
}

func TestNesCartDB(t *testing.T) {
	logger.Clear()

	c := metadata.Load(writeFile(t, nesCartDB))
	test.ExpectEquality(t, c.Len(), 3)

	// the game with the bad crc was skipped with a warning
	test.ExpectSuccess(t, loggedWarning("metadata"))

	e, ok := c.Lookup(0x3337ec46)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, e.Title, "Super Mario Bros.")
	test.ExpectEquality(t, e.Players, 2)
	test.ExpectEquality(t, e.ReleaseDate, "1985-10-18")
	test.ExpectEquality(t, e.Publisher, "Nintendo")
	test.ExpectEquality(t, e.Region, "USA")

	// second cartridge of the same game
	e, ok = c.Lookup(0xd445f698)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, e.Title, "Super Mario Bros.")

	e, ok = c.Lookup(0xabcd)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, e.Players, 1)

	_, ok = c.Lookup(0x12345678)
	test.ExpectFailure(t, ok)
}

func TestOneGoodOneBad(t *testing.T) {
	c := metadata.Load(writeFile(t, `<database>
		<game name="bad"><cartridge crc="xyz"/></game>
		<game name="good" players="1"><cartridge crc="00000001"/></game>
	</database>`))
	test.ExpectEquality(t, c.Len(), 1)
	e, ok := c.Lookup(1)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, e.Title, "good")
}

func TestNoIntro(t *testing.T) {
	c := metadata.Load(writeFile(t, noIntro))
	test.ExpectEquality(t, c.Len(), 1)

	e, ok := c.Lookup(0x6d72c53a)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, e.Title, "Tetris (USA)")
	test.ExpectEquality(t, e.Players, 0)
}

func TestUnusableFiles(t *testing.T) {
	// missing file
	c := metadata.Load(filepath.Join(t.TempDir(), "missing.xml"))
	test.DemandInequality(t, c, nil)
	test.ExpectEquality(t, c.Len(), 0)

	// truncated XML
	c = metadata.Load(writeFile(t, nesCartDB[:len(nesCartDB)/2]))
	test.ExpectEquality(t, c.Len(), 0)

	// not a game database
	c = metadata.Load(writeFile(t, `<html><body></body></html>`))
	test.ExpectEquality(t, c.Len(), 0)

	// empty file
	c = metadata.Load(writeFile(t, ``))
	test.ExpectEquality(t, c.Len(), 0)
}

func TestNilCache(t *testing.T) {
	var c *metadata.Cache
	test.ExpectEquality(t, c.Len(), 0)
	_, ok := c.Lookup(0)
	test.ExpectFailure(t, ok)
}

func TestDuplicateChecksum(t *testing.T) {
	c := metadata.NewCache(
		metadata.Entry{Checksum: 1, Title: "first"},
		metadata.Entry{Checksum: 1, Title: "second"},
	)
	test.ExpectEquality(t, c.Len(), 1)
	e, _ := c.Lookup(1)
	test.ExpectEquality(t, e.Title, "second")
}

func TestReadFormatError(t *testing.T) {
	for _, doc := range []string{"", "<games><game name=\"x\"/></games>", "<?xml version=\"1.0\"?>"} {
		_, err := metadata.Read(strings.NewReader(doc))
		test.ExpectSuccess(t, curated.Is(err, metadata.FormatError), doc)
	}
}
