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

package cartridgeloader_test

import (
	"errors"
	"hash/crc32"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/cloverkit/cartimport/cartridgeloader"
	"github.com/cloverkit/cartimport/curated"
	"github.com/cloverkit/cartimport/test"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Some Game (USA).nes")
	data := []byte("NES\x1a some cartridge data")
	test.DemandSuccess(t, os.WriteFile(path, data, 0o600))

	cl := cartridgeloader.NewLoader(path)
	test.ExpectFailure(t, cl.HasLoaded())
	test.ExpectEquality(t, cl.ShortName(), "Some Game (USA)")

	test.DemandSuccess(t, cl.Load())
	test.ExpectSuccess(t, cl.HasLoaded())
	test.ExpectEquality(t, string(cl.Data), string(data))
	test.ExpectEquality(t, cl.Checksum, crc32.ChecksumIEEE(data))
	test.ExpectEquality(t, len(cl.Hash), 40)

	// expected hash
	good := cartridgeloader.NewLoader(path)
	good.Hash = cl.Hash
	test.ExpectSuccess(t, good.Load())

	bad := cartridgeloader.NewLoader(path)
	bad.Hash = "0000000000000000000000000000000000000000"
	test.ExpectSuccess(t, curated.Is(bad.Load(), cartridgeloader.LoadError))
}

func TestFileURL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.nes")
	test.DemandSuccess(t, os.WriteFile(path, []byte{0x01}, 0o600))

	cl := cartridgeloader.NewLoader("file://" + filepath.ToSlash(path))
	test.ExpectSuccess(t, cl.Load())
}

func TestLoadErrors(t *testing.T) {
	cl := cartridgeloader.NewLoader(filepath.Join(t.TempDir(), "missing.nes"))
	err := cl.Load()
	test.ExpectSuccess(t, curated.Is(err, cartridgeloader.LoadError))
	test.ExpectSuccess(t, errors.Is(err, fs.ErrNotExist))

	cl = cartridgeloader.NewLoader("https://example.com/game.nes")
	test.ExpectSuccess(t, curated.Is(cl.Load(), cartridgeloader.LoadError))

	path := filepath.Join(t.TempDir(), "empty.nes")
	test.DemandSuccess(t, os.WriteFile(path, nil, 0o600))
	cl = cartridgeloader.NewLoader(path)
	test.ExpectSuccess(t, curated.Is(cl.Load(), cartridgeloader.LoadError))
}

// chdir changes the working directory for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(dir))
	t.Cleanup(func() {
		os.Chdir(wd)
	})
}

func TestColonInFilename(t *testing.T) {
	chdir(t, t.TempDir())
	test.DemandSuccess(t, os.WriteFile("Zelda:1987.nes", []byte{0x01}, 0o600))

	cl := cartridgeloader.NewLoader("Zelda:1987.nes")
	test.ExpectSuccess(t, cl.Load())
	test.ExpectEquality(t, cl.ShortName(), "Zelda:1987")

	// the same name is treated as a URL if there is no such file
	cl = cartridgeloader.NewLoader("Metroid:1986.nes")
	err := cl.Load()
	test.ExpectSuccess(t, curated.Is(err, cartridgeloader.LoadError))
	test.ExpectFailure(t, errors.Is(err, fs.ErrNotExist))
}

func TestIsCartridgeFile(t *testing.T) {
	test.ExpectSuccess(t, cartridgeloader.IsCartridgeFile("game.nes"))
	test.ExpectSuccess(t, cartridgeloader.IsCartridgeFile("GAME.NES"))
	test.ExpectFailure(t, cartridgeloader.IsCartridgeFile("game.fds"))
	test.ExpectFailure(t, cartridgeloader.IsCartridgeFile("nes"))
}
