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

package cartridgeloader

import (
	"crypto/sha1"
	"fmt"
	"hash/crc32"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/cloverkit/cartimport/curated"
)

// LoadError is returned by Load() for any failure.
const LoadError = "cartridgeloader: %v"

// Loader is used to specify the cartridge file to import.
type Loader struct {
	// filename of cartridge to load.
	Filename string

	// expected SHA-1 of the file. empty string indicates that the hash is
	// unknown and need not be validated. after a load operation the value
	// will be the hash of the loaded data
	Hash string

	// CRC-32 of the file after a load operation
	Checksum uint32

	// copy of the loaded data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
// A "file" URL is converted to a plain path.
func NewLoader(filename string) Loader {
	if u, err := url.Parse(filename); err == nil && u.Scheme == "file" {
		filename = u.Path
	}
	return Loader{
		Filename: filename,
	}
}

// ShortName returns a shortened version of the Loader filename. The
// directory and file extension are removed.
func (cl Loader) ShortName() string {
	shortCartName := filepath.Base(cl.Filename)
	shortCartName = strings.TrimSuffix(shortCartName, filepath.Ext(cl.Filename))
	return shortCartName
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// Load the cartridge data. Calling Load() on a Loader that has already been
// loaded does nothing.
func (cl *Loader) Load() error {
	if cl.HasLoaded() {
		return nil
	}

	// a name that parses as a URL is only treated as one if no such file
	// exists. windows paths ("C:\roms\game.nes") parse as URLs with a single
	// letter scheme so those are always allowed
	if _, err := os.Stat(cl.Filename); err != nil {
		if u, err := url.Parse(cl.Filename); err == nil && len(u.Scheme) > 1 && u.Scheme != "file" {
			return curated.Errorf(LoadError, fmt.Sprintf("unsupported URL scheme (%s)", u.Scheme))
		}
	}

	data, err := os.ReadFile(cl.Filename)
	if err != nil {
		return curated.Errorf(LoadError, err)
	}

	if len(data) == 0 {
		return curated.Errorf(LoadError, fmt.Sprintf("empty file (%s)", cl.Filename))
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if cl.Hash != "" && !strings.EqualFold(cl.Hash, hash) {
		return curated.Errorf(LoadError, "unexpected hash value")
	}

	cl.Data = data
	cl.Hash = hash
	cl.Checksum = crc32.ChecksumIEEE(data)

	return nil
}
