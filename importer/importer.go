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

// Package importer joins the parser, the patch registry, the compatibility
// gate and the metadata cache into the sequence of steps required to import
// a single cartridge file.
//
// An Importer is created once for a batch of files. The registry and the
// cache are read-only and each call to Import() is independent of any other
// call. The gate is the only shared state that can change during a batch,
// and only when its policy is AskCaller.
package importer

import (
	"github.com/cloverkit/cartimport/autofill"
	"github.com/cloverkit/cartimport/compatibility"
	"github.com/cloverkit/cartimport/curated"
	"github.com/cloverkit/cartimport/genie"
	"github.com/cloverkit/cartimport/ines"
	"github.com/cloverkit/cartimport/logger"
	"github.com/cloverkit/cartimport/metadata"
	"github.com/cloverkit/cartimport/patch"
)

// the number of save slots suggested for battery backed cartridges.
const batterySaveCount = 3

// Importer imports cartridge files.
type Importer struct {
	Registry *patch.Registry
	Cache    *metadata.Cache
	Gate     *compatibility.Gate
}

// NewImporter is the preferred method of initialisation for the Importer
// type. Any of the arguments can be nil. A nil registry or cache is treated
// as being empty and a nil gate rejects all unsupported cartridges.
func NewImporter(reg *patch.Registry, cache *metadata.Cache, gate *compatibility.Gate) *Importer {
	if reg == nil {
		reg = patch.NewRegistry()
	}
	if cache == nil {
		cache = metadata.NewCache()
	}
	if gate == nil {
		gate = compatibility.NewGate(compatibility.AlwaysReject, nil)
	}
	return &Importer{
		Registry: reg,
		Cache:    cache,
		Gate:     gate,
	}
}

// Result of a successful import.
type Result struct {
	Filename string

	// the corrected and patched image
	Image *ines.Image

	// the image in the iNES file format
	Data []byte

	// checksum of Image
	Checksum uint32

	Verdict compatibility.Verdict

	// whether the header was changed by correction
	Corrected bool

	// the patch that was applied. nil if no patch was applied
	Patch *patch.Record

	// suggested number of save slots
	SaveCount int

	// suggested fields from the metadata cache. nil if the cartridge is not
	// in the cache
	Autofill *autofill.Fields
}

// Import the data read from filename. The filename is used for patch
// matching and as a hint for the compatibility gate. It does not need to
// refer to a file that exists.
//
// If the compatibility gate rejects the cartridge the Result is returned
// along with the error, so that the caller can report the Verdict.
func (imp *Importer) Import(filename string, data []byte) (*Result, error) {
	res := &Result{
		Filename: filename,
	}

	if rec, ok := imp.Registry.ByFilename(filename); ok {
		d, err := patch.ApplyRaw(data, rec)
		if err != nil {
			return nil, curated.Errorf("importer: %v", err)
		}
		data = d
		res.Patch = &rec
	}

	img, err := ines.Parse(data)
	if err != nil {
		return nil, curated.Errorf("importer: %v", err)
	}
	res.Corrected = img.Correct()

	// the checksum can change when the image is corrected so the checksum
	// patch can only be looked for after correction
	if res.Patch == nil {
		if rec, ok := imp.Registry.ByChecksum(img.Checksum()); ok {
			img, err = patch.Apply(img, rec)
			if err != nil {
				return nil, curated.Errorf("importer: %v", err)
			}
			if img.Correct() {
				res.Corrected = true
			}
			res.Patch = &rec
		}
	}

	if res.Corrected {
		logger.Logf(logger.Allow, "importer", "header corrected: %s", filename)
	}

	res.Image = img
	res.Checksum = img.Checksum()

	res.Verdict, err = imp.Gate.Check(img, filename)
	if err != nil {
		return res, curated.Errorf("importer: %v", err)
	}

	res.Data = img.Serialise()

	if img.HasBattery() {
		res.SaveCount = batterySaveCount
	}

	if f, ok := autofill.Lookup(imp.Cache, res.Checksum); ok {
		res.Autofill = &f
	}

	return res, nil
}

// ApplyCheats decodes the list of Game Genie codes and applies them to a copy
// of the image. Codes are applied in order. An empty list returns a copy of
// the image.
func ApplyCheats(img *ines.Image, codes string) (*ines.Image, error) {
	l, err := genie.DecodeList(codes)
	if err != nil {
		return nil, curated.Errorf("importer: %v", err)
	}

	cp := img.Copy()
	if len(l) == 0 {
		return cp, nil
	}

	cp.PRG, err = genie.ApplyAll(img.PRG, img.Family(), l)
	if err != nil {
		return nil, curated.Errorf("importer: %v", err)
	}

	logger.Logf(logger.Allow, "importer", "%d cheat codes applied", len(l))

	return cp, nil
}
