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
	"github.com/cloverkit/cartimport/curated"
	"github.com/cloverkit/cartimport/ines"
	"github.com/cloverkit/cartimport/logger"
)

// OutOfRangeError is returned when a patch does not fit inside the payload.
const OutOfRangeError = "patch: out of range (offset %#x, %d bytes): payload is %d bytes"

// ApplyRaw writes the record's data to a copy of the iNES file data. The data
// is not parsed and so ApplyRaw() can be used before the file has been
// checked for validity. The data must at least be long enough for the header.
func ApplyRaw(data []byte, rec Record) ([]byte, error) {
	payload := len(data) - ines.HeaderSize
	if payload < 0 {
		payload = 0
	}

	if rec.Offset < 0 || rec.Offset+len(rec.Data) > payload {
		return nil, curated.Errorf(OutOfRangeError, rec.Offset, len(rec.Data), payload)
	}

	d := make([]byte, len(data))
	copy(d, data)
	copy(d[ines.HeaderSize+rec.Offset:], rec.Data)

	logger.Logf(logger.Allow, "patch", "applied %s", rec)

	return d, nil
}

// Apply the record to the image and return a new image. The original image
// is unchanged. The new image is parsed from the patched data but it is not
// corrected.
func Apply(img *ines.Image, rec Record) (*ines.Image, error) {
	d, err := ApplyRaw(img.Serialise(), rec)
	if err != nil {
		return nil, err
	}

	p, err := ines.Parse(d)
	if err != nil {
		return nil, curated.Errorf("patch: %v", err)
	}

	return p, nil
}
