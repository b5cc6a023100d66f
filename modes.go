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

package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/cloverkit/cartimport/autofill"
	"github.com/cloverkit/cartimport/cartridgeloader"
	"github.com/cloverkit/cartimport/compatibility"
	"github.com/cloverkit/cartimport/genie"
	"github.com/cloverkit/cartimport/ines"
	"github.com/cloverkit/cartimport/logger"
	"github.com/cloverkit/cartimport/metadata"
	"github.com/cloverkit/cartimport/modalflag"
	"github.com/cloverkit/cartimport/patch"
	"github.com/cloverkit/cartimport/paths"
)

// the information written to the memviz dot file. the payload segments are
// left out because a node for every byte is not useful.
type infoGraph struct {
	Header   ines.Header
	Family   ines.Family
	Verdict  compatibility.Verdict
	Checksum uint32
	Patch    *patch.Record
}

func info(md *modalflag.Modes, output io.Writer, st styles) error {
	md.NewMode()

	patchesFile := md.AddString("patches", paths.ResourcePath(defaultPatches), "patch registry")
	viz := md.AddBool("memviz", false, "write a graphviz dot file of the cartridge header")
	log := md.AddBool("log", false, "write the log after the report")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("one cartridge file required for %s mode", md)
	}

	cl := cartridgeloader.NewLoader(md.GetArg(0))
	if err := cl.Load(); err != nil {
		return err
	}

	img, err := ines.Parse(cl.Data)
	if err != nil {
		return err
	}

	raw := img.Copy()
	corrected := img.Correct()

	reg, err := patch.LoadRegistry(*patchesFile)
	if err != nil {
		return err
	}
	rec, patched := reg.Resolve(img, cl.Filename)

	verdict := compatibility.Evaluate(img)

	field := func(label string, value string) {
		fmt.Fprintf(output, "%s%s\n", st.label.Render(label), value)
	}

	field("file", st.file.Render(cl.Filename))
	field("file crc", fmt.Sprintf("%08X", cl.Checksum))
	field("file sha1", cl.Hash)
	field("checksum", fmt.Sprintf("%08X", img.Checksum()))
	field("mapper", fmt.Sprintf("%d (%s)", img.Mapper(), img.Family()))
	field("program", fmt.Sprintf("%dK", img.ProgramSize()/1024))
	field("graphics", fmt.Sprintf("%dK", img.GraphicsSize()/1024))
	field("mirroring", img.Mirroring().String())
	field("battery", strconv.FormatBool(img.HasBattery()))
	field("trainer", strconv.FormatBool(img.HasTrainer()))
	field("nes 2.0", strconv.FormatBool(img.Header.IsNES2()))
	if corrected {
		field("corrected", fmt.Sprintf("% 02x", raw.Header[4:]))
	}
	if verdict == compatibility.Supported {
		field("verdict", st.supported.Render(verdict.String()))
	} else {
		field("verdict", st.err.Render(verdict.String()))
	}
	if verdict == compatibility.UnsupportedMapper {
		var l []string
		for _, m := range compatibility.SupportedMappers() {
			l = append(l, strconv.Itoa(int(m)))
		}
		field("supported", strings.Join(l, ", "))
	}
	if patched {
		field("patch", st.patch.Render(rec.String()))
	}

	if *viz {
		g := infoGraph{
			Header:   img.Header,
			Family:   img.Family(),
			Verdict:  verdict,
			Checksum: img.Checksum(),
		}
		if patched {
			g.Patch = &rec
		}

		fn := paths.UniqueFilename("memviz", cl.ShortName()) + ".dot"
		f, err := os.Create(fn)
		if err != nil {
			return err
		}
		memviz.Map(f, &g)
		if err := f.Close(); err != nil {
			return err
		}
		field("memviz", fn)
	}

	if *log {
		fmt.Fprintln(output)
		logger.Write(output)
	}

	return nil
}

func genieMode(md *modalflag.Modes, output io.Writer, st styles) error {
	md.NewMode()

	prgSize := md.AddInt("prg", 0, "program size in KB. shows the offset of each code")
	mapper := md.AddInt("mapper", 0, "mapper number. used with -prg")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) == 0 {
		return fmt.Errorf("codes required for %s mode", md)
	}

	if *mapper < 0 || *mapper > 255 {
		return fmt.Errorf("mapper out of range (%d)", *mapper)
	}

	codes, err := genie.DecodeList(strings.Join(md.RemainingArgs(), " "))
	if err != nil {
		return err
	}

	for _, c := range codes {
		s := fmt.Sprintf("%s address $%04X value $%02X", st.file.Render(genie.Encode(c)), c.CPUAddress(), c.Value)
		if c.HasCompare {
			s = fmt.Sprintf("%s compare $%02X", s, c.Compare)
		}
		if *prgSize > 0 {
			offset, err := genie.Offset(c, *prgSize*1024, ines.FamilyOf(uint8(*mapper)))
			if err != nil {
				s = fmt.Sprintf("%s %s", s, st.err.Render(err.Error()))
			} else {
				s = fmt.Sprintf("%s offset %#x", s, offset)
			}
		}
		fmt.Fprintln(output, s)
	}

	return nil
}

func lookup(md *modalflag.Modes, output io.Writer, st styles) error {
	md.NewMode()

	metadataFile := md.AddString("metadata", paths.ResourcePath(defaultMetadata), "metadata database (NesCartDB or No-Intro XML)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) == 0 {
		return fmt.Errorf("checksum or cartridge file required for %s mode", md)
	}

	cache := metadata.Load(*metadataFile)

	for _, a := range md.RemainingArgs() {
		crc, err := argChecksum(a)
		if err != nil {
			return err
		}

		f, ok := autofill.Lookup(cache, crc)
		if !ok {
			fmt.Fprintf(output, "%08X %s\n", crc, st.err.Render("not found"))
			continue
		}

		fmt.Fprintf(output, "%08X %s\n", crc, st.file.Render(f.Name))
		if f.Simultaneous {
			fmt.Fprintf(output, "  players: %d (simultaneous)\n", f.Players)
		} else if f.Players > 0 {
			fmt.Fprintf(output, "  players: %d\n", f.Players)
		}
		if f.ReleaseDate != "" {
			fmt.Fprintf(output, "  released: %s\n", f.ReleaseDate)
		}
		if f.Publisher != "" {
			fmt.Fprintf(output, "  publisher: %s\n", f.Publisher)
		}
		if f.Region != "" {
			fmt.Fprintf(output, "  region: %s\n", f.Region)
		}
	}

	return nil
}

// argChecksum interprets the argument as a cartridge file if such a file
// exists. otherwise the argument must be a hexadecimal checksum.
func argChecksum(a string) (uint32, error) {
	if _, err := os.Stat(a); err == nil {
		cl := cartridgeloader.NewLoader(a)
		if err := cl.Load(); err != nil {
			return 0, err
		}
		return ines.Checksum(cl.Data)
	}

	crc, err := strconv.ParseUint(strings.TrimPrefix(strings.ToLower(a), "0x"), 16, 32)
	if err != nil {
		return 0, fmt.Errorf("not a file or a checksum (%s)", a)
	}
	return uint32(crc), nil
}

func patches(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	md.AddSubModes("LIST", "ADD", "DELETE")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	md.NewMode()
	patchesFile := md.AddString("patches", paths.ResourcePath(defaultPatches), "patch registry")

	switch md.Mode() {
	case "LIST":
		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}
		return patch.ListRegistry(*patchesFile, output)

	case "ADD":
		checksum := md.AddString("checksum", "", "content checksum of the cartridge (hex)")
		glob := md.AddString("filename", "", "filename pattern of the cartridge")
		offset := md.AddString("offset", "", "offset into the payload (hex)")
		data := md.AddString("data", "", "replacement bytes (hex)")
		notes := md.AddString("notes", "", "description of the patch")

		md.AdditionalHelp("One of -checksum or -filename is required. The checksum can also be\n" +
			"given as the path to a cartridge file.")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		off, err := strconv.ParseUint(strings.TrimPrefix(strings.ToLower(*offset), "0x"), 16, 32)
		if err != nil {
			return fmt.Errorf("bad offset (%s)", *offset)
		}

		d, err := hex.DecodeString(*data)
		if err != nil || len(d) == 0 {
			return fmt.Errorf("bad data (%s)", *data)
		}

		var rec patch.Record
		switch {
		case *checksum != "" && *glob != "":
			return fmt.Errorf("-checksum and -filename can not be used together")
		case *checksum != "":
			crc, err := argChecksum(*checksum)
			if err != nil {
				return err
			}
			rec = patch.NewChecksumRecord(crc, int(off), d, *notes)
		case *glob != "":
			rec, err = patch.NewFilenameRecord(*glob, int(off), d, *notes)
			if err != nil {
				return err
			}
		default:
			return fmt.Errorf("one of -checksum or -filename is required")
		}

		if err := patch.AddRecord(*patchesFile, rec); err != nil {
			return err
		}
		fmt.Fprintf(output, "added %s\n", rec)

	case "DELETE":
		md.AdditionalHelp("Arguments are the keys shown by the LIST mode.")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		if len(md.RemainingArgs()) == 0 {
			return fmt.Errorf("keys required for %s mode", md)
		}

		for _, a := range md.RemainingArgs() {
			key, err := strconv.Atoi(a)
			if err != nil {
				return fmt.Errorf("bad key (%s)", a)
			}
			if err := patch.DeleteRecord(*patchesFile, key); err != nil {
				return err
			}
			fmt.Fprintf(output, "deleted %03d\n", key)
		}
	}

	return nil
}
