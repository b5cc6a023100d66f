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

package modalflag_test

import (
	"testing"

	"github.com/cloverkit/cartimport/modalflag"
	"github.com/cloverkit/cartimport/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.Path(), "")
	test.ExpectEquality(t, len(md.RemainingArgs()), 0)
}

func TestNoModes(t *testing.T) {
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"-test", "1", "2"})
	testFlag := md.AddBool("test", false, "test flag")
	test.ExpectFailure(t, *testFlag)

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectSuccess(t, *testFlag)
	test.DemandEquality(t, len(md.RemainingArgs()), 2)
	test.ExpectEquality(t, md.GetArg(0), "1")
	test.ExpectEquality(t, md.GetArg(1), "2")
	test.ExpectEquality(t, md.GetArg(2), "")
}

func TestUnknownFlag(t *testing.T) {
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"-nothing"})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectFailure(t, err)
}

func TestModes(t *testing.T) {
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"patches", "add", "-notes", "fix", "game.nes"})
	md.AddSubModes("import", "info", "patches")

	p, err := md.Parse()
	test.DemandEquality(t, p, modalflag.ParseContinue)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "PATCHES")

	md.NewMode()
	md.AddSubModes("LIST", "ADD")
	p, _ = md.Parse()
	test.DemandEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, md.Mode(), "ADD")
	test.ExpectEquality(t, md.Path(), "PATCHES/ADD")

	md.NewMode()
	notes := md.AddString("notes", "", "patch notes")
	p, _ = md.Parse()
	test.DemandEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, *notes, "fix")
	test.DemandEquality(t, len(md.RemainingArgs()), 1)
	test.ExpectEquality(t, md.GetArg(0), "game.nes")
}

func TestDefaultMode(t *testing.T) {
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"game.nes", "other.nes"})
	md.AddSubModes("IMPORT", "INFO")

	p, _ := md.Parse()
	test.DemandEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, md.Mode(), "IMPORT")
	test.ExpectEquality(t, len(md.RemainingArgs()), 2)

	// flags belonging to the default mode
	md.NewArgs([]string{"-policy", "ALLOW", "game.nes"})
	md.AddSubModes("IMPORT", "INFO")
	p, _ = md.Parse()
	test.DemandEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, md.Mode(), "IMPORT")

	md.NewMode()
	policy := md.AddString("policy", "ASK", "")
	p, _ = md.Parse()
	test.DemandEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, *policy, "ALLOW")
	test.ExpectEquality(t, md.GetArg(0), "game.nes")
}

func TestNoHelpAvailable(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectEquality(t, tw.String(), "No help available\n")
}

func TestHelpFlags(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddBool("test", true, "test flag")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectEquality(t, tw.String(), "Usage:\n"+
		"  -test\n"+
		"    \ttest flag (default true)\n")
}

func TestHelpModes(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddSubModes("A", "B", "C")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectEquality(t, tw.String(), "Usage:\n"+
		"  modes: A, B, C\n"+
		"    default: A\n")
}

func TestHelpFlagsAndModes(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"info", "-help"})
	md.AddSubModes("IMPORT", "INFO")
	p, _ := md.Parse()
	test.DemandEquality(t, p, modalflag.ParseContinue)

	md.NewMode()
	md.AddBool("test", true, "test flag")
	md.AddSubModes("X")
	md.AdditionalHelp("more help")

	p, _ = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectEquality(t, tw.String(), "Usage: for INFO mode\n"+
		"  -test\n"+
		"    \ttest flag (default true)\n"+
		"\n"+
		"  modes: X\n"+
		"    default: X\n"+
		"\n"+
		"more help\n")
}
