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

// Package modalflag wraps the flag package of the standard library so that a
// program can have modes, each with its own set of flags. The go command is
// the obvious example: build, test and vet all take different flags.
//
// Arguments are given to a Modes instance with NewArgs() and Parse() is then
// called with no arguments. Flags are added before Parse() is called:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("IMPORT", "INFO", "GENIE")
//	verbose := md.AddBool("v", false, "verbose output")
//
//	switch p, err := md.Parse(); p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
// If sub-modes have been added then the first argument after the flags is
// compared with them. Comparison is case insensitive. A match is consumed
// and becomes the result of Mode(). If there is no match the first sub-mode
// in the list is the mode and the argument is left alone. This means the
// default mode can be used without being named:
//
//	cartimport game.nes          (mode is IMPORT)
//	cartimport info game.nes     (mode is INFO)
//
// Once the mode is known, NewMode() starts a fresh set of flags for the
// remaining arguments and Parse() is called again:
//
//	switch md.Mode() {
//	case "INFO":
//		md.NewMode()
//		dot := md.AddString("memviz", "", "write graphviz dot file")
//		if p, _ := md.Parse(); p != modalflag.ParseContinue {
//			return
//		}
//		info(md.RemainingArgs(), *dot)
//	}
//
// Modes can be nested as deeply as required. Path() returns the list of modes
// found so far, separated by a slash. eg. "PATCHES/ADD".
//
// Help is printed to Output when -help or -h is found. The help lists the
// flags, the sub-modes and any text set with AdditionalHelp().
package modalflag
