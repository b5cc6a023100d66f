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

// Package version reports the version of the program. The version number is
// set at link time with:
//
//	go build -ldflags "-X github.com/cloverkit/cartimport/version.number=v1.0.0"
//
// Without a version number the build information embedded by the Go
// toolchain is used to describe the build.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the program.
const ApplicationName = "cartimport"

// set by the linker
var number string

// Info describes the build of the program.
type Info struct {
	// "unreleased" if there is no version number but there is vcs
	// information. "local" if there is neither
	Version string

	// vcs revision with the suffix "+dirty" if the working tree had been
	// modified. empty if there is no vcs information
	Revision string

	// true if the version is a numbered release
	Release bool
}

func (i Info) String() string {
	if i.Release || i.Revision == "" {
		return fmt.Sprintf("%s %s", ApplicationName, i.Version)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, i.Version, i.Revision)
}

// Version returns information about the build.
func Version() Info {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		info = nil
	}
	return describe(number, info)
}

func describe(number string, info *debug.BuildInfo) Info {
	var vcs bool
	var modified bool
	var v Info

	if info != nil {
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				v.Revision = s.Value
			case "vcs.modified":
				modified = s.Value == "true"
			}
		}
	}

	if v.Revision != "" && modified {
		v.Revision = fmt.Sprintf("%s+dirty", v.Revision)
	}

	switch {
	case number != "":
		v.Version = number
		v.Release = true
	case vcs:
		v.Version = "unreleased"
	default:
		v.Version = "local"
	}

	return v
}
