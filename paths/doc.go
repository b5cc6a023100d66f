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

// Package paths contains functions to prepare paths to cartimport resources.
//
// The ResourcePath() function prepends the resource with the base resource
// directory. For example, the path to the patch registry:
//
//	pth := paths.ResourcePath("patches")
//
// If a directory named ".cartimport" is present in the current directory
// then that is the base. Otherwise the base is a directory named
// "cartimport" in the user's configuration directory, as returned by
// os.UserConfigDir(). On a Linux system the above example will usually be:
//
//	/home/user/.config/cartimport/patches
//
// ResourcePath() does not check that the resource exists or create any
// directories.
package paths
