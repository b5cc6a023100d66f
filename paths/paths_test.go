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

package paths_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/cloverkit/cartimport/paths"
	"github.com/cloverkit/cartimport/test"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(wd)
	})
}

func TestLocalResourcePath(t *testing.T) {
	dir := t.TempDir()
	test.DemandSuccess(t, os.Mkdir(filepath.Join(dir, ".cartimport"), 0o700))
	chdir(t, dir)

	test.ExpectEquality(t, paths.ResourcePath("patches"), filepath.Join(".cartimport", "patches"))
	test.ExpectEquality(t, paths.ResourcePath("data", "nescarts.xml"), filepath.Join(".cartimport", "data", "nescarts.xml"))
	test.ExpectEquality(t, paths.ResourcePath("", "patches"), filepath.Join(".cartimport", "patches"))
	test.ExpectEquality(t, paths.ResourcePath(), ".cartimport")
}

func TestConfigResourcePath(t *testing.T) {
	chdir(t, t.TempDir())

	cnf, err := os.UserConfigDir()
	if err != nil {
		t.Skip("no user config directory")
	}

	test.ExpectEquality(t, paths.ResourcePath("patches"), filepath.Join(cnf, "cartimport", "patches"))
}

func TestUniqueFilename(t *testing.T) {
	n := time.Date(1985, time.October, 18, 9, 5, 3, 0, time.UTC)
	test.ExpectEquality(t, paths.UniqueFilenameAt("memviz", "Super Mario Bros", n), "memviz_Super_Mario_Bros_19851018_090503")
	test.ExpectEquality(t, paths.UniqueFilenameAt("memviz", " ", n), "memviz_19851018_090503")
	test.ExpectSuccess(t, strings.HasPrefix(paths.UniqueFilename("log", ""), "log_"))
}
