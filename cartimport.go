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
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/cloverkit/cartimport/cartridgeloader"
	"github.com/cloverkit/cartimport/compatibility"
	"github.com/cloverkit/cartimport/importer"
	"github.com/cloverkit/cartimport/logger"
	"github.com/cloverkit/cartimport/metadata"
	"github.com/cloverkit/cartimport/modalflag"
	"github.com/cloverkit/cartimport/patch"
	"github.com/cloverkit/cartimport/paths"
	"github.com/cloverkit/cartimport/prompt"
	"github.com/cloverkit/cartimport/statsview"
	"github.com/cloverkit/cartimport/version"
)

// exit values.
const (
	exitOK        = 0
	exitArguments = 10
	exitFailure   = 20
)

// default resource names. see paths.ResourcePath().
const (
	defaultPatches  = "patches"
	defaultMetadata = "nescarts.xml"
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdin, os.Stdout))
}

// launch the mode specified by the arguments. returns the value to be used
// with os.Exit().
func launch(args []string, input io.Reader, output io.Writer) int {
	// the log covers a single launch
	logger.Clear()

	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("IMPORT", "INFO", "GENIE", "LOOKUP", "PATCHES", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitArguments
	}

	st := newStyles(output)

	switch md.Mode() {
	case "IMPORT":
		err = importMode(md, input, output, st)
	case "INFO":
		err = info(md, output, st)
	case "GENIE":
		err = genieMode(md, output, st)
	case "LOOKUP":
		err = lookup(md, output, st)
	case "PATCHES":
		err = patches(md, output)
	case "VERSION":
		fmt.Fprintln(output, version.Version())
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return exitFailure
	}

	return exitOK
}

// policyFlag implements the flag.Value interface for compatibility.Policy.
type policyFlag struct {
	policy compatibility.Policy
}

func (f *policyFlag) String() string {
	return f.policy.String()
}

func (f *policyFlag) Set(s string) error {
	p, err := compatibility.ParsePolicy(s)
	if err != nil {
		return err
	}
	f.policy = p
	return nil
}

// errBatch is returned by importMode() when one or more files in the batch
// could not be imported.
type errBatch struct {
	failed int
	total  int
}

func (e errBatch) Error() string {
	return fmt.Sprintf("%d of %d files failed", e.failed, e.total)
}

func importMode(md *modalflag.Modes, input io.Reader, output io.Writer, st styles) error {
	md.NewMode()

	patchesFile := md.AddString("patches", paths.ResourcePath(defaultPatches), "patch registry")
	metadataFile := md.AddString("metadata", paths.ResourcePath(defaultMetadata), "metadata database (NesCartDB or No-Intro XML)")
	policy := &policyFlag{policy: compatibility.AskCaller}
	md.AddVar(policy, "policy", "unsupported cartridges: ASK, ALLOW, REJECT")
	codes := md.AddString("genie", "", "Game Genie codes to apply to every cartridge")
	outDir := md.AddString("out", "", "directory to write imported cartridges to")
	log := md.AddBool("log", false, "echo log to stdout")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	md.AdditionalHelp("Directories are searched for .nes files. The batch continues after a failure.")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(output)
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		if !statsview.Available() {
			return fmt.Errorf("statsview not available in this build")
		}
		statsview.Launch(output)
	}

	files, err := collectFiles(md.RemainingArgs())
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("cartridge files required for %s mode", md)
	}

	if *outDir != "" {
		if err := os.MkdirAll(*outDir, 0o755); err != nil {
			return err
		}
	}

	// the registry and the metadata cache are loaded once for the entire
	// batch
	reg, err := patch.LoadRegistry(*patchesFile)
	if err != nil {
		return err
	}
	cache := metadata.Load(*metadataFile)

	pt := prompt.NewTerminal(input, output)
	imp := importer.NewImporter(reg, cache, compatibility.NewGate(policy.policy, pt.Decide))

	// ctrl-c stops the batch once the current file is complete
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	intWatch := watchInterrupt(intChan)
	defer func() {
		signal.Stop(intChan)
		intWatch.Stop()
	}()

	var failed int
	for i, f := range files {
		if intWatch.Interrupted() {
			fmt.Fprintf(output, "* interrupted: %d files not imported\n", len(files)-i)
			failed += len(files) - i
			break // for loop
		}

		// forget log entries from earlier files
		logger.WriteRecent(io.Discard)

		if err := importFile(imp, f, *codes, *outDir, output, st); err != nil {
			failed++
			fmt.Fprintf(output, "%s %s\n", st.file.Render(filepath.Base(f)), st.err.Render(err.Error()))

			// the log has already been seen if it is being echoed
			if !*log {
				logger.WriteRecent(output)
			}
		}
	}

	summary := fmt.Sprintf("%d imported, %d failed", len(files)-failed, failed)
	if p := imp.Gate.Policy(); p != policy.policy {
		summary = fmt.Sprintf("%s (policy now %s)", summary, p)
	}
	fmt.Fprintln(output, st.summary.Render(summary))

	if failed > 0 {
		return errBatch{failed: failed, total: len(files)}
	}

	return nil
}

// importFile loads, imports and optionally writes a single cartridge file.
// interruptWatch records whether a signal has been received on a channel.
type interruptWatch struct {
	interrupted atomic.Bool
	done        chan struct{}
	wg          sync.WaitGroup
}

func watchInterrupt(sig <-chan os.Signal) *interruptWatch {
	w := &interruptWatch{
		done: make(chan struct{}),
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		for {
			select {
			case <-sig:
				w.interrupted.Store(true)
			case <-w.done:
				return
			}
		}
	}()

	return w
}

func (w *interruptWatch) Interrupted() bool {
	return w.interrupted.Load()
}

// Stop watching. Returns once the watching goroutine has ended.
func (w *interruptWatch) Stop() {
	close(w.done)
	w.wg.Wait()
}

func importFile(imp *importer.Importer, filename string, codes string, outDir string, output io.Writer, st styles) error {
	cl := cartridgeloader.NewLoader(filename)
	if err := cl.Load(); err != nil {
		return err
	}

	res, err := imp.Import(filepath.Base(cl.Filename), cl.Data)
	if err != nil {
		return err
	}

	img := res.Image
	if codes != "" {
		img, err = importer.ApplyCheats(img, codes)
		if err != nil {
			return err
		}
	}
	cheated := !img.Equal(res.Image)

	verdict := st.supported.Render(res.Verdict.String())
	if res.Verdict != compatibility.Supported {
		verdict = st.allowed.Render(fmt.Sprintf("%s (allowed)", res.Verdict))
	}
	fmt.Fprintf(output, "%s %08X %s\n", st.file.Render(filepath.Base(filename)), res.Checksum, verdict)

	if res.Patch != nil {
		fmt.Fprintf(output, "  %s\n", st.patch.Render(fmt.Sprintf("patched: %s", res.Patch)))
	}
	if cheated {
		fmt.Fprintf(output, "  %s\n", st.patch.Render(fmt.Sprintf("cheats: %s", codes)))
	}
	if res.Autofill != nil {
		fmt.Fprintf(output, "  %s (%d players) %s %s\n", res.Autofill.Name, res.Autofill.Players,
			res.Autofill.Publisher, res.Autofill.ReleaseDate)
	}

	if outDir != "" {
		out := filepath.Join(outDir, cl.ShortName()+".nes")
		if err := os.WriteFile(out, img.Serialise(), 0o644); err != nil {
			return err
		}
	}

	return nil
}

// collectFiles expands directories in the list of arguments into the
// cartridge files they contain.
func collectFiles(args []string) ([]string, error) {
	var files []string
	for _, a := range args {
		fi, err := os.Stat(a)
		if err != nil || !fi.IsDir() {
			// files that can not be opened will fail during import
			files = append(files, a)
			continue
		}

		err = filepath.WalkDir(a, func(pth string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && cartridgeloader.IsCartridgeFile(pth) {
				files = append(files, pth)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}
