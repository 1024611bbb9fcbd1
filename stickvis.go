// This file is part of stickvis.
//
// stickvis is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// stickvis is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with stickvis.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/joho/godotenv"

	"github.com/stickvis/stickvis/govern"
	"github.com/stickvis/stickvis/gui/sdlimgui"
	"github.com/stickvis/stickvis/gui/termview"
	"github.com/stickvis/stickvis/logger"
	"github.com/stickvis/stickvis/modalflag"
	"github.com/stickvis/stickvis/paths"
	"github.com/stickvis/stickvis/prefs"
	"github.com/stickvis/stickvis/recorder"
	"github.com/stickvis/stickvis/snapshot"
	"github.com/stickvis/stickvis/statsview"
	"github.com/stickvis/stickvis/version"
	"github.com/stickvis/stickvis/visualizer"
	"github.com/stickvis/stickvis/wavtrace"
)

// environment variables read from the process environment or from a .env
// file in the working directory.
const (
	envPrefs = "STICKVIS_PREFS"
	envFeed  = "STICKVIS_FEED"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when an alternative handler is
	// more appropriate. for example, the terminal view handles ctrl-c itself.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// GuiCreator facilitates the creation, servicing and destruction of GUIs
// that need to be run in the main thread.
//
// Note that there is no Create() function because we need the freedom to
// create the GUI how we want. Instead the creator is a channel which accepts
// a function that returns an instance of GuiCreator.
type GuiCreator interface {
	// cleanup resources used by the gui
	Destroy(io.Writer)

	// Service() should not pause or loop longer than necessary. It MUST ONLY
	// by called as part of a larger loop from the main thread. It should
	// service all gui events that are not safe to do in sub-threads.
	Service()
}

// communication between the main() function and the launch() function. this
// is required because SDL requires window event handling (including
// creation) to occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan GuiCreator
	creationError chan error
}

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(sync, os.Args[1:])

	// loop until done is true. every iteration of the loop we listen for:
	//
	//  1. interrupt signals
	//  2. new gui creation functions
	//  3. state requests
	//  4. anything in the Service() function of the most recently created GUI
	done := false
	var gui GuiCreator
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case creator := <-sync.creator:
			var err error

			if gui != nil {
				gui.Destroy(os.Stderr)
			}

			gui, err = creator()
			if err != nil {
				sync.creationError <- err

				// an interface holding a nil pointer is not itself nil
				gui = nil
			} else {
				sync.creation <- gui
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if gui != nil {
					gui.Destroy(os.Stderr)
				}

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}

		default:
			if gui != nil {
				gui.Service()
			}
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync, args []string) {
	// a missing .env file is normal
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Printf("* error: %v\n", err)
	}

	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "TERM", "SNAPSHOT", "WAV", "PROFILE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, sync)

	case "TERM":
		err = term(md, sync)

	case "SNAPSHOT":
		err = snap(md)

	case "WAV":
		err = wav(md)

	case "PROFILE":
		err = profile(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// common flags for modes that create a visualiser.
type commonFlags struct {
	prefs     *string
	profile   *string
	echo      *bool
	statsview *bool
	statsaddr *string
}

func addCommonFlags(md *modalflag.Modes) *commonFlags {
	cf := &commonFlags{
		prefs:   md.AddString("prefs", "", "preference overrides. eg. \"stickvis.size::300; session.mode::Training\""),
		profile: md.AddString("profile", "", "yaml display profile to apply on startup"),
		echo:    md.AddBool("echo", false, "echo log to stdout"),
	}
	if statsview.Available() {
		cf.statsview = md.AddBool("statsview", false, "run stats server")
		cf.statsaddr = md.AddString("statsaddr", statsview.DefaultAddress, "address of the stats server")
	}
	return cf
}

// apply flags that must take effect before the visualiser is created.
func (cf *commonFlags) apply() {
	if *cf.echo {
		logger.SetEcho(os.Stdout, true)
	} else {
		logger.SetEcho(nil, false)
	}

	if cf.statsview != nil && *cf.statsview {
		statsview.Launch(os.Stdout, *cf.statsaddr)
	}

	overrides := make([]string, 0, 2)
	if s := os.Getenv(envPrefs); s != "" {
		overrides = append(overrides, s)
	}
	if *cf.prefs != "" {
		overrides = append(overrides, *cf.prefs)
	}
	prefs.PushCommandLineStack(strings.Join(overrides, ";"))
}

// the visualiser and its collaborators.
type instance struct {
	pth     string
	session *govern.Session
	vprefs  *visualizer.Preferences
	vis     *visualizer.Visualizer
}

func newInstance(cf *commonFlags) (*instance, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}

	inst := &instance{pth: pth}

	inst.session, err = govern.NewSession(pth)
	if err != nil {
		return nil, err
	}

	inst.vprefs, err = visualizer.NewPreferences(pth)
	if err != nil {
		return nil, err
	}

	// any entries not consumed by the preferences are probably typos
	if unused := prefs.PopCommandLineStack(); unused != "" {
		logger.Logf(logger.Allow, "prefs", "unused preference overrides: %s", unused)
	}

	if cf != nil && *cf.profile != "" {
		f, err := os.Open(*cf.profile)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		if err := inst.vprefs.ImportProfile(f); err != nil {
			return nil, err
		}
	}

	inst.vis, err = visualizer.NewVisualizer(inst.vprefs, inst.session, inst.session)
	if err != nil {
		return nil, err
	}

	return inst, nil
}

func run(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	cf := addCommonFlags(md)
	sf := addSourceFlags(md, os.Getenv(envFeed), false)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	cf.apply()

	inst, err := newInstance(cf)
	if err != nil {
		return err
	}

	src, err := sf.start()
	if err != nil {
		return err
	}

	// create gui
	sync.creator <- func() (GuiCreator, error) {
		img, err := sdlimgui.NewSdlImgui(inst.vis, inst.vprefs, inst.session, inst.pth)
		if err != nil {
			return nil, err
		}
		img.SetSource(src.samples, src.tap)
		return img, nil
	}

	// wait for creator result
	var img *sdlimgui.SdlImgui
	select {
	case g := <-sync.creation:
		img = g.(*sdlimgui.SdlImgui)
	case err := <-sync.creationError:
		_ = src.end()
		return err
	}

	// the gui saves all preferences before closing the done channel
	<-img.Done()

	return src.end()
}

func term(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	cf := addCommonFlags(md)
	sf := addSourceFlags(md, os.Getenv(envFeed), true)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	// the log is shown in the terminal view. echoing would corrupt the
	// display
	*cf.echo = false
	cf.apply()

	inst, err := newInstance(cf)
	if err != nil {
		return err
	}

	src, err := sf.start()
	if err != nil {
		return err
	}

	// ctrl-c arrives as a key press while the terminal is in raw mode
	sync.state <- stateRequest{req: reqNoIntSig}

	err = termview.Run(inst.vis, inst.session, src.samples, src.tap)
	if eerr := src.end(); err == nil {
		err = eerr
	}
	if err != nil {
		return err
	}

	if err := inst.session.Prefs.Save(); err != nil {
		return err
	}
	return inst.vprefs.Save()
}

func snap(md *modalflag.Modes) error {
	md.NewMode()

	cf := addCommonFlags(md)
	width := md.AddInt("width", 800, "width of image")
	height := md.AddInt("height", 600, "height of image")
	memvizFile := md.AddString("memviz", "", "write a graphviz dot file of the visualiser")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var output string
	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("transcript required for %s mode", md)
	case 1:
		output = paths.UniqueFilename("snapshot", strings.TrimSuffix(filepath.Base(md.GetArg(0)), filepath.Ext(md.GetArg(0))), "png")
	case 2:
		output = md.GetArg(1)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	cf.apply()

	plb, err := openPlayback(md.GetArg(0))
	if err != nil {
		return err
	}

	inst, err := newInstance(cf)
	if err != nil {
		return err
	}

	// replaying is only meaningful in an eligible mode. the change is not
	// saved
	if !inst.session.IsEligiblePlayMode() {
		if err := inst.session.SetMode(govern.ModeFreeplay); err != nil {
			return err
		}
	}
	inst.session.SetState(govern.Running)

	samples := plb.Samples()
	inst.vis.Reserve(len(samples))
	for _, s := range samples {
		inst.vis.OnInput(s)
	}

	prims := inst.vis.Render(visualizer.Vec2{X: float32(*width), Y: float32(*height)})
	if err := snapshot.Save(output, *width, *height, prims); err != nil {
		return err
	}
	fmt.Printf("! snapshot of %s saved to %s\n", plb, output)

	if *memvizFile != "" {
		f, err := os.Create(*memvizFile)
		if err != nil {
			return err
		}
		memviz.Map(f, inst.vis)
		if err := f.Close(); err != nil {
			return err
		}
	}

	return nil
}

func wav(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 2 {
		return fmt.Errorf("%s mode requires an input and an output file", md)
	}

	in := md.GetArg(0)
	out := md.GetArg(1)

	switch strings.ToLower(filepath.Ext(in)) {
	case ".wav", ".mp3":
		entries, rate, err := wavtrace.Import(in)
		if err != nil {
			return err
		}

		rec, err := recorder.NewRecorder(out, rate)
		if err != nil {
			return err
		}
		for _, e := range entries {
			if err := rec.RecordSample(e.Tick, e.Sample); err != nil {
				_ = rec.End()
				return err
			}
		}
		if err := rec.End(); err != nil {
			return err
		}
		fmt.Printf("! %d samples written to %s\n", len(entries), out)

	default:
		if err := wavtrace.Export(in, out); err != nil {
			return err
		}
		fmt.Printf("! %s written\n", out)
	}

	return nil
}

func profile(md *modalflag.Modes) error {
	md.NewMode()

	cf := addCommonFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	cf.apply()

	inst, err := newInstance(cf)
	if err != nil {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return inst.vprefs.ExportProfile(os.Stdout)
	case 1:
		f, err := os.Create(md.GetArg(0))
		if err != nil {
			return err
		}
		if err := inst.vprefs.ExportProfile(f); err != nil {
			_ = f.Close()
			return err
		}
		return f.Close()
	}

	return fmt.Errorf("too many arguments for %s mode", md)
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information from version control")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *revision {
		return version.Current().Write(md.Output)
	}

	fmt.Fprintln(md.Output, version.Summary())
	return nil
}
