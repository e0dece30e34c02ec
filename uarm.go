// This file is part of uARM.
//
// uARM is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// uARM is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with uARM.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/ElectroBoy404NotFound/uARM/curated"
	"github.com/ElectroBoy404NotFound/uARM/environment"
	"github.com/ElectroBoy404NotFound/uARM/govern"
	"github.com/ElectroBoy404NotFound/uARM/hardware"
	"github.com/ElectroBoy404NotFound/uARM/hardware/cpu/scripted"
	"github.com/ElectroBoy404NotFound/uARM/hardware/hypercall"
	"github.com/ElectroBoy404NotFound/uARM/hardware/preferences"
	"github.com/ElectroBoy404NotFound/uARM/host/console"
	"github.com/ElectroBoy404NotFound/uARM/host/disk"
	"github.com/ElectroBoy404NotFound/uARM/host/sharedram"
	"github.com/ElectroBoy404NotFound/uARM/logger"
	"github.com/ElectroBoy404NotFound/uARM/modalflag"
	"github.com/ElectroBoy404NotFound/uARM/prefs"
	"github.com/ElectroBoy404NotFound/uARM/statsview"
	"github.com/ElectroBoy404NotFound/uARM/version"
)

// exit values
const (
	exitOK    = 0
	exitParse = 10
	exitMode  = 20
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdin, os.Stdout))
}

func launch(args []string, stdin *os.File, stdout io.Writer) int {
	md := &modalflag.Modes{Output: stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "DISK")

	showVersion := md.AddBool("version", false, "show version information")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK

	case modalflag.ParseError:
		fmt.Fprintf(stdout, "* error: %v\n", err)
		return exitParse
	}

	if *showVersion {
		v, r, _ := version.Version()
		fmt.Fprintf(stdout, "%s %s\n", version.ApplicationName, v)
		if r != "" {
			fmt.Fprintf(stdout, "%s\n", r)
		}
		return exitOK
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, stdin, stdout)
	case "DISK":
		err = diskInfo(md, stdout)
	}

	if err != nil {
		fmt.Fprintf(stdout, "* error in %s mode: %s\n", md.String(), err)
		return exitMode
	}

	return exitOK
}

func run(md *modalflag.Modes, stdin *os.File, stdout io.Writer) error {
	md.NewMode()
	md.AdditionalHelp("optional argument is the disk image")

	script := md.AddString("script", "", "Lua script implementing the CPU core")
	log := md.AddBool("log", false, "echo log to stdout")
	prefsOverride := md.AddString("prefs", "", "override preferences (eg. \"ram.size::0x800000; sched.timer::0x3\")")
	faultLog := md.AddBool("faultlog", false, "report distinct faults on exit")
	dumpState := md.AddBool("dumpstate", false, "dump CPU registers on exit")
	memviz := md.AddString("memviz", "", "write graphviz description of the peripherals to file on exit")
	memmap := md.AddBool("memmap", false, "print memory map before running")
	readOnly := md.AddBool("readonly", false, "open disk image read only")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(stdout, false)
	} else {
		logger.SetEcho(nil, false)
	}

	if *stats {
		if !statsview.Available() {
			return curated.Errorf("statsview not available in this build")
		}
		statsview.Launch(stdout)
	}

	if *script == "" {
		return curated.Errorf("CPU core script required (-script)")
	}
	src, err := os.ReadFile(*script)
	if err != nil {
		return curated.Errorf("script: %v", err)
	}

	prefs.PushCommandLineStack(*prefsOverride)
	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	if unused := prefs.PopCommandLineStack(); unused != "" {
		logger.Logf(logger.Allow, "prefs", "unused preferences: %s", unused)
	}
	if err != nil {
		return err
	}
	if *faultLog {
		if err := env.Prefs.FaultLog.Set(true); err != nil {
			return err
		}
	}

	host := hardware.HostIO{
		Diagnostic: stdout,
	}

	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		d, err := disk.Open(md.GetArg(0), *readOnly)
		if err != nil {
			return err
		}
		defer d.Close()
		host.Disk = d
	default:
		return curated.Errorf("too many arguments for %s mode", md)
	}

	if env.Prefs.RAMMode.String() == preferences.RAMCallout {
		sr, err := sharedram.NewSharedRAM(env.Prefs.SharedRAM.String(), uint32(env.Prefs.RAMSize.Get().(int)))
		if err != nil {
			return err
		}
		defer sr.Close()
		host.RAM = sr.Callout()
	}

	con := console.NewConsole(env, stdin, stdout)
	host.Console = con

	soc, err := hardware.NewSoC(env, host, scripted.NewFactory(string(src)))
	if err != nil {
		return err
	}
	if c, ok := soc.CPU.(*scripted.Core); ok {
		defer c.Close()
	}

	if *memmap {
		fmt.Fprint(stdout, soc.MemorySummary())
	}

	if err := con.Start(); err != nil {
		return err
	}

	// terminate signal ends the emulation cleanly. interrupt and quit belong
	// to the console
	term := make(chan os.Signal, 1)
	signal.Notify(term, syscall.SIGTERM)
	defer signal.Stop(term)

	var performanceFilter int
	err = soc.Run(func() (govern.State, error) {
		performanceFilter++
		if performanceFilter >= hardware.PerformanceBrake {
			performanceFilter = 0
			select {
			case <-term:
				return govern.Ending, nil
			default:
			}
		}
		return govern.Running, nil
	})

	if cerr := con.Stop(); cerr != nil && err == nil {
		err = cerr
	}

	if *dumpState {
		soc.DumpState(stdout)
	}
	if *faultLog {
		soc.WriteFaultLog(stdout)
	}
	if *memviz != "" {
		f, ferr := os.Create(*memviz)
		if ferr != nil {
			return curated.Errorf("memviz: %v", ferr)
		}
		soc.Visualise(f)
		if ferr := f.Close(); ferr != nil {
			return curated.Errorf("memviz: %v", ferr)
		}
	}

	return err
}

func diskInfo(md *modalflag.Modes, stdout io.Writer) error {
	md.NewMode()
	md.AdditionalHelp("arguments are the disk image and an optional sector number")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var sector uint64
	switch len(md.RemainingArgs()) {
	case 0:
		return curated.Errorf("disk image required for %s mode", md)
	case 1:
	case 2:
		sector, err = strconv.ParseUint(md.GetArg(1), 0, 32)
		if err != nil {
			return curated.Errorf("sector: %v", err)
		}
	default:
		return curated.Errorf("too many arguments for %s mode", md)
	}

	d, err := disk.Open(md.GetArg(0), true)
	if err != nil {
		return err
	}
	defer d.Close()

	fmt.Fprintf(stdout, "%d sectors of %d bytes\n", d.Sectors(), hypercall.BlockSize)

	var buf hypercall.BlockBuffer
	if !d.Operate(hypercall.OpRead, uint32(sector), &buf) {
		return curated.Errorf("cannot read sector %d", sector)
	}
	fmt.Fprintf(stdout, "sector %d:\n", sector)
	fmt.Fprint(stdout, hex.Dump(buf.Bytes()))

	return nil
}
