// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command hack runs a small demo program on a gate level simulation of
// the Hack computer and traces the CPU buses cycle by cycle.
package main

import (
	"flag"
	"os"

	"github.com/pterm/pterm"

	"github.com/hacksim/hack"
	"github.com/hacksim/hack/chips"
)

// computes 2+3 and stores the result at RAM[0], then loops forever.
//
//	@2
//	D=A
//	@3
//	D=D+A
//	@0
//	M=D
//	@6
//	0;JMP
var program = []uint16{
	0x0002,
	0xEC10,
	0x0003,
	0xE090,
	0x0000,
	0xE308,
	0x0006,
	0xEA87,
}

func main() {
	ticks := flag.Int("ticks", 10, "clock ticks to run")
	flag.Parse()

	c, err := hack.NewCircuit(
		chips.Computer(program, func() uint16 { return 0 })(
			"reset=reset, pc=pc, addressM=addressM, outM=outM, writeM=writeM"))
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
	pterm.Info.Printfln("%d components", c.Size())

	// hold reset for one tick so that execution starts at ROM address 0
	fatal(c.SetPin("reset", true))
	fatal(c.Tick())
	fatal(c.SetPin("reset", false))

	rows := pterm.TableData{{"tick", "pc", "addressM", "outM", "writeM"}}
	for i := 0; i < *ticks; i++ {
		fatal(c.Tick())
		pc, _ := c.Bus("pc")
		addr, _ := c.Bus("addressM")
		out, _ := c.Bus("outM")
		w, _ := c.Pin("writeM")
		rows = append(rows, []string{
			pterm.Sprintf("%d", c.Ticks()),
			pterm.Sprintf("%d", pc),
			pterm.Sprintf("0x%04X", addr),
			pterm.Sprintf("%d", int16(out)),
			pterm.Sprintf("%v", w),
		})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(rows).Render(); err != nil {
		pterm.Error.Println(err)
	}
}

func fatal(err error) {
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}
