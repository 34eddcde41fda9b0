// Command m68kstep loads a flat 68000 binary image and runs it against the
// m68k core, either freely for a cycle budget or one instruction at a time
// under raw-mode keyboard control.
package main

import (
	"fmt"
	"os"
	"syscall"

	"github.com/intuitionamiga/m68kcore/m68k"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const defaultMemSize = 1 << 20 // 1MB, plenty for a step/run demo image

func main() {
	rootCmd := &cobra.Command{
		Use:   "m68kstep",
		Short: "Run or single-step a 68000 binary image against the m68k core",
	}

	var loadAddr uint32
	var startPC uint32
	var stackPtr uint32
	var maxCycles int

	runCmd := &cobra.Command{
		Use:   "run [image]",
		Short: "Load an image and run it for a cycle budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			core, err := loadImage(args[0], loadAddr, startPC, stackPtr)
			if err != nil {
				return err
			}
			total, err := core.Execute(maxCycles)
			fmt.Printf("ran %d cycles, PC=%06X\n", total, core.PC)
			printRegisters(core)
			if err != nil {
				return fmt.Errorf("stopped: %w", err)
			}
			return nil
		},
	}
	runCmd.Flags().Uint32Var(&loadAddr, "load-addr", 0, "address the image is loaded at")
	runCmd.Flags().Uint32Var(&startPC, "pc", 0, "initial program counter")
	runCmd.Flags().Uint32Var(&stackPtr, "sp", uint32(defaultMemSize), "initial A7 (stack pointer)")
	runCmd.Flags().IntVar(&maxCycles, "cycles", 1_000_000, "cycle budget")

	stepCmd := &cobra.Command{
		Use:   "step [image]",
		Short: "Load an image and single-step it interactively (press space to step, q to quit)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			core, err := loadImage(args[0], loadAddr, startPC, stackPtr)
			if err != nil {
				return err
			}
			return interactiveStep(core)
		},
	}
	stepCmd.Flags().Uint32Var(&loadAddr, "load-addr", 0, "address the image is loaded at")
	stepCmd.Flags().Uint32Var(&startPC, "pc", 0, "initial program counter")
	stepCmd.Flags().Uint32Var(&stackPtr, "sp", uint32(defaultMemSize), "initial A7 (stack pointer)")

	rootCmd.AddCommand(runCmd, stepCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadImage(path string, loadAddr, startPC, stackPtr uint32) (*m68k.Core, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	mem := m68k.NewFlatMemory(defaultMemSize)
	if err := mem.Load(loadAddr, data); err != nil {
		return nil, err
	}
	core := m68k.New(stackPtr, mem)
	core.PC = startPC
	return core, nil
}

func printRegisters(core *m68k.Core) {
	for i := 0; i < 8; i++ {
		fmt.Printf("D%d=%08X ", i, core.D(i))
	}
	fmt.Println()
	for i := 0; i < 8; i++ {
		fmt.Printf("A%d=%08X ", i, core.A(i))
	}
	fmt.Println()
	fmt.Printf("CCR=%05b (XNZVC)\n", core.ConditionCodeRegister())
}

// interactiveStep runs one instruction per spacebar press, printing
// register state after each step, until 'q' is pressed or execution
// errors (typically an illegal instruction).
func interactiveStep(core *m68k.Core) error {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("m68kstep: failed to set raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	fmt.Print("\r\nspace=step  q=quit\r\n")
	buf := make([]byte, 1)
	for {
		n, err := syscall.Read(fd, buf)
		if err != nil || n == 0 {
			return err
		}
		switch buf[0] {
		case 'q', 'Q', 0x03: // ^C
			return nil
		case ' ':
			cycles, execErr := core.ExecuteOne()
			fmt.Printf("\r\nPC=%06X (%d cycles)\r\n", core.PC, cycles)
			printRegistersRaw(core)
			if execErr != nil {
				fmt.Printf("\r\n%v\r\n", execErr)
				return nil
			}
		}
	}
}

// printRegistersRaw matches printRegisters but with \r\n line endings, for
// use while the terminal is in raw mode.
func printRegistersRaw(core *m68k.Core) {
	for i := 0; i < 8; i++ {
		fmt.Printf("D%d=%08X ", i, core.D(i))
	}
	fmt.Print("\r\n")
	for i := 0; i < 8; i++ {
		fmt.Printf("A%d=%08X ", i, core.A(i))
	}
	fmt.Print("\r\n")
	fmt.Printf("CCR=%05b (XNZVC)\r\n", core.ConditionCodeRegister())
}
