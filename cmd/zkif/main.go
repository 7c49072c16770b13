// zkif is a small toolbox for framed gadget interchange message files.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/consensys/gnark/logger"

	cs "github.com/vocdoni/zkif-gadget/constraint"
	"github.com/vocdoni/zkif-gadget/gadget"
	"github.com/vocdoni/zkif-gadget/wire"
)

var rootCmd = &cobra.Command{
	Use:   "zkif",
	Short: "Inspect gadget interchange message files.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if v, _ := cmd.Root().PersistentFlags().GetBool("verbose"); !v {
			logger.Set(zerolog.Nop())
		}
	},
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Print every message of a file.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		for {
			m, err := wire.ReadMessage(f)
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return err
			}
			printMessage(cmd.OutOrStdout(), m)
		}
	},
}

func printMessage(w io.Writer, m wire.Message) {
	fmt.Fprintf(w, "%s\n", m.Type())
	switch msg := m.(type) {
	case *wire.GadgetInstance:
		fmt.Fprintf(w, "  connections: %v\n", msg.ConnectionIDs)
		fmt.Fprintf(w, "  free variable id: %d\n", msg.FreeVariableID)
		for _, kv := range msg.Config {
			fmt.Fprintf(w, "  config %s: %x\n", kv.Key, kv.Value)
		}
	case *wire.Witness:
		fmt.Fprintf(w, "  incoming values: %x\n", msg.IncomingValues)
	case *wire.R1CSConstraints:
		printConstraints(w, msg)
	case *wire.AssignedVariables:
		printVariables(w, msg.Values)
	case *wire.GadgetReturn:
		fmt.Fprintf(w, "  free variable id after: %d\n", msg.FreeVariableID)
		if err := msg.Err(); err != nil {
			fmt.Fprintf(w, "  error: %v\n", err)
		}
		fmt.Fprintf(w, "  outgoing values: %x\n", msg.OutgoingValues)
	}
}

// printConstraints rebuilds the constraints over a throwaway system to reuse
// the cs string rendering. Wire ids are shown as-is by mapping connections
// positionally.
func printConstraints(w io.Writer, msg *wire.R1CSConstraints) {
	sys := cs.NewSystem(len(msg.Constraints))
	tr := gadget.NewTranslator(nil, 0, 1) // every nonzero id is "local": index == id
	for _, wc := range msg.Constraints {
		c, err := gadget.ImportConstraint(wc, sys, tr)
		if err != nil {
			fmt.Fprintf(w, "  (unreadable constraint: %v)\n", err)
			continue
		}
		fmt.Fprintf(w, "  %s\n", c.String(&wireResolver{sys}))
	}
}

func printVariables(w io.Writer, vv wire.VariableValues) {
	elements, err := vv.Elements()
	if err != nil {
		fmt.Fprintf(w, "  (unreadable values: %v)\n", err)
		return
	}
	for i, id := range vv.VariableIDs {
		fmt.Fprintf(w, "  %d = %s\n", id, elements[i].String())
	}
}

// wireResolver renders variables by wire id instead of region.
type wireResolver struct {
	sys *cs.System
}

func (r *wireResolver) CoeffToString(i int) string { return r.sys.CoeffToString(i) }
func (r *wireResolver) VariableToString(vID int) string {
	if vID == 0 {
		return "1"
	}
	return fmt.Sprintf("x%d", vID)
}

func main() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(inspectCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
