package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/textbits/alphamap"
	"github.com/textbits/alphamap/internal/logging"
)

func newCompileCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "compile <definition> <out>",
		Short: "Compile a textual alphabet definition into a binary block",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			in, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer in.Close()

			m, err := alphamap.Load(in)
			if err != nil {
				return fmt.Errorf("load %s: %w", args[0], err)
			}
			if err := m.Validate(); err != nil {
				return fmt.Errorf("check %s: %w", args[0], err)
			}

			out, err := os.Create(args[1])
			if err != nil {
				return err
			}
			if err := alphamap.WriteBin(m, out); err != nil {
				out.Close()
				return fmt.Errorf("write %s: %w", args[1], err)
			}
			if err := out.Close(); err != nil {
				return err
			}

			logging.Default().Info("alphabet map compiled",
				"ranges", m.Len(), "bytes", 8+8*m.Len(), "out", args[1])
			return nil
		},
	}
}
