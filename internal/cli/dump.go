package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/textbits/alphamap"
)

func newDumpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <block>",
		Short: "Dump a binary alphabet-map block as text",
		Long: `Decode a binary alphabet-map block and print it in the textual definition
format, one [begin,end] line per range.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			m, err := alphamap.ReadBin(f)
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
			if m == nil {
				return fmt.Errorf("%s: no alphabet-map block found", args[0])
			}
			for _, r := range m.Ranges() {
				fmt.Fprintf(cmd.OutOrStdout(), "[%X,%X]\n", uint32(r.Begin), uint32(r.End))
			}
			return nil
		},
	}
}
