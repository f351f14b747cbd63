package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/textbits/alphamap"
	"github.com/textbits/alphamap/internal/logging"
)

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <definition>",
		Short: "Validate a textual alphabet definition",
		Long: `Load a textual alphabet definition, report its range count and code-space
size, and verify that ranges are strictly increasing and disjoint.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			m, err := alphamap.Load(f)
			if err != nil {
				return fmt.Errorf("load %s: %w", args[0], err)
			}

			logger := logging.Default()
			logger.Info("alphabet definition loaded",
				"file", args[0], "ranges", m.Len(), "codes", m.Size())
			for _, r := range m.Ranges() {
				logger.Debug("range",
					"begin", fmt.Sprintf("%X", uint32(r.Begin)),
					"end", fmt.Sprintf("%X", uint32(r.End)))
			}
			if err := m.Validate(); err != nil {
				return fmt.Errorf("check %s: %w", args[0], err)
			}
			return nil
		},
	}
}
