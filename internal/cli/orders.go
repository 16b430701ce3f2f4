package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/posetal/posetal/order"
)

// NewOrdersCommand creates the orders command: enumerate the candidate
// priority orders over a metric name list.
func NewOrdersCommand(opts *RootOptions) *cobra.Command {
	var class string

	cmd := &cobra.Command{
		Use:   "orders <metric>...",
		Short: "Enumerate priority orders over metric names",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), ErrWriter: cmd.ErrOrStderr(), Verbose: opts.Verbose}

			var cls order.Class
			switch class {
			case "partial":
				cls = order.ClassPartial
			case "total":
				cls = order.ClassTotal
			case "weak":
				cls = order.ClassWeak
			default:
				return NewExitError(ExitCommandError, fmt.Sprintf("unknown class %q", class))
			}

			seq, err := order.Enumerate(args, cls)
			if err != nil {
				return WrapExitError(ExitFailure, "enumerating orders", err)
			}

			var described []string
			for p := range seq {
				described = append(described, describeOrder(p))
			}

			if opts.Format == "json" {
				return out.Success(map[string]any{
					"class":  class,
					"count":  len(described),
					"orders": described,
				})
			}

			var b strings.Builder
			fmt.Fprintf(&b, "%d %s orders over %v", len(described), class, args)
			for i, d := range described {
				fmt.Fprintf(&b, "\n  [%d] %s", i, d)
			}
			return out.Success(b.String())
		},
	}

	cmd.Flags().StringVar(&class, "class", "partial", "order class (partial|total|weak)")
	return cmd
}

// describeOrder renders an order by its covering edges, ties shown as
// classes.
func describeOrder(p *order.PreOrder) string {
	edges := p.CoveringEdges()
	classes := p.EquivalenceClasses()

	var parts []string
	for _, c := range classes {
		if len(c) > 1 {
			parts = append(parts, fmt.Sprintf("{%s}", strings.Join(c, "~")))
		}
	}
	for _, e := range edges {
		parts = append(parts, fmt.Sprintf("%s<%s", e.Low, e.High))
	}
	if len(parts) == 0 {
		return "(antichain)"
	}
	return strings.Join(parts, " ")
}
