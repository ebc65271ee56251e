package cli

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/nucleusforce/grid"
	"github.com/katalvlaran/nucleusforce/imaging"
)

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [image]",
		Short: "List the colors of an image and their connected regions",
		Long: `Prints every distinct color with its pixel count and number of
8-connected regions, marking the colors the boundary and marked commands
look for. A cell split into several regions drops the force of every
region not touching the nucleus.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cm, err := imaging.Load(a.fs, args[0])
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("loaded image", "path", cm.Source(), "colors", len(cm.Index()))
			return a.inspect(cmd.OutOrStdout(), cm)
		},
	}
}

type colorStat struct {
	color   imaging.RGB
	pixels  int
	regions int
	role    string
}

func (a *app) inspect(w io.Writer, cm *imaging.ColorMap) error {
	roles, err := a.colorRoles()
	if err != nil {
		return err
	}
	labels, err := cm.Labels()
	if err != nil {
		return err
	}

	var stats []colorStat
	for _, c := range cm.Index() {
		mask, err := cm.Isolate(c)
		if err != nil {
			return err
		}
		stats = append(stats, colorStat{
			color:   c,
			pixels:  mask.Count(),
			regions: len(grid.ConnectedComponents(mask, grid.Conn8)),
			role:    roles[c],
		})
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].pixels > stats[j].pixels })

	printTitle(w, cm.Source())
	printKeyValue(w, "size", fmt.Sprintf("%d×%d", labels.Cols(), labels.Rows()))
	printKeyValue(w, "colors", len(stats))
	for _, s := range stats {
		line := fmt.Sprintf("%7d px  %3d region(s)", s.pixels, s.regions)
		if s.role != "" {
			line += "  " + s.role
		}
		printKeyValue(w, s.color.String(), line)
		if s.regions > 1 && (s.role == "boundary.cell" || s.role == "marked.cell") {
			printWarning(w, "%s is split into %d regions", s.role, s.regions)
		}
	}
	return nil
}

// colorRoles maps each configured color to its config key.
func (a *app) colorRoles() (map[imaging.RGB]string, error) {
	bg, bc, bn, err := a.cfg.Boundary.Parse()
	if err != nil {
		return nil, err
	}
	mc, mn, mo, err := a.cfg.Marked.Parse()
	if err != nil {
		return nil, err
	}
	return map[imaging.RGB]string{
		bg: "boundary.background",
		bc: "boundary.cell",
		bn: "boundary.nucleus",
		mc: "marked.cell",
		mn: "marked.nucleus",
		mo: "marked.origin",
	}, nil
}
