package cli

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"sort"

	"github.com/spf13/cobra"

	"github.com/notargets/strengl/combination"
	"github.com/notargets/strengl/results"
)

// NewCombineCommand creates the combine command
func NewCombineCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "combine",
		Short: "Superpose load cases with the configured combinations",
		Long: `Combine reads the result cases and load combinations from the config
file, superposes every result present in all cases a combination references
and prints one table per combination and result kind.

Results are rotated into frame.dcm (nodes, 0D and 1D elements) and by
frame.angle_deg (2D elements) after combination.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := GetConfig(cmd.Context())
			return runCombine(cmd.OutOrStdout(), cfg, GetLogger(cmd.Context()))
		},
	}
}

// resultSet indexes one result kind by entity ID, then by load case name
type resultSet[T results.Result] map[results.ID]map[string]T

func (s resultSet[T]) put(name string, r T) error {
	id := r.Identity().ID
	if !id.Valid() {
		return fmt.Errorf("case %s: %s id must be positive, got %d", name, r.Kind(), id)
	}
	if s[id] == nil {
		s[id] = make(map[string]T)
	}
	if _, dup := s[id][name]; dup {
		return fmt.Errorf("case %s: duplicate %s id %d", name, r.Kind(), id)
	}
	s[id][name] = r
	return nil
}

func (s resultSet[T]) ids() []results.ID {
	ids := make([]results.ID, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

type caseResults struct {
	nodes resultSet[*results.Node]
	e0    resultSet[*results.Element0D]
	e1    resultSet[*results.Element1D]
	e2    resultSet[*results.Element2D]
}

func buildCases(cases map[string]Case) (*caseResults, error) {
	cr := &caseResults{
		nodes: resultSet[*results.Node]{},
		e0:    resultSet[*results.Element0D]{},
		e1:    resultSet[*results.Element1D]{},
		e2:    resultSet[*results.Element2D]{},
	}
	names := make([]string, 0, len(cases))
	for name := range cases {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		c := cases[name]
		ident := func(id int) results.Identity {
			return results.Identity{Subcase: c.Subcase, ID: results.ID(id), Source: c.Source}
		}
		for _, e := range c.Nodes {
			n, err := results.NewNode(ident(e.ID), e.Translations, e.Rotations)
			if err != nil {
				return nil, fmt.Errorf("case %s node %d: %w", name, e.ID, err)
			}
			if err := cr.nodes.put(name, n); err != nil {
				return nil, err
			}
		}
		for _, e := range c.Element0D {
			r, err := results.NewElement0D(ident(e.ID), e.Forces, e.Moments)
			if err != nil {
				return nil, fmt.Errorf("case %s element0d %d: %w", name, e.ID, err)
			}
			if err := cr.e0.put(name, r); err != nil {
				return nil, err
			}
		}
		for _, e := range c.Element1D {
			r, err := results.NewElement1D(ident(e.ID), e.Forces, e.MomentsA, e.MomentsB)
			if err != nil {
				return nil, fmt.Errorf("case %s element1d %d: %w", name, e.ID, err)
			}
			if err := cr.e1.put(name, r); err != nil {
				return nil, err
			}
		}
		for _, e := range c.Element2D {
			r, err := results.NewElement2D(ident(e.ID), e.Forces, e.Moments, e.Shears)
			if err != nil {
				return nil, fmt.Errorf("case %s element2d %d: %w", name, e.ID, err)
			}
			if err := cr.e2.put(name, r); err != nil {
				return nil, err
			}
		}
	}
	return cr, nil
}

// section is one rendered table: a combination applied to one result kind
type section struct {
	Title  string
	Header []string
	Rows   []row
}

type row struct {
	ID     results.ID
	Values []float64
}

func combineSet[T results.Result](logger *slog.Logger, kind results.Kind, set resultSet[T],
	combos []combination.Combination, transform func(T) T) ([]section, error) {
	var out []section
	for _, c := range combos {
		sec := section{Title: fmt.Sprintf("%s %s", kind, c.ID)}
		if c.Description != "" {
			sec.Title += ": " + c.Description
		}
		skipped := 0
		for _, id := range set.ids() {
			cases := set[id]
			if !combination.Covers(c, cases) {
				skipped++
				continue
			}
			r, err := combination.Apply(c, cases)
			if err != nil {
				return nil, fmt.Errorf("%s %d: %w", kind, id, err)
			}
			if transform != nil {
				r = transform(r)
			}
			comps := r.Components()
			if sec.Header == nil {
				sec.Header = make([]string, len(comps))
				for i, cp := range comps {
					sec.Header[i] = cp.Name
				}
			}
			values := make([]float64, len(comps))
			for i, cp := range comps {
				values[i] = cp.Value
			}
			sec.Rows = append(sec.Rows, row{ID: id, Values: values})
		}
		if skipped > 0 {
			logger.Debug("skipped ids missing a referenced case",
				"combination", c.ID, "kind", kind.String(), "count", skipped)
		}
		if len(sec.Rows) == 0 {
			continue
		}
		logger.Debug("combined", "combination", c.ID, "kind", kind.String(), "rows", len(sec.Rows))
		out = append(out, sec)
	}
	return out, nil
}

func runCombine(w io.Writer, cfg *Config, logger *slog.Logger) error {
	if len(cfg.Combinations) == 0 {
		return fmt.Errorf("no combinations configured")
	}
	combos := make([]combination.Combination, len(cfg.Combinations))
	for i, ce := range cfg.Combinations {
		combos[i] = ce.Combination()
	}

	cr, err := buildCases(cfg.Cases)
	if err != nil {
		return err
	}
	logger.Debug("loaded cases", "cases", len(cfg.Cases), "nodes", len(cr.nodes),
		"element0d", len(cr.e0), "element1d", len(cr.e1), "element2d", len(cr.e2))

	R, err := cfg.Frame.Rotation()
	if err != nil {
		return err
	}
	var nodeFrame func(*results.Node) *results.Node
	var e0Frame func(*results.Element0D) *results.Element0D
	var e1Frame func(*results.Element1D) *results.Element1D
	if R != nil {
		nodeFrame = func(r *results.Node) *results.Node { return results.Rotate(r, *R) }
		e0Frame = func(r *results.Element0D) *results.Element0D { return results.Rotate(r, *R) }
		e1Frame = func(r *results.Element1D) *results.Element1D { return results.Rotate(r, *R) }
	}
	var e2Frame func(*results.Element2D) *results.Element2D
	if cfg.Frame.AngleDeg != 0 {
		angle := cfg.Frame.AngleDeg * math.Pi / 180
		e2Frame = func(r *results.Element2D) *results.Element2D { return r.Rotate(angle) }
	}

	var sections []section
	add := func(s []section, err error) error {
		if err != nil {
			return err
		}
		sections = append(sections, s...)
		return nil
	}
	if err := add(combineSet(logger, results.KindNode, cr.nodes, combos, nodeFrame)); err != nil {
		return err
	}
	if err := add(combineSet(logger, results.Kind0D, cr.e0, combos, e0Frame)); err != nil {
		return err
	}
	if err := add(combineSet(logger, results.Kind1D, cr.e1, combos, e1Frame)); err != nil {
		return err
	}
	if err := add(combineSet(logger, results.Kind2D, cr.e2, combos, e2Frame)); err != nil {
		return err
	}

	if len(sections) == 0 {
		logger.Warn("no result is present in every case of any combination")
	}
	return renderSections(w, sections, cfg.Output)
}
