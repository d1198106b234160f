package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tsawler/posture"
	"github.com/tsawler/posture/internal/coords"
	"github.com/tsawler/posture/model"
)

var dumpCmd = &cobra.Command{
	Use:   "dump FILE",
	Short: "Print a tool's full geometry as YAML",
	Long: `Loads the document in full mode and prints its points, segments,
ellipses, angles, handles and hit zones. A document that fails halfway is
printed up to the fault and the command exits with an error.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tpl, loadErr := posture.Open(args[0]).Decode()

		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		if err := enc.Encode(newTemplateView(tpl)); err != nil {
			return err
		}
		if err := enc.Close(); err != nil {
			return err
		}

		if loadErr != nil {
			return fmt.Errorf("%s: %w", args[0], loadErr)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}

// The view types give the template a stable YAML shape. Points are written
// in document coordinate syntax and enums by name. Unconfigured lists the
// points InitialConfiguration left at the origin.

type templateView struct {
	Points       []string      `yaml:"points"`
	Unconfigured []int         `yaml:"unconfigured,flow,omitempty"`
	Segments     []segmentView `yaml:"segments,omitempty"`
	Ellipses     []ellipseView `yaml:"ellipses,omitempty"`
	Angles       []angleView   `yaml:"angles,omitempty"`
	Handles      []handleView  `yaml:"handles,omitempty"`
	HitZones     []hitZoneView `yaml:"hitZones,omitempty"`
	Bounds       *model.BBox   `yaml:"bounds,omitempty"`
}

type segmentView struct {
	Points     [2]int `yaml:"points,flow"`
	Name       string `yaml:"name,omitempty"`
	Style      string `yaml:"style"`
	Width      int    `yaml:"width"`
	ArrowBegin bool   `yaml:"arrowBegin,omitempty"`
	ArrowEnd   bool   `yaml:"arrowEnd,omitempty"`
}

type ellipseView struct {
	Center int    `yaml:"center"`
	Radius int    `yaml:"radius"`
	Name   string `yaml:"name,omitempty"`
	Style  string `yaml:"style"`
	Width  int    `yaml:"width"`
}

type angleView struct {
	Points        [3]int `yaml:"points,flow"`
	Name          string `yaml:"name,omitempty"`
	Signed        bool   `yaml:"signed,omitempty"`
	CCW           bool   `yaml:"ccw"`
	Supplementary bool   `yaml:"supplementary,omitempty"`
	Radius        int    `yaml:"radius"`
}

type handleView struct {
	Type       string          `yaml:"type"`
	Reference  int             `yaml:"reference"`
	Trackable  bool            `yaml:"trackable,omitempty"`
	Constraint *constraintView `yaml:"constraint,omitempty"`
	Impacts    []impactView    `yaml:"impacts,omitempty"`
}

type constraintView struct {
	Kind     string  `yaml:"kind"`
	Points   []int   `yaml:"points,flow,omitempty"`
	Position string  `yaml:"position,omitempty"`
	Step     float64 `yaml:"step,omitempty"`
}

type impactView struct {
	Kind   string `yaml:"kind"`
	Points []int  `yaml:"points,flow"`
}

type hitZoneView struct {
	Kind   string `yaml:"kind"`
	Points []int  `yaml:"points,flow"`
}

func newTemplateView(tpl *model.Template) templateView {
	v := templateView{Points: make([]string, 0, len(tpl.Points))}
	for i, p := range tpl.Points {
		v.Points = append(v.Points, coords.FormatPoint(p))
		if p.IsZero() {
			v.Unconfigured = append(v.Unconfigured, i)
		}
	}
	if len(tpl.Points) > 0 {
		b := tpl.Bounds()
		v.Bounds = &b
	}

	for _, s := range tpl.Segments {
		v.Segments = append(v.Segments, segmentView{
			Points:     [2]int{s.Start, s.End},
			Name:       s.Name,
			Style:      s.Style.String(),
			Width:      s.Width,
			ArrowBegin: s.ArrowBegin,
			ArrowEnd:   s.ArrowEnd,
		})
	}
	for _, e := range tpl.Ellipses {
		v.Ellipses = append(v.Ellipses, ellipseView{
			Center: e.Center,
			Radius: e.Radius,
			Name:   e.Name,
			Style:  e.Style.String(),
			Width:  e.Width,
		})
	}
	for _, a := range tpl.Angles {
		v.Angles = append(v.Angles, angleView{
			Points:        [3]int{a.Origin, a.Leg1, a.Leg2},
			Name:          a.Name,
			Signed:        a.Signed,
			CCW:           a.CCW,
			Supplementary: a.Supplementary,
			Radius:        a.Radius,
		})
	}
	for _, h := range tpl.Handles {
		hv := handleView{
			Type:      h.Type.String(),
			Reference: h.Reference,
			Trackable: h.Trackable,
		}
		if c := h.Constraint; c != nil {
			cv := &constraintView{Kind: c.Kind.String(), Points: c.Points, Step: c.Step}
			if c.Kind == model.ConstraintLineSlide {
				cv.Position = c.Position.String()
			}
			hv.Constraint = cv
		}
		for _, imp := range h.Impacts {
			hv.Impacts = append(hv.Impacts, impactView{Kind: imp.Kind.String(), Points: imp.Points})
		}
		v.Handles = append(v.Handles, hv)
	}
	for _, z := range tpl.HitZones {
		v.HitZones = append(v.HitZones, hitZoneView{Kind: z.Kind().String(), Points: z.PointRefs()})
	}
	return v
}
