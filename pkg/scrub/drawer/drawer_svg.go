package drawer

import (
	"fmt"
	"io"
	"os"
	"sort"
	"text/template"
	"time"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"
	"gopkg.in/go-playground/colors.v1" //nolint

	"scrubkit/internal/store"
	"scrubkit/pkg/scrub/measure"
)

// SVGDrawer is a drawer that creates a DOT file with the cleaning pipeline
// graph, ready for rendering with graphviz.
type SVGDrawer struct {
	graph    graph.Graph[string, string]
	store    store.CustomStore
	parents  map[string]string
	fileName string
}

// NewSVGDrawer creates a new SVG drawer writing to fileName.
func NewSVGDrawer(fileName string) *SVGDrawer {
	st := store.NewMemoryStore()

	return &SVGDrawer{
		fileName: fileName,
		store:    st,
		graph:    graph.NewWithStore(graph.StringHash, st, graph.Directed()),
		parents:  make(map[string]string),
	}
}

// AddStage adds a stage to the pipeline graph.
func (d *SVGDrawer) AddStage(name string) error {
	err := d.graph.AddVertex(name)
	if err != nil {
		return errors.Wrap(err, "unable to add vertex")
	}

	return nil
}

// AddLink adds a link between parent and child stages.
func (d *SVGDrawer) AddLink(parentName, childName string) error {
	err := d.graph.AddEdge(parentName, childName)
	if err != nil {
		return errors.Wrapf(err, "unable to add edge from %s to %s", parentName, childName)
	}

	d.parents[childName] = parentName

	return nil
}

// Draw creates a DOT file with the pipeline graph.
func (d *SVGDrawer) Draw() error {
	file, err := os.Create(d.fileName)
	if err != nil {
		return errors.Wrapf(err, "unable to create file %s", d.fileName)
	}
	defer file.Close()

	err = dot(d.graph, file)
	if err != nil {
		return errors.Wrapf(err, "unable to create dot file %s", d.fileName)
	}

	return nil
}

// SetTotalTime sets the total time on the stage.
func (d *SVGDrawer) SetTotalTime(stageName string, startTime time.Time) error {
	_, _, err := d.graph.VertexWithProperties(stageName)
	if err != nil {
		return errors.Wrap(err, "unable to get end vertex properties")
	}

	d.store.UpdateVertex(stageName, graph.VertexAttribute("xlabel", time.Since(startTime).String()))

	return nil
}

const maxRGB = 240

// AddMeasure adds measure to drawer. Edges are coloured on a blue to red
// gradient, red marking the stages that dropped the most records.
func (d *SVGDrawer) AddMeasure(msr measure.Measure) error {
	removedColors := make(map[int64]string)
	sortedRemoved := []int64{}

	for _, metric := range msr.AllMetrics() {
		removed := metric.Removed()
		if removed == 0 {
			continue
		}

		if _, ok := removedColors[removed]; ok {
			continue
		}

		removedColors[removed] = ""

		sortedRemoved = append(sortedRemoved, removed)
	}

	if len(sortedRemoved) > 0 {
		sort.Slice(sortedRemoved, func(i, j int) bool {
			return sortedRemoved[i] > sortedRemoved[j]
		})

		maxValue := sortedRemoved[0]
		minValue := sortedRemoved[len(sortedRemoved)-1]

		for curr := range removedColors {
			fraction := 1.0
			if maxValue > minValue {
				fraction = float64(curr-minValue) / float64(maxValue-minValue)
			}

			red := maxRGB * fraction
			blue := -maxRGB*fraction + maxRGB

			edgeColor, err := colors.RGB(uint8(red), 0, uint8(blue)) //nolint
			if err != nil {
				return errors.Wrap(err, "unable to get colour")
			}

			removedColors[curr] = edgeColor.ToHEX().String()
		}
	}

	err := d.updateMetrics(msr, removedColors)
	if err != nil {
		return errors.Wrap(err, "unable to update metrics")
	}

	return nil
}

func (d *SVGDrawer) updateMetrics(msr measure.Measure, removedColors map[int64]string) error {
	for name, metric := range msr.AllMetrics() {
		_, _, err := d.graph.VertexWithProperties(name)
		if err != nil {
			return errors.Wrap(err, "unable to get vertex properties")
		}

		d.store.UpdateVertex(name, func(properties *graph.VertexProperties) {
			if metric.Runs() > 0 {
				properties.Attributes["xlabel"] = fmt.Sprintf("-%d, %s", metric.Removed(), metric.AVGDuration())
			}

			if metric.GetTotalDuration() > 0 {
				properties.Attributes["xlabel"] += ", end: " + metric.GetTotalDuration().String()
			}
		})

		parent, ok := d.parents[name]
		if !ok || metric.Runs() == 0 {
			continue
		}

		edgeOpts := []func(*graph.EdgeProperties){
			graph.EdgeAttribute("label", fmt.Sprintf("%d records", metric.Entered())),
			graph.EdgeAttribute("fontcolor", "blue"),
		}

		if color, ok := removedColors[metric.Removed()]; ok && color != "" {
			edgeOpts = append(edgeOpts, graph.EdgeAttribute("color", color))
		}

		err = d.graph.UpdateEdge(parent, name, edgeOpts...)
		if err != nil {
			return errors.Wrap(err, "unable to update edge")
		}
	}

	return nil
}

//nolint:lll //this is a template
const dotTemplate = `strict {{.GraphType}} {
	{{range $s := .Statements}}
		"{{.Source}}" {{if .Target}}{{$.EdgeOperator}} "{{.Target}}" [ {{range $k, $v := .EdgeAttributes}}{{$k}}="{{$v}}", {{end}} weight={{.EdgeWeight}} ]{{else}}[ {{range $k, $v := .HTMLAttributes}}{{$k}}={{$v}}, {{end}} {{range $k, $v := .SourceAttributes}}{{$k}}="{{$v}}", {{end}} weight={{.SourceWeight}} ]{{end}};
	{{end}}
	}
	`

type description struct {
	GraphType    string
	EdgeOperator string
	Statements   []statement
}

type statement struct {
	Source           string
	Target           string
	SourceAttributes map[string]string
	HTMLAttributes   map[string]string
	EdgeAttributes   map[string]string
	SourceWeight     int
	EdgeWeight       int
}

func dot(g graph.Graph[string, string], wrt io.Writer) error {
	desc, err := generateDOT(g)
	if err != nil {
		return fmt.Errorf("failed to generate DOT description: %w", err)
	}

	return renderDOT(wrt, desc)
}

func generateDOT(gra graph.Graph[string, string]) (description, error) {
	desc := description{
		GraphType:    "graph",
		EdgeOperator: "--",
		Statements:   make([]statement, 0),
	}

	if gra.Traits().IsDirected {
		desc.GraphType = "digraph"
		desc.EdgeOperator = "->"
	}

	adjacencyMap, err := gra.AdjacencyMap()
	if err != nil {
		return desc, errors.Wrap(err, "unable to get adjacency map")
	}

	for vertex, adjacencies := range adjacencyMap {
		_, sourceProperties, err := gra.VertexWithProperties(vertex)
		if err != nil {
			return desc, errors.Wrap(err, "unable to get vertex properties")
		}

		htmlAttributes := make(map[string]string)

		if xlabel, ok := sourceProperties.Attributes["xlabel"]; ok {
			htmlAttributes["label"] = fmt.Sprintf(`<%s <BR /> <FONT POINT-SIZE="12">%s</FONT>>`, vertex, xlabel)

			delete(sourceProperties.Attributes, "xlabel")
		}

		stmt := statement{
			Source:           vertex,
			SourceWeight:     sourceProperties.Weight,
			SourceAttributes: sourceProperties.Attributes,
			HTMLAttributes:   htmlAttributes,
		}
		desc.Statements = append(desc.Statements, stmt)

		for adjacency, edge := range adjacencies {
			stmt := statement{
				Source:         vertex,
				Target:         adjacency,
				EdgeWeight:     edge.Properties.Weight,
				EdgeAttributes: edge.Properties.Attributes,
			}
			desc.Statements = append(desc.Statements, stmt)
		}
	}

	return desc, nil
}

func renderDOT(wrt io.Writer, desc description) error {
	tpl, err := template.New("dotTemplate").Parse(dotTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	err = tpl.Execute(wrt, desc)
	if err != nil {
		return errors.Wrap(err, "unable to execute template")
	}

	return nil
}

var _ Drawer = (*SVGDrawer)(nil)
