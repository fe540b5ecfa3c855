package pipeline

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"gridforge/pkg/engine/grid"
	"gridforge/pkg/engine/noise"
	"gridforge/pkg/mapgen"
	"gridforge/pkg/mapgen/algorithm"
)

// File is a loaded pipeline definition: a linear chain of steps rooted
// at the last one, plus the file's top-level seed.
type File struct {
	Seed  int64
	Graph *Graph
	Root  NodeID
}

// Load reads and parses a pipeline file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse builds a graph from YAML pipeline text. Steps run top to
// bottom, each feeding the next; every step carries exactly one command
// key.
func Parse(data []byte) (*File, error) {
	var doc fileConfig
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing pipeline: %w", err)
	}
	if len(doc.Pipeline) == 0 {
		return nil, &mapgen.ConfigError{Msg: "pipeline file has no steps"}
	}

	g := &Graph{}
	input := None
	for i, step := range doc.Pipeline {
		name := step.Name
		if name == "" {
			name = fmt.Sprintf("step-%d", i)
		}
		cmd, err := step.command()
		if err != nil {
			return nil, fmt.Errorf("step %q: %w", name, err)
		}
		input = g.Add(name, cmd, input)
	}
	return &File{Seed: doc.Seed, Graph: g, Root: input}, nil
}

type fileConfig struct {
	Seed     int64        `yaml:"seed"`
	Pipeline []stepConfig `yaml:"pipeline"`
}

// stepConfig holds one command key per step. The key's name selects the
// command, its value configures it.
type stepConfig struct {
	Name string `yaml:"name"`
	Salt int64  `yaml:"salt"`

	Initialize         *initializeConfig         `yaml:"initialize"`
	Expressions        []exprConfig              `yaml:"expressions"`
	SampleNoise        *sampleNoiseConfig        `yaml:"sample_noise"`
	SampleNeighborhood *sampleNeighborhoodConfig `yaml:"sample_neighborhood"`
	OuterWalls         *outerWallsConfig         `yaml:"outer_walls"`
	DropFields         []string                  `yaml:"drop_fields"`
	IntervalSelect     *intervalConfig           `yaml:"interval_select"`
	ListInput          *listInputConfig          `yaml:"list_input"`
	SetOps             *setOpsConfig             `yaml:"set_ops"`
	SelectFall         *fallConfig               `yaml:"select_fall"`
	RandomRooms        *randomRoomsConfig        `yaml:"random_rooms"`
	RoomCenters        *sourceSaveConfig         `yaml:"room_centers"`
	SortList           *sortConfig               `yaml:"sort_list"`
	ListToSelection    *sourceSaveConfig         `yaml:"list_to_selection"`
	SelectionToList    *sourceSaveConfig         `yaml:"selection_to_list"`
	CarvePaths         *carveConfig              `yaml:"carve_paths"`
	CellularAutomata   *automataConfig           `yaml:"cellular_automata"`
}

func (s stepConfig) command() (mapgen.Command, error) {
	var cmds []mapgen.Command
	if s.Initialize != nil {
		cmds = append(cmds, mapgen.Initialize{Size: s.Initialize.Size.size()})
	}
	if s.Expressions != nil {
		cmd, err := exprCommand(s.Expressions)
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, cmd)
	}
	if s.SampleNoise != nil {
		cmds = append(cmds, mapgen.SampleNoise{
			Salt:  s.Salt,
			Noise: noise.OpenSimplex(),
			Save:  s.SampleNoise.Save,
		})
	}
	if s.SampleNeighborhood != nil {
		cmd, err := s.SampleNeighborhood.command()
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, cmd)
	}
	if s.OuterWalls != nil {
		cmds = append(cmds, mapgen.OuterWalls{Save: s.OuterWalls.Save})
	}
	if s.DropFields != nil {
		cmds = append(cmds, mapgen.DropFields{Fields: s.DropFields})
	}
	if s.IntervalSelect != nil {
		cmds = append(cmds, mapgen.IntervalSelect{
			Stride: s.IntervalSelect.Stride.coord(),
			Offset: s.IntervalSelect.Offset.coord(),
			Save:   s.IntervalSelect.Save,
		})
	}
	if s.ListInput != nil {
		cmds = append(cmds, mapgen.ListInput{
			Positions: coords(s.ListInput.Positions),
			Save:      s.ListInput.Save,
		})
	}
	if s.SetOps != nil {
		cmd, err := s.SetOps.command()
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, cmd)
	}
	if s.SelectFall != nil {
		cmd, err := s.SelectFall.command()
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, cmd)
	}
	if s.RandomRooms != nil {
		cmds = append(cmds, s.RandomRooms.command(s.Salt))
	}
	if s.RoomCenters != nil {
		cmds = append(cmds, mapgen.GetRoomCenters{Source: s.RoomCenters.Source, Save: s.RoomCenters.Save})
	}
	if s.SortList != nil {
		cmd, err := s.SortList.command()
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, cmd)
	}
	if s.ListToSelection != nil {
		cmds = append(cmds, mapgen.ListToSel{Source: s.ListToSelection.Source, Save: s.ListToSelection.Save})
	}
	if s.SelectionToList != nil {
		cmds = append(cmds, mapgen.SelToList{Source: s.SelectionToList.Source, Save: s.SelectionToList.Save})
	}
	if s.CarvePaths != nil {
		cmds = append(cmds, mapgen.CarvePaths{
			WeightField:  s.CarvePaths.Weights,
			Waypoints:    s.CarvePaths.Waypoints,
			MaxSlope:     s.CarvePaths.MaxSlope,
			VerticalSkew: s.CarvePaths.VerticalSkew,
			Save:         s.CarvePaths.Save,
		})
	}
	if s.CellularAutomata != nil {
		cmds = append(cmds, s.CellularAutomata.command())
	}

	switch len(cmds) {
	case 0:
		return nil, &mapgen.ConfigError{Msg: "no command key"}
	case 1:
		return cmds[0], nil
	default:
		return nil, &mapgen.ConfigError{Msg: fmt.Sprintf("%d command keys, want exactly one", len(cmds))}
	}
}

// triple is a YAML [x, y, z] literal.
type triple [3]int

func (t triple) coord() grid.Coord { return grid.Coord{X: t[0], Y: t[1], Z: t[2]} }
func (t triple) size() grid.Size   { return grid.Size{X: t[0], Y: t[1], Z: t[2]} }

func coords(ts []triple) []grid.Coord {
	out := make([]grid.Coord, len(ts))
	for i, t := range ts {
		out[i] = t.coord()
	}
	return out
}

type initializeConfig struct {
	Size triple `yaml:"size"`
}

type exprConfig struct {
	Name string `yaml:"name"`
	Expr string `yaml:"expr"`
	Type string `yaml:"type"`
}

func exprCommand(specs []exprConfig) (mapgen.Command, error) {
	cmd := mapgen.Expressions{}
	for _, spec := range specs {
		kind, err := parseKind(spec.Type)
		if err != nil {
			return nil, fmt.Errorf("expression %q: %w", spec.Name, err)
		}
		cmd.List = append(cmd.List, mapgen.ExprSpec{Name: spec.Name, Expr: spec.Expr, Type: kind})
	}
	return cmd, nil
}

func parseKind(s string) (grid.FieldKind, error) {
	switch s {
	case "int":
		return grid.KindInt, nil
	case "float":
		return grid.KindFloat, nil
	case "selection":
		return grid.KindSelection, nil
	default:
		return 0, &mapgen.ConfigError{Msg: fmt.Sprintf("field type %q: want int, float or selection", s)}
	}
}

type sampleNoiseConfig struct {
	Save string `yaml:"save"`
}

type sampleNeighborhoodConfig struct {
	Offsets []triple `yaml:"offsets"`
	Combine string   `yaml:"combine"`
	Base    float64  `yaml:"base"`
	Edge    string   `yaml:"edge"`
	Source  string   `yaml:"source"`
	Save    string   `yaml:"save"`
}

func (c sampleNeighborhoodConfig) command() (mapgen.Command, error) {
	edge := grid.EdgeIgnore
	if c.Edge != "" {
		var err error
		if edge, err = grid.ParseEdgeMode(c.Edge); err != nil {
			return nil, err
		}
	}
	return mapgen.SampleNeighborhood{
		Neighborhood: &mapgen.Neighborhood{
			Offsets: coords(c.Offsets),
			Combine: c.Combine,
			Base:    c.Base,
		},
		Edge:   edge,
		Source: c.Source,
		Save:   c.Save,
	}, nil
}

type outerWallsConfig struct {
	Save string `yaml:"save"`
}

type intervalConfig struct {
	Stride triple `yaml:"stride"`
	Offset triple `yaml:"offset"`
	Save   string `yaml:"save"`
}

type listInputConfig struct {
	Positions []triple `yaml:"positions"`
	Save      string   `yaml:"save"`
}

type setOpsConfig struct {
	Op   string `yaml:"op"`
	A    string `yaml:"a"`
	B    string `yaml:"b"`
	Save string `yaml:"save"`
}

func (c setOpsConfig) command() (mapgen.Command, error) {
	var op mapgen.SetOp
	switch c.Op {
	case "union":
		op = mapgen.SetUnion
	case "intersect":
		op = mapgen.SetIntersect
	case "difference":
		op = mapgen.SetDifference
	default:
		return nil, &mapgen.ConfigError{Msg: fmt.Sprintf("set operation %q: want union, intersect or difference", c.Op)}
	}
	return mapgen.SetOps{Op: op, A: c.A, B: c.B, Save: c.Save}, nil
}

type fallConfig struct {
	Source  string `yaml:"source"`
	Solid   string `yaml:"solid"`
	Axis    string `yaml:"axis"`
	Reverse bool   `yaml:"reverse"`
	Column  bool   `yaml:"column"`
	Save    string `yaml:"save"`
}

func (c fallConfig) command() (mapgen.Command, error) {
	axis, err := grid.ParseAxis(c.Axis)
	if err != nil {
		return nil, err
	}
	return mapgen.SelectFall{
		Source:  c.Source,
		Solid:   c.Solid,
		Axis:    axis,
		Reverse: c.Reverse,
		Column:  c.Column,
		Save:    c.Save,
	}, nil
}

type randomRoomsConfig struct {
	Count        int    `yaml:"count"`
	WithinMin    triple `yaml:"within_min"`
	WithinMax    triple `yaml:"within_max"`
	MinSize      triple `yaml:"min_size"`
	MaxSize      triple `yaml:"max_size"`
	AllowOverlap bool   `yaml:"allow_overlap"`
	Save         string `yaml:"save"`
	SaveUnion    string `yaml:"save_union"`
}

func (c randomRoomsConfig) command(salt int64) mapgen.Command {
	return mapgen.RandomRooms{
		Salt:         salt,
		Count:        c.Count,
		Within:       algorithm.Box{Min: c.WithinMin.coord(), Max: c.WithinMax.coord()},
		MinSize:      c.MinSize.coord(),
		MaxSize:      c.MaxSize.coord(),
		AllowOverlap: c.AllowOverlap,
		Save:         c.Save,
		SaveUnion:    c.SaveUnion,
	}
}

type sourceSaveConfig struct {
	Source string `yaml:"source"`
	Save   string `yaml:"save"`
}

type sortConfig struct {
	Source  string `yaml:"source"`
	Axis    string `yaml:"axis"`
	Reverse bool   `yaml:"reverse"`
	Save    string `yaml:"save"`
}

func (c sortConfig) command() (mapgen.Command, error) {
	axis, err := grid.ParseAxis(c.Axis)
	if err != nil {
		return nil, err
	}
	return mapgen.SortList{Source: c.Source, Axis: axis, Reverse: c.Reverse, Save: c.Save}, nil
}

type carveConfig struct {
	Weights      string  `yaml:"weights"`
	Waypoints    string  `yaml:"waypoints"`
	MaxSlope     float64 `yaml:"max_slope"`
	VerticalSkew float64 `yaml:"vertical_skew"`
	Save         string  `yaml:"save"`
}

type automataConfig struct {
	Source    string   `yaml:"source"`
	Steps     int      `yaml:"steps"`
	Offsets   []triple `yaml:"offsets"`
	Combine   string   `yaml:"combine"`
	Base      float64  `yaml:"base"`
	Result    string   `yaml:"result"`
	RegionMin *triple  `yaml:"region_min"`
	RegionMax *triple  `yaml:"region_max"`
	Save      string   `yaml:"save"`
}

func (c automataConfig) command() mapgen.Command {
	cmd := mapgen.CellularAutomata{
		Source: c.Source,
		Steps:  c.Steps,
		Rule: &mapgen.Rule{
			Neighborhood: &mapgen.Neighborhood{
				Offsets: coords(c.Offsets),
				Combine: c.Combine,
				Base:    c.Base,
			},
			Result: c.Result,
		},
		Save: c.Save,
	}
	if c.RegionMin != nil && c.RegionMax != nil {
		cmd.Region = &algorithm.Box{Min: c.RegionMin.coord(), Max: c.RegionMax.coord()}
	}
	return cmd
}
