package satsave

import "github.com/lordralinc/sat-sav-parse/cursor"

// LevelInfo is one named entry of a LevelGroupingGrid.
type LevelInfo struct {
	Name  string
	Value uint32
}

// LevelGroupingGrid is one of the body's five fixed grid entries
// ("MainGrid", "LandscapeGrid", "ExplorationGrid", "FoliageGrid",
// "HLOD0_256m_1023m").
type LevelGroupingGrid struct {
	GridName string
	Unknown1 uint32
	Unknown2 uint32
	Levels   []LevelInfo
}

func decodeLevelGroupingGrid(r *cursor.Reader) (LevelGroupingGrid, error) {
	name, err := r.String()
	if err != nil {
		return LevelGroupingGrid{}, err
	}
	u1, err := r.U32()
	if err != nil {
		return LevelGroupingGrid{}, err
	}
	u2, err := r.U32()
	if err != nil {
		return LevelGroupingGrid{}, err
	}
	count, err := r.U32()
	if err != nil {
		return LevelGroupingGrid{}, err
	}
	levels := make([]LevelInfo, 0, count)
	for i := uint32(0); i < count; i++ {
		levelName, err := r.String()
		if err != nil {
			return LevelGroupingGrid{}, err
		}
		value, err := r.U32()
		if err != nil {
			return LevelGroupingGrid{}, err
		}
		levels = append(levels, LevelInfo{Name: levelName, Value: value})
	}
	return LevelGroupingGrid{GridName: name, Unknown1: u1, Unknown2: u2, Levels: levels}, nil
}

func encodeLevelGroupingGrid(w *cursor.Writer, g LevelGroupingGrid) {
	w.AddString(g.GridName)
	w.AddU32(g.Unknown1)
	w.AddU32(g.Unknown2)
	w.AddU32(uint32(len(g.Levels)))
	for _, l := range g.Levels {
		w.AddString(l.Name)
		w.AddU32(l.Value)
	}
}
