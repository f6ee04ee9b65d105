package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/orbitsim/internal/sim"
)

type ExportBody struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	FX     float64 `json:"fx"`
	FY     float64 `json:"fy"`
	Mass   float64 `json:"mass"`
	Charge float64 `json:"charge"`
}

type ExportFrame struct {
	Tick   uint64       `json:"tick"`
	Bodies []ExportBody `json:"bodies"`
}

type ExportData struct {
	Run    RunMetadata   `json:"run"`
	Frames []ExportFrame `json:"frames"`
}

func NewExportData(meta RunMetadata, frames []sim.Frame) ExportData {
	data := ExportData{
		Run:    meta,
		Frames: make([]ExportFrame, len(frames)),
	}

	for i, f := range frames {
		ef := ExportFrame{Tick: f.Tick, Bodies: make([]ExportBody, len(f.Bodies))}
		for j, b := range f.Bodies {
			ef.Bodies[j] = ExportBody{
				X: b.Pos.X, Y: b.Pos.Y,
				FX: b.Force.X, FY: b.Force.Y,
				Mass: b.Mass, Charge: b.Charge,
			}
		}
		data.Frames[i] = ef
	}

	return data
}

// WriteJSON encodes a run with its frames. NaN positions cannot be encoded
// and make it fail.
func WriteJSON(w io.Writer, meta RunMetadata, frames []sim.Frame) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(NewExportData(meta, frames))
}

func ExportJSON(path string, meta RunMetadata, frames []sim.Frame) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer closeFile(file, &err)

	return WriteJSON(file, meta, frames)
}
