package bench

import (
	"encoding/json"
	"io"
	"os"
)

type ExportData struct {
	Language     string    `json:"language"`
	Mode         string    `json:"mode"`
	Frames       int       `json:"frames"`
	TotalSeconds float64   `json:"total_seconds"`
	AvgFrameMs   float64   `json:"avg_frame_ms"`
	FPS          float64   `json:"fps"`
	Stats        Stats     `json:"stats"`
	FrameTimesMs []float64 `json:"frame_times_ms"`
}

func exportData(res *Result) ExportData {
	return ExportData{
		Language:     "Go",
		Mode:         string(res.Mode),
		Frames:       res.Frames,
		TotalSeconds: res.Total.Seconds(),
		AvgFrameMs:   millis(res.AvgFrame),
		FPS:          res.FPS,
		Stats:        res.Stats(),
		FrameTimesMs: res.FrameMillis(),
	}
}

// WriteJSON encodes one entry per result as an indented JSON array.
func WriteJSON(w io.Writer, results ...*Result) error {
	data := make([]ExportData, len(results))
	for i, res := range results {
		data[i] = exportData(res)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func ExportJSON(path string, results ...*Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteJSON(file, results...); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
