// trajectory/io_json.go
package trajectory

import (
	"encoding/json"
	"fmt"
	"os"
)

const trajectoryLayoutTag = "svgd_trajectory_v1"

// File is the on-disk trajectory layout.
type File struct {
	Layout string  `json:"layout"`
	RunID  string  `json:"run_id"`
	N      int     `json:"n"`
	D      int     `json:"d"`
	Stride int     `json:"stride"`
	Frames []Frame `json:"frames"`
}

// SaveJSON writes the recorded trajectory to path, going through a temp
// file so an interrupted write cannot leave a torn trajectory behind.
func (r *Recorder) SaveJSON(path string) error {
	payload := File{
		Layout: trajectoryLayoutTag,
		RunID:  r.RunID,
		N:      r.n,
		D:      r.d,
		Stride: r.Stride,
		Frames: r.Frames(),
	}
	b, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("trajectory: encode %s: %w", path, err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// LoadJSON reads a trajectory written by SaveJSON.
func LoadJSON(path string) (*File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f File
	if err := json.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("trajectory: decode %s: %w", path, err)
	}
	return &f, nil
}
