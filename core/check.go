package core

import (
	"io/fs"

	cfg "github.com/automoto/tangent/config"
	"github.com/automoto/tangent/shared/leveldata"
)

// LevelReport summarizes one level file as the game would load it.
type LevelReport struct {
	Number    int
	Path      string
	Coins     int
	Platforms int
	Exits     int
	Err       error
}

// CheckLevels loads every configured level from levels without starting a
// session and reports what each one contains.
func CheckLevels(levels fs.FS) []LevelReport {
	reports := make([]LevelReport, 0, cfg.Level.Count)
	for n := 1; n <= cfg.Level.Count; n++ {
		r := LevelReport{Number: n, Path: LevelPath(n)}
		m, err := leveldata.Open(levels, r.Path)
		if err != nil {
			r.Err = err
		} else {
			r.Path = m.Path
			r.Coins = len(m.Coins)
			r.Platforms = len(m.Platforms)
			r.Exits = len(m.Exits)
		}
		reports = append(reports, r)
	}
	return reports
}

// Failed counts reports that carry an error.
func Failed(reports []LevelReport) int {
	n := 0
	for _, r := range reports {
		if r.Err != nil {
			n++
		}
	}
	return n
}
