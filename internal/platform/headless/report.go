package headless

import (
	"fmt"
	"io"

	"github.com/vovakirdan/cyberrunner/internal/games/runner"
)

// Report summarizes a headless run.
type Report struct {
	Seed        int64
	Ticks       int
	Seconds     float64
	Score       int64   // score when the run stopped
	Survived    float64 // seconds alive in the last run
	Best        int64   // best score across restarts
	Deaths      int
	Restarts    int
	Escalations int // escalations reached while running
	Level       int

	HazardSpeed     float64
	HazardDistance  float64
	BackgroundSpeed float64
	PlayerSpeed     float64
	ScoreRate       int64
	Period          float64 // current escalation interval
	NextEscalation  float64 // seconds left in the interval
}

// finish copies the final multipliers out of the game.
func (r *Report) finish(g *runner.Game) {
	d := g.Difficulty()
	r.Score = g.State().Score
	r.Survived = g.RunTime()
	r.Best = max(r.Best, r.Score)
	r.Level = d.Level()
	r.HazardSpeed = d.HazardSpeed()
	r.HazardDistance = d.HazardDistance()
	r.BackgroundSpeed = d.BackgroundSpeed()
	r.PlayerSpeed = d.PlayerSpeed()
	r.ScoreRate = d.ScoreRate()
	r.Period = d.Period()
	r.NextEscalation = max(0, d.Period()-d.Elapsed())
}

// Print writes the report as an aligned table.
func (r Report) Print(w io.Writer) {
	rows := []struct {
		name  string
		value string
	}{
		{"Seed", fmt.Sprint(r.Seed)},
		{"Ticks", fmt.Sprint(r.Ticks)},
		{"Simulated", fmt.Sprintf("%.2fs", r.Seconds)},
		{"Score", fmt.Sprint(r.Score)},
		{"Survived", fmt.Sprintf("%.2fs", r.Survived)},
		{"Best", fmt.Sprint(r.Best)},
		{"Deaths", fmt.Sprint(r.Deaths)},
		{"Restarts", fmt.Sprint(r.Restarts)},
		{"Escalations", fmt.Sprint(r.Escalations)},
		{"Level", fmt.Sprint(r.Level)},
		{"Hazard speed", fmt.Sprintf("x%.2f", r.HazardSpeed)},
		{"Hazard distance", fmt.Sprintf("x%.2f", r.HazardDistance)},
		{"Background speed", fmt.Sprintf("x%.2f", r.BackgroundSpeed)},
		{"Player speed", fmt.Sprintf("%.2f px/tick", r.PlayerSpeed)},
		{"Score rate", fmt.Sprintf("%d/s", r.ScoreRate)},
		{"Escalation period", fmt.Sprintf("%.2fs", r.Period)},
		{"Next escalation in", fmt.Sprintf("%.2fs", r.NextEscalation)},
	}

	width := 0
	for _, row := range rows {
		width = max(width, len(row.name))
	}

	fmt.Fprintln(w, "Simulation report")
	fmt.Fprintln(w)
	for _, row := range rows {
		fmt.Fprintf(w, "  %-*s  %s\n", width, row.name, row.value)
	}
}
