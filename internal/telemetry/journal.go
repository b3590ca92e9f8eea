package telemetry

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/appengine-ltd/campfire-cantos/internal/game"
)

// Entry is one journal row: a processed command and the state it left.
type Entry struct {
	Session   string `csv:"session"`
	Turn      int    `csv:"turn"`
	Command   string `csv:"command"`
	Arg       string `csv:"arg"`
	Performed bool   `csv:"performed"`
	Hours     int    `csv:"hours"`
	Clock     int    `csv:"clock"`
	Location  string `csv:"location"`

	Health   int `csv:"health"`
	Hunger   int `csv:"hunger"`
	Thirst   int `csv:"thirst"`
	BodyTemp int `csv:"body_temp"`

	Weather string `csv:"weather"`
	Season  string `csv:"season"`
	Event   string `csv:"event"`
	FireLit bool   `csv:"fire_lit"`
	Comfort int    `csv:"comfort"`

	// Tags joined with "|".
	Tags      string `csv:"tags"`
	Collapsed bool   `csv:"collapsed"`
}

// EntryFor captures the state of g after outcome o.
func EntryFor(session string, turn int, arg string, g *game.Game, o game.Outcome) Entry {
	p := g.Player
	event := ""
	if g.Climate.ActiveEvent != nil {
		event = g.Climate.ActiveEvent.Event.Name
	}
	tags := make([]string, 0, len(o.Events))
	for _, t := range o.Tags() {
		tags = append(tags, string(t))
	}
	return Entry{
		Session:   session,
		Turn:      turn,
		Command:   string(o.Command),
		Arg:       arg,
		Performed: o.Performed,
		Hours:     o.Hours,
		Clock:     p.Hours,
		Location:  g.Location().Name,
		Health:    p.Health,
		Hunger:    p.Hunger,
		Thirst:    p.Thirst,
		BodyTemp:  p.BodyTemp,
		Weather:   g.Climate.Weather.Name,
		Season:    g.Climate.Season().Name,
		Event:     event,
		FireLit:   p.FireLit,
		Comfort:   p.CampComfort,
		Tags:      strings.Join(tags, "|"),
		Collapsed: g.Collapsed(),
	}
}

// Journal appends entries to journal-<session>.csv and keeps them for the
// run summary. A journal opened with an empty dir keeps entries in memory
// only.
type Journal struct {
	session string
	dir     string
	file    *os.File
	entries []Entry

	headerWritten bool
}

func NewJournal(dir, session string) (*Journal, error) {
	j := &Journal{session: session, dir: dir}
	if dir == "" {
		return j, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating journal directory: %w", err)
	}
	f, err := os.Create(filepath.Join(dir, "journal-"+session+".csv"))
	if err != nil {
		return nil, fmt.Errorf("creating journal: %w", err)
	}
	j.file = f
	return j, nil
}

// Write records an entry and appends it to the CSV file when one is open.
func (j *Journal) Write(e Entry) error {
	if j == nil {
		return nil
	}
	j.entries = append(j.entries, e)
	if j.file == nil {
		return nil
	}

	records := []Entry{e}
	if !j.headerWritten {
		if err := gocsv.Marshal(records, j.file); err != nil {
			return fmt.Errorf("writing journal: %w", err)
		}
		j.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, j.file); err != nil {
		return fmt.Errorf("writing journal: %w", err)
	}
	return nil
}

func (j *Journal) Summary() Summary {
	if j == nil {
		return Summary{}
	}
	s := Summarize(j.entries)
	s.Session = j.session
	return s
}

// WriteSummary writes the run summary next to the journal.
func (j *Journal) WriteSummary() error {
	if j == nil || j.dir == "" {
		return nil
	}
	path := filepath.Join(j.dir, "summary-"+j.session+".csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating summary: %w", err)
	}
	defer f.Close()
	if err := gocsv.Marshal([]Summary{j.Summary()}, f); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	return nil
}

func (j *Journal) Path() string {
	if j == nil || j.file == nil {
		return ""
	}
	return j.file.Name()
}

func (j *Journal) Close() error {
	if j == nil || j.file == nil {
		return nil
	}
	err := j.file.Close()
	j.file = nil
	return err
}
