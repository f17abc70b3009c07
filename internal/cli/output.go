package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mcoot/geoquiz/internal/api/response"
	"github.com/mcoot/geoquiz/internal/web/components"
)

// Output handles formatting output based on the configured format
type Output struct {
	w      io.Writer
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(w io.Writer, format string) *Output {
	return &Output{w: w, format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		o.printJSON(map[string]string{"message": msg})
	} else {
		_, _ = fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(o.w, format, args...)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case response.Session:
		o.printSession(v)
	case response.GuessResult:
		o.printGuessResult(v)
	case response.Catalog:
		o.printCatalog(v)
	case response.Entity:
		o.printEntity(v)
	case response.Regions:
		o.printRegions(v)
	case response.Progress:
		o.printProgress(v)
	case response.Names:
		o.printNames(v)
	case response.MapLayers:
		o.printMapLayers(v)
	case response.Suggestions:
		o.printSuggestions(v)
	case response.Health:
		o.printHealth(v)
	case CheckResult:
		o.printCheckResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// CheckResult is the output of the local check command
type CheckResult struct {
	EntityID int    `json:"entity_id"`
	Name     string `json:"name"`
	Answer   string `json:"answer"`
	Correct  bool   `json:"correct"`
	Alias    string `json:"matched_alias,omitempty"`
}

func (o *Output) printSession(s response.Session) {
	o.printf("Session: %s\n", s.ID)
	o.printf("Status: %s", s.Status)
	if s.EndReason != "" {
		o.printf(" (%s)", strings.ReplaceAll(s.EndReason, "_", " "))
	}
	o.printf("\n")
	o.printf("Score: %d/%d\n", s.CorrectCount, s.TotalEntities)
	if s.UnlimitedLives {
		o.printf("Lives: unlimited\n")
	} else {
		o.printf("Lives: %d/%d\n", s.Lives, s.MaxLives)
	}
	if s.RemainingSeconds != nil {
		o.printf("Time left: %s\n", components.FormatClock(*s.RemainingSeconds))
	} else {
		o.printf("Elapsed: %s\n", components.FormatClock(s.ElapsedSeconds))
	}
	if s.SelectedEntityID != nil {
		o.printf("Selected: %d\n", *s.SelectedEntityID)
	}
}

func (o *Output) printGuessResult(r response.GuessResult) {
	switch r.Outcome {
	case "correct":
		o.printf("Correct! (%s)\n", r.Region)
	case "incorrect":
		if r.LivesRemaining != nil && *r.LivesRemaining >= 0 {
			o.printf("Wrong. Lives left: %d\n", *r.LivesRemaining)
		} else {
			o.printf("Wrong.\n")
		}
	default:
		o.printf("No entity selected\n")
	}
	o.printf("\n")
	o.printSession(r.Session)
}

func (o *Output) printCatalog(c response.Catalog) {
	for _, e := range c.Entities {
		o.printf("%4d  %-40s %s / %s\n", e.ID, e.Name, e.Region, e.Subregion)
	}
	o.printf("%d entities\n", c.Count)
}

func (o *Output) printEntity(e response.Entity) {
	o.printf("%d: %s\n", e.ID, e.Name)
	o.printf("Region: %s / %s\n", e.Region, e.Subregion)
	if e.Color != "" {
		o.printf("Color: %s\n", e.Color)
	}
	if e.Marker != nil {
		o.printf("Marker: %.4f, %.4f\n", e.Marker.Latitude, e.Marker.Longitude)
	}
	if len(e.Aliases) > 1 {
		o.printf("Also accepted: %s\n", strings.Join(e.Aliases[1:], ", "))
	}
}

func (o *Output) printRegions(r response.Regions) {
	for _, region := range r.Regions {
		total := 0
		for _, sub := range region.Subregions {
			total += len(sub.Members)
		}
		o.printf("%s (%d) %s\n", region.Name, total, region.Color)
		for _, sub := range region.Subregions {
			o.printf("  %s (%d)\n", sub.Name, len(sub.Members))
		}
	}
}

func (o *Output) printProgress(p response.Progress) {
	for _, r := range p.Regions {
		o.printf("%-10s %3d/%-3d\n", r.Region, r.Guessed, r.Total)
	}
}

func (o *Output) printNames(n response.Names) {
	for _, name := range n.Names {
		o.printf("%s\n", name)
	}
	o.printf("%d left\n", n.Count)
}

func (o *Output) printMapLayers(m response.MapLayers) {
	o.printf("%d polygons, %d markers\n", len(m.Polygons), len(m.Markers))
	for _, marker := range m.Markers {
		o.printf("%4d  %-24s %9.4f %9.4f\n", marker.ID, marker.Name, marker.Latitude, marker.Longitude)
	}
}

func (o *Output) printSuggestions(s response.Suggestions) {
	if len(s.Suggestions) == 0 {
		o.printf("No matches for %q\n", s.Query)
		return
	}
	for _, sug := range s.Suggestions {
		o.printf("%4d  %s (%s)\n", sug.ID, sug.Name, sug.Region)
	}
}

func (o *Output) printHealth(h response.Health) {
	o.printf("Status: %s\n", h.Status)
	o.printf("Sessions: %d\n", h.Sessions)
	o.printf("Catalog entities: %d\n", h.CatalogEntities)
}

func (o *Output) printCheckResult(c CheckResult) {
	if c.Correct {
		o.printf("%q is correct for %s (matched %q)\n", c.Answer, c.Name, c.Alias)
	} else {
		o.printf("%q is not an answer for %s\n", c.Answer, c.Name)
	}
}
