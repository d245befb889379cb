package knowledge

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
)

//go:embed data/world_cup.csv
var worldCupCSV []byte

// Edition is one FIFA World Cup tournament
type Edition struct {
	Year      int
	Host      string
	Champion  string
	RunnerUp  string
	TopScorer string
}

// WorldCups parses the embedded World Cup dataset, oldest edition first
func WorldCups() ([]Edition, error) {
	r := csv.NewReader(bytes.NewReader(worldCupCSV))
	r.FieldsPerRecord = 5

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse world cup dataset: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("world cup dataset is empty")
	}

	editions := make([]Edition, 0, len(records)-1)
	for i, rec := range records[1:] {
		year, err := strconv.Atoi(rec[0])
		if err != nil {
			return nil, fmt.Errorf("world cup dataset row %d: invalid year %q", i+2, rec[0])
		}
		editions = append(editions, Edition{
			Year:      year,
			Host:      rec[1],
			Champion:  rec[2],
			RunnerUp:  rec[3],
			TopScorer: rec[4],
		})
	}
	return editions, nil
}

// DatasetPrompt renders the dataset in the compact pipe format fed to the model:
// Year|Host|Champion|Runner-Up|TopScorer, one edition per line.
func DatasetPrompt(editions []Edition) string {
	var b strings.Builder
	b.WriteString("Copa do Mundo FIFA - Dados Oficiais:\n")
	b.WriteString("COPAS:\n")
	for _, e := range editions {
		fmt.Fprintf(&b, "%d|%s|%s|%s|%s\n", e.Year, e.Host, e.Champion, e.RunnerUp, e.TopScorer)
	}
	return b.String()
}
