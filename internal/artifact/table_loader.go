package artifact

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"fed-sentiment/internal/domain"
)

// TableLoader lee un CSV local completo, sin validar su forma.
type TableLoader struct{}

// NewTableLoader crea un TableLoader.
func NewTableLoader() *TableLoader {
	return &TableLoader{}
}

func (l *TableLoader) Load(ctx context.Context, ref domain.ArtifactRef) (domain.LoadedArtifact, error) {
	if err := ctx.Err(); err != nil {
		return domain.LoadedArtifact{}, fmt.Errorf("%w: %s: %v", ErrUnavailable, ref.Name, err)
	}
	if ref.IsRemote() {
		return domain.LoadedArtifact{}, fmt.Errorf("%w: table %q must be a local file", ErrUnsupportedKind, ref.Name)
	}

	f, err := os.Open(ref.Location)
	if err != nil {
		return domain.LoadedArtifact{}, fmt.Errorf("%w: %s: %v", ErrUnavailable, ref.Name, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return domain.LoadedArtifact{}, fmt.Errorf("%w: %s: parse csv: %v", ErrUnavailable, ref.Name, err)
	}

	table := domain.Table{Rows: [][]string{}}
	if len(records) > 0 {
		table.Header = records[0]
		if len(table.Header) > 0 {
			table.Header[0] = strings.TrimPrefix(table.Header[0], "\ufeff")
		}
		table.Rows = records[1:]
	}
	return domain.LoadedArtifact{Ref: ref, Table: &table}, nil
}
