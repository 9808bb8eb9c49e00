package prices

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/latinta/dashboard/pkg/storage"
	"github.com/latinta/dashboard/pkg/tabular"
)

const csvContentType = "text/csv; charset=utf-8"

type repo struct {
	storage storage.System
	key     string
	sheet   string
	logger  *slog.Logger

	// mu serializes read-modify-write cycles within this process.
	mu sync.Mutex
}

// New creates a price system over the CSV blob stored at key.
// Exports are written to a sheet with the given name.
func New(store storage.System, key, sheet string, logger *slog.Logger) System {
	return &repo{
		storage: store,
		key:     key,
		sheet:   sheet,
		logger:  logger.With("system", "prices"),
	}
}

func (r *repo) Handler(maxUploadSize int64, exportName string) *Handler {
	return NewHandler(r, r.logger, maxUploadSize, exportName)
}

func (r *repo) Source() string {
	return r.storage.Source()
}

func (r *repo) List(ctx context.Context, filters Filters) ([]Record, error) {
	_, records, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	if filters.Empty() {
		return records, nil
	}

	out := make([]Record, 0, len(records))
	for _, rec := range records {
		if filters.Match(rec) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *repo) Stats(ctx context.Context) (*Stats, error) {
	_, records, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	s := computeStats(records)
	return &s, nil
}

func (r *repo) Create(ctx context.Context, record Record) (*Record, error) {
	record = record.clone()
	if err := record.normalize(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	columns, records, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	if slices.ContainsFunc(records, func(x Record) bool { return x.Matches(record.Key()) }) {
		return nil, fmt.Errorf("%w: %s / %s", ErrDuplicate, record.PaperID, record.MeasureLabel)
	}

	records = append(records, record)
	if err := r.save(ctx, columns, records); err != nil {
		return nil, err
	}

	r.logger.Info("price created", "paper_id", record.PaperID, "measure_label", record.MeasureLabel, "price_clp", int64(record.PriceCLP))
	return &record, nil
}

func (r *repo) Update(ctx context.Context, cmd UpdateCommand) (*Record, error) {
	if cmd.PriceCLP <= 0 {
		return nil, fmt.Errorf("%w: price_clp debe ser mayor que cero", ErrInvalidRecord)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	columns, records, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	key := cmd.Key()
	i := slices.IndexFunc(records, func(x Record) bool { return x.Matches(key) })
	if i < 0 {
		return nil, ErrNotFound
	}

	records[i].PriceCLP = cmd.PriceCLP
	records[i].PriceDisplay = cmd.PriceCLP.Display()

	if err := r.save(ctx, columns, records); err != nil {
		return nil, err
	}

	r.logger.Info("price updated", "paper_id", key.PaperID, "measure_label", key.MeasureLabel, "price_clp", int64(cmd.PriceCLP))
	updated := records[i].clone()
	return &updated, nil
}

func (r *repo) Delete(ctx context.Context, key Key) error {
	key = key.Trim()

	r.mu.Lock()
	defer r.mu.Unlock()

	columns, records, err := r.load(ctx)
	if err != nil {
		return err
	}

	kept := slices.DeleteFunc(slices.Clone(records), func(x Record) bool { return x.Matches(key) })
	if len(kept) == len(records) {
		return ErrNotFound
	}

	if err := r.save(ctx, columns, kept); err != nil {
		return err
	}

	r.logger.Info("price deleted", "paper_id", key.PaperID, "measure_label", key.MeasureLabel, "removed", len(records)-len(kept))
	return nil
}

// Replace overwrites the whole list. Every record is normalized and checked
// for duplicate keys before anything is written.
func (r *repo) Replace(ctx context.Context, records []Record) error {
	_, err := r.replace(ctx, nil, records, 1)
	return err
}

// replace validates records and writes them with the given column order.
// firstRow numbers the records in error messages.
func (r *repo) replace(ctx context.Context, columns []string, records []Record, firstRow int) ([]Record, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: la lista de precios esta vacia", ErrInvalidRecord)
	}

	out := make([]Record, len(records))
	seen := make(map[Key]int, len(records))
	for i, rec := range records {
		row := firstRow + i
		rec = rec.clone()
		if err := rec.normalize(); err != nil {
			return nil, fmt.Errorf("fila %d: %w", row, err)
		}
		if first, ok := seen[rec.Key()]; ok {
			return nil, fmt.Errorf("fila %d: %w (repite la fila %d)", row, ErrDuplicate, first)
		}
		seen[rec.Key()] = row
		out[i] = rec
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.save(ctx, columns, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *repo) Export(ctx context.Context) ([]byte, error) {
	t, err := r.read(ctx)
	if err != nil {
		return nil, err
	}

	data, err := tabular.EncodeXLSX(t, r.sheet, colGrams, colPriceCLP)
	if err != nil {
		return nil, fmt.Errorf("export prices: %w", err)
	}
	return data, nil
}

// Import decodes the workbook and replaces the list with its rows. One bad
// row rejects the whole document before anything is written.
func (r *repo) Import(ctx context.Context, data []byte) (int, error) {
	t, err := tabular.DecodeXLSX(data)
	if err != nil {
		return 0, err
	}

	records, err := recordsFromTable(t)
	if err != nil {
		return 0, err
	}

	// Spreadsheet row 1 is the header.
	written, err := r.replace(ctx, t.Columns, records, 2)
	if err != nil {
		return 0, err
	}

	r.logger.Info("prices imported", "count", len(written))
	return len(written), nil
}

func (r *repo) read(ctx context.Context) (*tabular.Table, error) {
	rc, err := r.storage.Download(ctx, r.key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%w: no existe el archivo de precios %s", ErrReadFailed, r.key)
		}
		if storage.IsKeyError(err) {
			r.logger.Error("price file key rejected by storage", "key", r.key, "error", err)
		}
		return nil, fmt.Errorf("%w: %v", ErrReadFailed, err)
	}
	defer rc.Close()

	t, err := tabular.DecodeCSV(rc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadFailed, err)
	}
	return t, nil
}

func (r *repo) load(ctx context.Context) ([]string, []Record, error) {
	t, err := r.read(ctx)
	if err != nil {
		return nil, nil, err
	}

	records, err := recordsFromTable(t)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrReadFailed, err)
	}
	return t.Columns, records, nil
}

func (r *repo) save(ctx context.Context, columns []string, records []Record) error {
	data, err := tabular.EncodeCSV(tableFromRecords(columns, records))
	if err != nil {
		return fmt.Errorf("encode prices: %w", err)
	}

	if err := r.storage.Upload(ctx, r.key, bytes.NewReader(data), csvContentType); err != nil {
		return fmt.Errorf("write prices: %w", err)
	}
	return nil
}
