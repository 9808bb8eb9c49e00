package prices

import "context"

// System defines the public contract for price list operations.
// Every mutation reads the whole list, changes it in memory and writes the
// whole list back.
type System interface {
	Handler(maxUploadSize int64, exportName string) *Handler

	// Source names the storage backend holding the price file.
	Source() string

	List(ctx context.Context, filters Filters) ([]Record, error)
	Stats(ctx context.Context) (*Stats, error)
	Create(ctx context.Context, record Record) (*Record, error)
	Update(ctx context.Context, cmd UpdateCommand) (*Record, error)
	Delete(ctx context.Context, key Key) error
	Replace(ctx context.Context, records []Record) error
	Export(ctx context.Context) ([]byte, error)
	Import(ctx context.Context, data []byte) (int, error)
}
