package catalog

import "context"

// MaterialRepository persists catalog materials.
type MaterialRepository interface {
	Save(ctx context.Context, material *Material) error
	Update(ctx context.Context, material *Material) error
	FindByID(ctx context.Context, id uint) (*Material, error)
	FindByCode(ctx context.Context, code string) (*Material, error)
	List(ctx context.Context, filter MaterialFilter) ([]*Material, int64, error)
}

// MaterialFilter narrows material listings. ActiveOnly is what the receiving
// module uses: deactivated materials never appear in new-lot selection.
type MaterialFilter struct {
	ActiveOnly bool
	Category   *string
	Page       int
	PageSize   int
}

// StandardTestRepository persists laboratory test definitions.
type StandardTestRepository interface {
	Save(ctx context.Context, test *StandardTest) error
	FindByID(ctx context.Context, id uint) (*StandardTest, error)
	FindByName(ctx context.Context, name string) (*StandardTest, error)
	List(ctx context.Context) ([]*StandardTest, error)
}

// TestProfileRepository maintains the material -> test bindings. The
// (material, test) pair is unique; Add on an existing pair fails.
type TestProfileRepository interface {
	Add(ctx context.Context, entry *TestProfileEntry) error
	Remove(ctx context.Context, materialID, testID uint) error
	ListByMaterial(ctx context.Context, materialID uint) ([]*TestProfileEntry, error)
	ExistsPair(ctx context.Context, materialID, testID uint) (bool, error)
}
