package catalog

import (
	"context"
	"fmt"
)

// Seeder — то, что нужно сидеру от хранилища (Repo и memstore).
type Seeder interface {
	ListGroups(ctx context.Context) ([]Group, error)
	CreateGroup(ctx context.Context, in NewGroup) (*Group, error)
	CreateItem(ctx context.Context, in NewItem) (*Item, error)
}

type seedGroup struct {
	group NewGroup
	items []string
}

var defaultCatalog = []seedGroup{
	{NewGroup{Name: "Block Paper", Icon: "block-paper", SortOrder: 1}, []string{"40", "80", "180", "240", "320"}},
	{NewGroup{Name: "Scuff Roll", Icon: "scuff-roll", SortOrder: 2}, []string{"Red", "Grey"}},
	{NewGroup{Name: "DA Paper", Icon: "da-paper", SortOrder: 3}, []string{"40", "80", "180", "240", "320", "400", "600"}},
	{NewGroup{Name: "Primer", Icon: "primer", SortOrder: 4}, []string{"Dimension DP 840", "Super Build 4:1", "Finish Sand 4:1", "Bulldog"}},
	{NewGroup{Name: "Filler Bondo", Icon: "filler", SortOrder: 5, IsSingleItem: true}, []string{"Filler Bondo"}},
	{NewGroup{Name: "Glaze", Icon: "glaze", SortOrder: 6, IsSingleItem: true}, []string{"Glaze"}},
	{NewGroup{Name: "Wax & Grease", Icon: "wax-grease", SortOrder: 7, IsSingleItem: true}, []string{"Wax & Grease Remover"}},
	{NewGroup{Name: "Lacquer Thinner", Icon: "lacquer", SortOrder: 8, IsSingleItem: true}, []string{"Lacquer Thinner"}},
	{NewGroup{Name: "Yellow Tape", Icon: "tape", SortOrder: 9, IsSingleItem: true}, []string{"Yellow Tape"}},
	{NewGroup{Name: "Plastic Sheet", Icon: "plastic-sheet", SortOrder: 10, IsSingleItem: true}, []string{"Plastic Sheet for Masking"}},
	{NewGroup{Name: "Spray Cans", Icon: "spray-can", SortOrder: 11}, []string{"Adhesive Remover", "Etch Primer"}},
	{NewGroup{Name: "Parts", Icon: "parts", SortOrder: 12}, []string{"Fender", "Innerstructer", "Doors", "Cargo door", "Extender"}},
	{NewGroup{Name: "Gloves", Icon: "gloves", SortOrder: 13}, []string{"S", "M", "L", "XL"}},
	{NewGroup{Name: "Wishlist", Icon: "wishlist", SortOrder: 14, IsSingleItem: true}, []string{"Wishlist"}},
}

// Seed заливает стартовый каталог, если групп ещё нет. Возвращает true,
// если что-то было создано.
func Seed(ctx context.Context, s Seeder) (bool, error) {
	existing, err := s.ListGroups(ctx)
	if err != nil {
		return false, err
	}
	if len(existing) > 0 {
		return false, nil
	}

	for _, sg := range defaultCatalog {
		g, err := s.CreateGroup(ctx, sg.group)
		if err != nil {
			return false, fmt.Errorf("seed group %q: %w", sg.group.Name, err)
		}
		for i, name := range sg.items {
			if _, err := s.CreateItem(ctx, NewItem{Name: name, GroupID: g.ID, SortOrder: i + 1}); err != nil {
				return false, fmt.Errorf("seed item %q/%q: %w", g.Name, name, err)
			}
		}
	}
	return true, nil
}
