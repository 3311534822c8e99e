package catalog

// ItemCategory groups village items for the shop screen.
type ItemCategory string

const (
	CategoryDecoration ItemCategory = "decoration"
	CategoryBuilding   ItemCategory = "building"
)

// VillageItem is a purchasable village decoration or building.
type VillageItem struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Cost        int          `json:"cost"`
	Category    ItemCategory `json:"category"`
	Icon        string       `json:"icon"`
	X           int          `json:"x"`
	Y           int          `json:"y"`
}

var villageItems = []VillageItem{
	{ID: "reindeer_statue", Name: "Reindeer Statue", Description: "A beautiful wooden reindeer statue", Cost: 30, Category: CategoryDecoration, Icon: "🦌", X: 200, Y: 300},
	{ID: "sami_flag", Name: "Sámi Flag", Description: "The colorful Sámi flag to fly proudly", Cost: 25, Category: CategoryDecoration, Icon: "🏳️", X: 150, Y: 200},
	{ID: "goahti", Name: "Traditional Goahti", Description: "A cozy traditional Sámi dwelling", Cost: 50, Category: CategoryBuilding, Icon: "🏠", X: 400, Y: 400},
	{ID: "fire_pit", Name: "Fire Pit", Description: "A warm fire pit for gathering", Cost: 35, Category: CategoryDecoration, Icon: "🔥", X: 500, Y: 350},
	{ID: "duodji_workshop", Name: "Duodji Workshop", Description: "A workshop for creating traditional crafts", Cost: 60, Category: CategoryBuilding, Icon: "🛠️", X: 600, Y: 400},
	{ID: "reindeer_pen", Name: "Reindeer Pen", Description: "A safe place for reindeer to rest", Cost: 45, Category: CategoryBuilding, Icon: "🦌", X: 300, Y: 500},
	{ID: "berry_bush", Name: "Berry Bushes", Description: "Delicious cloudberries and lingonberries", Cost: 20, Category: CategoryDecoration, Icon: "🫐", X: 700, Y: 300},
	{ID: "northern_lights", Name: "Northern Lights Display", Description: "Magical aurora lights in the sky", Cost: 75, Category: CategoryDecoration, Icon: "🌌", X: 400, Y: 150},
	{ID: "fishing_spot", Name: "Fishing Spot", Description: "A peaceful spot for fishing", Cost: 40, Category: CategoryDecoration, Icon: "🎣", X: 800, Y: 450},
	{ID: "sami_pattern_banner", Name: "Sámi Pattern Banner", Description: "Beautiful traditional pattern decorations", Cost: 30, Category: CategoryDecoration, Icon: "🎨", X: 250, Y: 250},
}

var villageItemByID = func() map[string]VillageItem {
	m := make(map[string]VillageItem, len(villageItems))
	for _, it := range villageItems {
		m[it.ID] = it
	}
	return m
}()

// VillageItems returns the full shop catalog.
func VillageItems() []VillageItem {
	out := make([]VillageItem, len(villageItems))
	copy(out, villageItems)
	return out
}

// VillageItemByID looks up a shop item.
func VillageItemByID(id string) (VillageItem, bool) {
	it, ok := villageItemByID[id]
	return it, ok
}

// VillageItemsByCategory filters the catalog by category.
func VillageItemsByCategory(cat ItemCategory) []VillageItem {
	var out []VillageItem
	for _, it := range villageItems {
		if it.Category == cat {
			out = append(out, it)
		}
	}
	return out
}
