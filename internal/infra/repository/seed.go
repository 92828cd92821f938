package repository

import (
	"context"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/KasumiMercury/primind-pantry-expiry/internal/domain"
)

const (
	sourceVSZ         = "https://verbraucherschutzzentrale.be/wie-lange-halten-lebensmittel-im-gefrierfach/"
	sourceTOnline     = "https://www.t-online.de/leben/essen-und-trinken/id_19481246/auch-tiefkuehlkost-laeuft-ab-so-lange-sind-diese-lebensmittel-haltbar-.html"
	sourceUSDA        = "https://www.fsis.usda.gov/food-safety/safe-food-handling-and-preparation/food-safety-basics/freezing-and-food-safety"
	sourceVZ          = "https://www.verbraucherzentrale.de/wissen/lebensmittel/auswaehlen-zubereiten-aufbewahren/konfituere-und-marmelade-haltbarkeit-und-lagerung-58932"
	sourceFoodInJars  = "https://foodinjars.com/blog/canning-101-long-home-canned-foods-really-last/"
	sourceNCHFP       = "https://nchfp.uga.edu/how/make-jam-jelly/jams-jellies-general-information/storing-home-canned-jams-and-jellies/"
	sourceHaltbarkeit = "https://www.haltbarkeit.net/apfelmus-apfelbrei-konserve-gessst-haltbarkeit/"
	sourceChutney     = "https://foodwissen.de/chutney-haltbarkeit/"
	sourceTomaten     = "https://www.tomaten.de/tomatensauce-haltbar-machen/"
	sourceHausUndBeet = "https://haus-und-beet.de/ketchup-selber-machen/"
	sourceEdekaPesto  = "https://www.edeka.de/wissen/tipps-und-tricks/wie-kann-ich-pesto-haltbar-machen/"
)

type seedWindow struct {
	category  string
	color     string
	profile   domain.StorageProfile
	monthsMin int
	monthsMax int
	source    string
}

// defaultShelfLives is the researched table of frozen and ambient windows.
var defaultShelfLives = []seedWindow{
	{"Gemüse", "#4CAF50", domain.StorageProfileFrozen, 6, 12, sourceVSZ},
	{"Kräuter", "#8BC34A", domain.StorageProfileFrozen, 3, 4, sourceVSZ},
	{"Obst", "#FF9800", domain.StorageProfileFrozen, 9, 12, sourceVSZ},
	{"Fleisch", "#F44336", domain.StorageProfileFrozen, 3, 12, sourceVSZ},
	{"Rindfleisch", "#D32F2F", domain.StorageProfileFrozen, 9, 12, sourceTOnline},
	{"Schweinefleisch", "#E57373", domain.StorageProfileFrozen, 4, 7, sourceTOnline},
	{"Geflügel", "#FFEB3B", domain.StorageProfileFrozen, 3, 12, sourceTOnline},
	{"Hackfleisch", "#C62828", domain.StorageProfileFrozen, 1, 3, sourceTOnline},
	{"Fisch", "#2196F3", domain.StorageProfileFrozen, 2, 4, sourceVSZ},
	{"Fisch (mager)", "#64B5F6", domain.StorageProfileFrozen, 4, 6, sourceTOnline},
	{"Fisch (fett)", "#1976D2", domain.StorageProfileFrozen, 2, 3, sourceTOnline},
	{"Wurst", "#795548", domain.StorageProfileFrozen, 1, 6, sourceVSZ},
	{"Backwaren", "#FFC107", domain.StorageProfileFrozen, 1, 3, sourceVSZ},
	{"Brot", "#FFE082", domain.StorageProfileFrozen, 1, 3, sourceTOnline},
	{"Kuchen", "#FF80AB", domain.StorageProfileFrozen, 2, 4, sourceTOnline},
	{"Milchprodukte", "#FFFFFF", domain.StorageProfileFrozen, 2, 6, sourceVSZ},
	{"Butter", "#FFF9C4", domain.StorageProfileFrozen, 6, 8, sourceTOnline},
	{"Käse", "#FFE0B2", domain.StorageProfileFrozen, 2, 4, sourceTOnline},
	{"Fertiggerichte", "#9E9E9E", domain.StorageProfileFrozen, 2, 3, sourceTOnline},
	{"Suppen", "#FFCCBC", domain.StorageProfileFrozen, 2, 3, sourceUSDA},
	{"Eintöpfe", "#BCAAA4", domain.StorageProfileFrozen, 2, 3, sourceUSDA},

	{"Marmelade", "#E91E63", domain.StorageProfileAmbient, 12, 24, sourceVZ},
	{"Konfitüre", "#F48FB1", domain.StorageProfileAmbient, 12, 24, sourceVZ},
	{"Gelee", "#CE93D8", domain.StorageProfileAmbient, 12, 24, sourceFoodInJars},
	{"Kompott", "#FFAB91", domain.StorageProfileAmbient, 12, 12, sourceFoodInJars},
	{"Obstmus", "#FF8A65", domain.StorageProfileAmbient, 12, 18, sourceHaltbarkeit},
	{"Apfelmus", "#A5D6A7", domain.StorageProfileAmbient, 12, 18, sourceHaltbarkeit},
	{"Pflaumenmus", "#7E57C2", domain.StorageProfileAmbient, 12, 18, sourceHaltbarkeit},
	{"Eingelegtes", "#AED581", domain.StorageProfileAmbient, 6, 12, sourceNCHFP},
	{"Essiggurken", "#689F38", domain.StorageProfileAmbient, 6, 12, sourceNCHFP},
	{"Mixed Pickles", "#7CB342", domain.StorageProfileAmbient, 6, 12, sourceNCHFP},
	{"Chutney", "#FF7043", domain.StorageProfileAmbient, 6, 12, sourceChutney},
	{"Relish", "#8D6E63", domain.StorageProfileAmbient, 6, 12, sourceNCHFP},
	{"Tomatensoße", "#EF5350", domain.StorageProfileAmbient, 12, 12, sourceTomaten},
	{"Sugo", "#E53935", domain.StorageProfileAmbient, 12, 12, sourceTomaten},
	{"Ketchup", "#D32F2F", domain.StorageProfileAmbient, 6, 12, sourceHausUndBeet},
	{"Pesto", "#558B2F", domain.StorageProfileAmbient, 6, 12, sourceEdekaPesto},
	{"Antipasti", "#FFA726", domain.StorageProfileAmbient, 3, 6, sourceNCHFP},
	{"Senf", "#FFCA28", domain.StorageProfileAmbient, 3, 6, sourceVZ},
	{"Fruchtsirup", "#AB47BC", domain.StorageProfileAmbient, 12, 12, sourceVZ},
	{"Sauerkraut", "#C5E1A5", domain.StorageProfileAmbient, 6, 12, sourceNCHFP},
}

// SeedShelfLifeDefaults creates the default categories by name and upserts
// their windows. Running it again only refreshes the windows.
func SeedShelfLifeDefaults(ctx context.Context, db *gorm.DB) (int, error) {
	seeded := 0
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		categoryIDs := make(map[string]int64)
		shelfLives := NewShelfLifeRepository(tx)

		for i, w := range defaultShelfLives {
			id, ok := categoryIDs[w.category]
			if !ok {
				var rec categoryRecord
				if err := tx.Where(categoryRecord{Name: w.category}).
					Attrs(categoryRecord{Color: w.color, SortOrder: i}).
					FirstOrCreate(&rec).Error; err != nil {
					return fmt.Errorf("seed category %q: %w", w.category, err)
				}
				id = rec.ID
				categoryIDs[w.category] = id
			}

			if _, err := shelfLives.UpsertShelfLife(ctx, &domain.ShelfLifeWindow{
				CategoryID: id,
				Profile:    w.profile,
				MonthsMin:  w.monthsMin,
				MonthsMax:  w.monthsMax,
				SourceURL:  w.source,
			}); err != nil {
				return fmt.Errorf("seed shelf life %q (%s): %w", w.category, w.profile, err)
			}
			seeded++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	slog.InfoContext(ctx, "seeded default shelf lives",
		slog.Int("window_count", seeded),
	)

	return seeded, nil
}
